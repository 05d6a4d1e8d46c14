package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberrock-web/internal/domain/account"
	"github.com/BruksfildServices01/barberrock-web/internal/middleware"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe returns the user stored at login. Tokens never leave the server.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	sess := session.From(c)
	role := sess.Role()

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           userID,
			"username":     sess.Username(),
			"display_name": sess.DisplayName(),
			"email":        sess.Email(),
			"phone":        sess.Phone(),
			"role":         role,
		},
		"home": account.HomeFor(role),
	})
}
