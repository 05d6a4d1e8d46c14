package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberrock-web/internal/httperr"
	"github.com/BruksfildServices01/barberrock-web/internal/middleware"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
)

// render fills the fields every page layout reads and renders "base".
func render(c *gin.Context, status int, page string, data gin.H) {
	sess := session.From(c)
	if data == nil {
		data = gin.H{}
	}
	data["Page"] = page
	data["LoggedIn"] = sess.IsAuthenticated()
	data["DisplayName"] = sess.DisplayName()
	data["Role"] = sess.Role()
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = sess.TakeFlash()
	}
	c.HTML(status, "base", data)
}

// sessionExpired handles a 401 from the API on an HTML route: the session
// is dropped and the user is sent to log in again. It reports whether err
// was such a failure.
func sessionExpired(c *gin.Context, err error) bool {
	if !httperr.IsUnauthorized(err) {
		return false
	}
	sess := session.From(c)
	sess.Clear()
	sess.SetFlash(httperr.MsgSessionExpired)
	c.Redirect(http.StatusFound, middleware.LoginURL(c.Request.URL.RequestURI()))
	return true
}

// back redirects to the page a form was posted from.
func back(c *gin.Context, fallback string) {
	c.Redirect(http.StatusSeeOther, fallback)
}

func NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/web/api/") {
		httperr.NotFound(c, "not_found", "Recurso no encontrado")
		return
	}
	render(c, http.StatusNotFound, "not_found", nil)
}
