package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse wraps every collection served under /web/api.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// RedirectResponse tells a script client where the browser should go next.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List always renders an array, never null, so clients can iterate blindly.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Redirect(c *gin.Context, next string) {
	c.JSON(http.StatusOK, RedirectResponse{Redirect: next})
}
