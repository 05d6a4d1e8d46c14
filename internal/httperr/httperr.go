package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func BadGateway(c *gin.Context, code, message string) {
	Write(c, http.StatusBadGateway, code, message)
}

// FromError maps an error returned by a use case to a JSON response.
func FromError(c *gin.Context, err error, fallback string) {
	var be BusinessError
	switch {
	case IsUnauthorized(err):
		Unauthorized(c, "session_expired", MsgSessionExpired)
	case IsNotFound(err):
		NotFound(c, "not_found", MessageOr(err, fallback))
	case IsTransport(err):
		BadGateway(c, "backend_unavailable", fallback)
	case asBusiness(err, &be):
		BadRequest(c, be.Code, MessageOr(err, fallback))
	default:
		BadRequest(c, "request_failed", MessageOr(err, fallback))
	}
}
