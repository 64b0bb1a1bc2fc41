package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool              `json:"success"`
	Msg     string            `json:"msg"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, msg string) {
	c.JSON(status, HTTPError{
		Success: false,
		Msg:     msg,
	})
}

func BadRequest(c *gin.Context, msg string) {
	Write(c, http.StatusBadRequest, msg)
}

func Validation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Success: false,
		Msg:     "validation_failed",
		Errors:  fields,
	})
}

func NotFound(c *gin.Context, msg string) {
	Write(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	Write(c, http.StatusConflict, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	Write(c, http.StatusUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Write(c, http.StatusForbidden, msg)
}

// Internal hides the real error from the client; callers log it themselves.
func Internal(c *gin.Context, msg string) {
	Write(c, http.StatusInternalServerError, msg)
}
