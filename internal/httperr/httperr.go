package httperr

import (
	"errors"
	"log/slog"
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

// FromError maps a use case error onto the response: validation → 400,
// *_not_found → 404, anything else → 500 with fallbackCode.
func FromError(c *gin.Context, err error, fallbackCode string) {
	var be BusinessError

	switch {
	case IsValidation(err):
		BadRequest(c, "invalid_request", err.Error())
	case IsNotFound(err) && errors.As(err, &be):
		NotFound(c, be.Code, "Resource not found.")
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"code", fallbackCode,
			"path", c.FullPath(),
			"error", err,
		)
		Internal(c, fallbackCode, "Internal error.")
	}
}
