package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	apperrors "expenso/internal/errors"
	"expenso/internal/response"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into the response envelope. AppErrors are returned with their code
// and message; unexpected errors are logged and reported as a generic internal
// error. Nothing is written if the handler already produced a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err
		appErr := response.FromError(c, err)
		response.Write(c, appErr, response.StatusMessage(appErr.StatusCode))
	}
}

// NoRoute answers unknown paths with a NOT_FOUND envelope.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "Route "+c.Request.Method+" "+c.Request.URL.Path+" not found"))
	}
}

// Recovery turns a panic into an INTERNAL_ERROR envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		response.Error(c, fmt.Errorf("panic: %v", recovered), "Internal server error")
	})
}
