// Package response writes the JSON envelope shared by every endpoint:
//
//	{"result": ..., "error": {"code": ..., "message": ...}, "status": 200, "message": "..."}
//
// Exactly one of result and error is non-null.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "expenso/internal/errors"
	"expenso/internal/logger"
)

// ErrorBody is the error member of the envelope.
type ErrorBody struct {
	Code    string `json:"code" example:"CATEGORY_NOT_FOUND"`
	Message string `json:"message" example:"Category not found"`
}

// Envelope is the response body of every endpoint.
type Envelope struct {
	Result  interface{} `json:"result"`
	Error   *ErrorBody  `json:"error"`
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"Categories fetched successfully"`
}

// OK writes a success envelope.
func OK(c *gin.Context, status int, result interface{}, message string) {
	c.JSON(status, Envelope{
		Result:  result,
		Status:  status,
		Message: message,
	})
}

// Error writes a failure envelope. If err is an *AppError its status, code and
// message are used; anything else is logged and reported as an internal error
// without leaking details. message summarizes the failed operation.
func Error(c *gin.Context, err error, message string) {
	Write(c, FromError(c, err), message)
}

// Write renders appErr as a failure envelope and aborts the chain.
func Write(c *gin.Context, appErr *apperrors.AppError, message string) {
	c.AbortWithStatusJSON(appErr.StatusCode, Envelope{
		Error:   &ErrorBody{Code: appErr.Code, Message: appErr.Message},
		Status:  appErr.StatusCode,
		Message: message,
	})
}

// FromError maps err to the AppError that will be rendered, logging internal
// causes along the way.
func FromError(c *gin.Context, err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		if appErr.StatusCode == 0 {
			return apperrors.Wrap(apperrors.ErrInternalServer, appErr)
		}
		return appErr
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	return apperrors.ErrInternalServer
}

// StatusMessage is the default summary for a failure without a more specific one.
func StatusMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "Request failed"
}
