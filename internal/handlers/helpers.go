package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "expenso/internal/errors"
	"expenso/internal/response"
	"expenso/internal/uuid"
)

// dateLayouts are the accepted date formats, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// MonthQuery selects a month; both values default to the current one.
type MonthQuery struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=1970,max=9999"`
}

// parsePathID returns the id path parameter, which must be a UUID.
func parsePathID(c *gin.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid id")
	}
	return id, nil
}

// parseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func parseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput,
		field+" must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
}

// bindError turns a binding failure into an INVALID_INPUT error.
func bindError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondOK writes a success envelope.
func respondOK(c *gin.Context, status int, result interface{}, message string) {
	response.OK(c, status, result, message)
}

// respondWithError writes a failure envelope; message summarizes the failed
// operation.
func respondWithError(c *gin.Context, err error, message string) {
	response.Error(c, err, message)
}
