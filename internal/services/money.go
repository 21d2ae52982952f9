package services

import (
	"github.com/shopspring/decimal"

	apperrors "expenso/internal/errors"
	"expenso/internal/validator"
)

// checkMoney rejects amounts the money columns cannot store exactly.
func checkMoney(field string, amount decimal.Decimal) error {
	if !validator.IsMoney(amount) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput,
			field+" must be positive, have at most two decimal places and not exceed "+validator.MaxMoney.String())
	}
	return nil
}
