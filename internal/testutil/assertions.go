package testutil

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "expenso/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertMoney checks that got equals the decimal amount want, ignoring
// trailing zeros.
func AssertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()

	if !got.Equal(Money(t, want)) {
		t.Errorf("expected amount %s, got %s", want, got.String())
	}
}

// AssertMoneyPtr is AssertMoney for optional budgets; a nil got fails.
func AssertMoneyPtr(t *testing.T, want string, got *decimal.Decimal) {
	t.Helper()

	if got == nil {
		t.Errorf("expected amount %s, got nil", want)
		return
	}
	AssertMoney(t, want, *got)
}
