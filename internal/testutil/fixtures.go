package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"expenso/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns the calendar date as it is stored for expenses.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Money parses a decimal literal, failing the test on bad input.
func Money(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// MoneyPtr is Money returning a pointer, for optional budgets.
func MoneyPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := Money(t, s)
	return &d
}

// CreateTestCategory creates a category without a budget.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return createCategory(t, db, fmt.Sprintf("Test Category %d", nextID()), nil)
}

// CreateTestCategoryWithBudget creates a category with the given monthly budget.
func CreateTestCategoryWithBudget(t *testing.T, db *gorm.DB, name, budget string) *models.Category {
	t.Helper()
	return createCategory(t, db, name, MoneyPtr(t, budget))
}

func createCategory(t *testing.T, db *gorm.DB, name string, budget *decimal.Decimal) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:   name,
		Color:  models.DefaultCategoryColor,
		Icon:   models.DefaultCategoryIcon,
		Budget: budget,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense of amount on date in the given category.
func CreateTestExpense(t *testing.T, db *gorm.DB, categoryID string, amount string, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:      Money(t, amount),
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		Date:        date,
		CategoryID:  categoryID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestSettings writes the settings row with the given cycle start day.
func CreateTestSettings(t *testing.T, db *gorm.DB, cycleStartDay int) *models.Settings {
	t.Helper()

	settings := models.DefaultSettings()
	settings.CycleStartDay = cycleStartDay
	if err := db.Create(&settings).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return &settings
}
