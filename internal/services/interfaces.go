package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"expenso/internal/models"
	"expenso/internal/period"
	"expenso/internal/reports"
)

// Clock returns the current time in the configured timezone.
type Clock func() time.Time

// SystemClock returns a Clock reading the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

// CategoryInput holds the fields of a new category.
type CategoryInput struct {
	Name        string
	Description string
	Color       string
	Icon        string
	Budget      *decimal.Decimal
}

// CategoryPatch holds a partial category update. Nil fields are left as they
// are; ClearBudget removes the budget and wins over Budget.
type CategoryPatch struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
	Budget      *decimal.Decimal
	ClearBudget bool
}

// CategoryOverview is a category as shown on the categories page: its
// current-month expenses, all-time expense count and budget progress.
type CategoryOverview struct {
	models.Category
	// Expenses shadows the embedded field so an empty month is [] rather
	// than omitted.
	Expenses     []models.Expense     `json:"expenses"`
	ExpenseCount int64                `json:"expense_count"`
	MonthSpent   decimal.Decimal      `json:"month_spent"`
	BudgetUsage  *reports.BudgetUsage `json:"budget_usage"`
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	GetCategories(ctx context.Context) ([]CategoryOverview, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// ExpenseInput holds the fields of a new expense.
type ExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CategoryID  string
}

// ExpensePatch holds a partial expense update. Nil fields are left as they are.
type ExpensePatch struct {
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
	CategoryID  *string
}

// ExpenseFilter selects the expenses of one month, optionally narrowed to a
// category. Month is 1-12; nil Month or Year default to the current one.
type ExpenseFilter struct {
	Month      *int
	Year       *int
	CategoryID string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, input ExpenseInput) (*models.Expense, error)
	GetExpenseByID(ctx context.Context, id string) (*models.Expense, error)
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, id string, patch ExpensePatch) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	GetMonthlyStats(ctx context.Context, month, year *int) (*reports.MonthlyStats, error)
}

// SettingsInput holds settings values to write. Nil fields are left unchanged
// on update and take their defaults on creation. ClearMonthlyBudget removes
// the monthly budget and wins over MonthlyBudget.
type SettingsInput struct {
	CycleStartDay      *int
	MonthlyBudget      *decimal.Decimal
	ClearMonthlyBudget bool
	Currency           *string
}

// SettingsServicer defines the contract for the global settings record.
type SettingsServicer interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	CreateSettings(ctx context.Context, input SettingsInput) (*models.Settings, error)
	UpdateSettings(ctx context.Context, input SettingsInput) (*models.Settings, error)
	GetCycle(ctx context.Context) (*period.Cycle, error)
}

// MonthlyReport gathers everything the reports page shows for one month.
type MonthlyReport struct {
	Period         period.Month              `json:"period"`
	Window         period.Window             `json:"window"`
	Currency       string                    `json:"currency"`
	Stats          reports.MonthlyStats      `json:"stats"`
	Daily          []reports.DailyTotal      `json:"daily"`
	Cumulative     []reports.CumulativePoint `json:"cumulative"`
	BudgetUsage    []reports.BudgetUsage     `json:"budget_usage"`
	OverallBudget  reports.OverallUsage      `json:"overall_budget"`
	SettingsBudget *reports.OverallUsage     `json:"settings_budget"`
	DailyAverage   decimal.Decimal           `json:"daily_average"`
	TopCategory    *reports.CategoryStat     `json:"top_category"`
	Cycle          period.Cycle              `json:"cycle"`
}

// ReportServicer defines the contract for the reporting views.
type ReportServicer interface {
	GetMonthlyReport(ctx context.Context, month, year *int) (*MonthlyReport, error)
}
