package models

import "github.com/shopspring/decimal"

// Display defaults applied when a category is created without them.
const (
	DefaultCategoryColor = "#3B82F6"
	DefaultCategoryIcon  = "💰"
)

// Category is a user-defined spending bucket with an optional monthly budget.
type Category struct {
	Base
	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description"`
	Color       string           `gorm:"not null" json:"color"`
	Icon        string           `gorm:"not null" json:"icon"`
	Budget      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"budget"`

	// Relationships
	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}

// HasBudget reports whether a positive monthly budget is set.
func (c *Category) HasBudget() bool {
	return c.Budget != nil && c.Budget.IsPositive()
}
