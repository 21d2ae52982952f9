package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single dated spend attributed to exactly one category.
// Date holds a calendar date stored as UTC midnight.
type Expense struct {
	Base
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CategoryID  string          `gorm:"type:uuid;not null;index" json:"category_id"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
