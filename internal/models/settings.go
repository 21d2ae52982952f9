package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsKey is the reserved primary key of the single settings row.
const SettingsKey = "global"

// Defaults used when the settings row is first written.
const (
	DefaultCycleStartDay = 1
	DefaultCurrency      = "USD"
)

// Settings holds the global budgeting configuration.
type Settings struct {
	ID            string           `gorm:"primaryKey" json:"id"`
	CycleStartDay int              `gorm:"not null;default:1" json:"cycle_start_day"`
	MonthlyBudget *decimal.Decimal `gorm:"type:decimal(12,2)" json:"monthly_budget"`
	Currency      string           `gorm:"not null;default:USD" json:"currency"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// DefaultSettings returns the values an unwritten settings row would have.
func DefaultSettings() Settings {
	return Settings{
		ID:            SettingsKey,
		CycleStartDay: DefaultCycleStartDay,
		Currency:      DefaultCurrency,
	}
}
