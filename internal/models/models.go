// Package models defines the GORM entities persisted by the store.
package models

// All lists every model for auto-migration (SQLite) and test databases.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Expense{},
		&Settings{},
	}
}
