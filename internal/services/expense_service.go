package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "expenso/internal/errors"
	"expenso/internal/models"
	"expenso/internal/period"
	"expenso/internal/reports"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db  *gorm.DB
	now Clock
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, now Clock) ExpenseServicer {
	return &expenseService{db: db, now: now}
}

// CreateExpense records a new expense against an existing category. The date
// is stored as its calendar date.
func (s *expenseService) CreateExpense(ctx context.Context, input ExpenseInput) (*models.Expense, error) {
	if err := checkMoney("amount", input.Amount); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if input.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	category, err := s.findCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Amount:      input.Amount,
		Description: description,
		Date:        period.CalendarDate(input.Date),
		CategoryID:  category.ID,
	}
	if err := s.db.WithContext(ctx).Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense.Category = category
	return expense, nil
}

// GetExpenseByID retrieves an expense with its category.
func (s *expenseService) GetExpenseByID(ctx context.Context, id string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// ListExpenses returns the expenses of one month, most recent first.
func (s *expenseService) ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	month, err := period.Resolve(filter.Month, filter.Year, s.now())
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return monthExpenses(ctx, s.db, month.Window(), filter.CategoryID)
}

// UpdateExpense applies a partial update to an existing expense
func (s *expenseService) UpdateExpense(ctx context.Context, id string, patch ExpensePatch) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Amount != nil {
		if err := checkMoney("amount", *patch.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *patch.Amount
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		if description == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description cannot be empty")
		}
		updates["description"] = description
	}
	if patch.Date != nil {
		if patch.Date.IsZero() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date cannot be empty")
		}
		updates["date"] = period.CalendarDate(*patch.Date)
	}
	if patch.CategoryID != nil && *patch.CategoryID != expense.CategoryID {
		category, err := s.findCategory(ctx, *patch.CategoryID)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&models.Expense{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetExpenseByID(ctx, id)
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// GetMonthlyStats summarizes the expenses of one month. Category stats follow
// the order in which categories first appear in the listing order.
func (s *expenseService) GetMonthlyStats(ctx context.Context, month, year *int) (*reports.MonthlyStats, error) {
	m, err := period.Resolve(month, year, s.now())
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	expenses, err := monthExpenses(ctx, s.db, m.Window(), "")
	if err != nil {
		return nil, err
	}

	stats := reports.Summarize(expenses)
	return &stats, nil
}

func (s *expenseService) findCategory(ctx context.Context, id string) (*models.Category, error) {
	if id == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	var category models.Category
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// monthExpenses fetches the expenses dated inside window with their
// categories, ordered by date then creation time, newest first.
func monthExpenses(ctx context.Context, db *gorm.DB, window period.Window, categoryID string) ([]models.Expense, error) {
	query := db.WithContext(ctx).
		Preload("Category").
		Where("date >= ? AND date < ?", window.Start, window.End)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	expenses := []models.Expense{}
	if err := query.Order("date DESC").Order("created_at DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
