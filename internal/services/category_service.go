package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"expenso/internal/config"
	apperrors "expenso/internal/errors"
	"expenso/internal/models"
	"expenso/internal/period"
	"expenso/internal/reports"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db           *gorm.DB
	now          Clock
	deletePolicy string
}

// NewCategoryService creates a new CategoryServicer. deletePolicy is one of
// config.DeletePolicyRestrict or config.DeletePolicyCascade.
func NewCategoryService(db *gorm.DB, now Clock, deletePolicy string) CategoryServicer {
	return &categoryService{db: db, now: now, deletePolicy: deletePolicy}
}

// GetCategories lists all categories, newest first, each with the expenses
// of the current month preloaded.
func (s *categoryService) GetCategories(ctx context.Context) ([]CategoryOverview, error) {
	window := period.Current(s.now()).Window()
	db := s.db.WithContext(ctx)

	var categories []models.Category
	if err := db.
		Preload("Expenses", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("date >= ? AND date < ?", window.Start, window.End).
				Order("date DESC").Order("created_at DESC")
		}).
		Order("created_at DESC").Order("id DESC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var counts []struct {
		CategoryID string
		Count      int64
	}
	if err := db.Model(&models.Expense{}).
		Select("category_id, COUNT(*) AS count").
		Group("category_id").
		Scan(&counts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	countByCategory := make(map[string]int64, len(counts))
	for _, c := range counts {
		countByCategory[c.CategoryID] = c.Count
	}

	overviews := make([]CategoryOverview, 0, len(categories))
	for _, c := range categories {
		spent := decimal.Zero
		for _, e := range c.Expenses {
			spent = spent.Add(e.Amount)
		}
		expenses := c.Expenses
		if expenses == nil {
			expenses = []models.Expense{}
		}
		c.Expenses = nil
		overviews = append(overviews, CategoryOverview{
			Category:     c,
			Expenses:     expenses,
			ExpenseCount: countByCategory[c.ID],
			MonthSpent:   spent,
			BudgetUsage:  reports.BudgetUsageFor(c, spent),
		})
	}
	return overviews, nil
}

// GetCategoryByID retrieves a category by ID
func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// CreateCategory creates a new category, filling in the display defaults.
func (s *categoryService) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if input.Budget != nil {
		if err := checkMoney("budget", *input.Budget); err != nil {
			return nil, err
		}
	}

	category := &models.Category{
		Name:        name,
		Description: input.Description,
		Color:       orDefault(input.Color, models.DefaultCategoryColor),
		Icon:        orDefault(input.Icon, models.DefaultCategoryIcon),
		Budget:      input.Budget,
	}

	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// UpdateCategory applies a partial update to an existing category
func (s *categoryService) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*models.Category, error) {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name cannot be empty")
		}
		updates["name"] = name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Color != nil {
		updates["color"] = orDefault(*patch.Color, models.DefaultCategoryColor)
	}
	if patch.Icon != nil {
		updates["icon"] = orDefault(*patch.Icon, models.DefaultCategoryIcon)
	}
	switch {
	case patch.ClearBudget:
		updates["budget"] = nil
	case patch.Budget != nil:
		if err := checkMoney("budget", *patch.Budget); err != nil {
			return nil, err
		}
		updates["budget"] = *patch.Budget
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetCategoryByID(ctx, id)
}

// DeleteCategory soft-deletes a category. Under the restrict policy a category
// that still has expenses is refused; under cascade its expenses are deleted
// in the same transaction.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var expenseCount int64
		if err := tx.Model(&models.Expense{}).Where("category_id = ?", id).Count(&expenseCount).Error; err != nil {
			return err
		}

		if expenseCount > 0 {
			if s.deletePolicy != config.DeletePolicyCascade {
				return apperrors.ErrCategoryInUse
			}
			if err := tx.Where("category_id = ?", id).Delete(&models.Expense{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(category).Error
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
