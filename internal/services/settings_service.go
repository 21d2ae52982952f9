package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "expenso/internal/errors"
	"expenso/internal/models"
	"expenso/internal/period"
	"expenso/internal/validator"
)

// settingsService stores the global settings as a single row under
// models.SettingsKey.
type settingsService struct {
	db  *gorm.DB
	now Clock
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB, now Clock) SettingsServicer {
	return &settingsService{db: db, now: now}
}

// GetSettings returns the settings, or ErrSettingsNotFound before the first write.
func (s *settingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	settings, err := findSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperrors.ErrSettingsNotFound
	}
	return settings, nil
}

// CreateSettings writes the settings row for the first time. It fails with
// ErrSettingsExist when the row is already there.
func (s *settingsService) CreateSettings(ctx context.Context, input SettingsInput) (*models.Settings, error) {
	settings, _, err := applySettingsInput(models.DefaultSettings(), input)
	if err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&settings)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrSettingsExist
	}

	return s.GetSettings(ctx)
}

// UpdateSettings upserts the settings row in one statement. On insert the
// unspecified columns take their defaults; on update only the supplied
// columns change.
func (s *settingsService) UpdateSettings(ctx context.Context, input SettingsInput) (*models.Settings, error) {
	settings, columns, err := applySettingsInput(models.DefaultSettings(), input)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
		}).
		Create(&settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetSettings(ctx)
}

// GetCycle returns the budgeting cycle containing today. Defaults apply when
// settings were never written.
func (s *settingsService) GetCycle(ctx context.Context) (*period.Cycle, error) {
	settings, err := findSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}
	startDay := models.DefaultCycleStartDay
	if settings != nil {
		startDay = settings.CycleStartDay
	}

	cycle, err := period.CurrentCycle(s.now(), startDay)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cycle, nil
}

// findSettings loads the settings row, returning nil when it does not exist.
func findSettings(ctx context.Context, db *gorm.DB) (*models.Settings, error) {
	var settings models.Settings
	if err := db.WithContext(ctx).Where("id = ?", models.SettingsKey).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// applySettingsInput validates input and copies it onto base, returning the
// names of the columns it set.
func applySettingsInput(base models.Settings, input SettingsInput) (models.Settings, []string, error) {
	var columns []string

	if input.CycleStartDay != nil {
		day := *input.CycleStartDay
		if day < 1 || day > 28 {
			return base, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cycle start day must be between 1 and 28")
		}
		base.CycleStartDay = day
		columns = append(columns, "cycle_start_day")
	}

	switch {
	case input.ClearMonthlyBudget:
		base.MonthlyBudget = nil
		columns = append(columns, "monthly_budget")
	case input.MonthlyBudget != nil:
		if err := checkMoney("monthly budget", *input.MonthlyBudget); err != nil {
			return base, nil, err
		}
		budget := *input.MonthlyBudget
		base.MonthlyBudget = &budget
		columns = append(columns, "monthly_budget")
	}

	if input.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*input.Currency))
		if !validator.IsCurrency(currency) {
			return base, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "currency must be an ISO 4217 code")
		}
		base.Currency = currency
		columns = append(columns, "currency")
	}

	return base, columns, nil
}
