package services

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "expenso/internal/errors"
	"expenso/internal/models"
	"expenso/internal/period"
	"expenso/internal/reports"
)

// reportService assembles the monthly report from expenses, categories and
// settings.
type reportService struct {
	db  *gorm.DB
	now Clock
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, now Clock) ReportServicer {
	return &reportService{db: db, now: now}
}

// GetMonthlyReport loads the month's expenses, the categories and the settings
// concurrently and derives every report series from them. Missing settings
// are not an error: the settings budget is omitted and defaults apply.
func (s *reportService) GetMonthlyReport(ctx context.Context, month, year *int) (*MonthlyReport, error) {
	now := s.now()
	m, err := period.Resolve(month, year, now)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	window := m.Window()

	var (
		expenses   []models.Expense
		categories []models.Category
		settings   *models.Settings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = monthExpenses(gctx, s.db, window, "")
		return err
	})
	g.Go(func() error {
		if err := s.db.WithContext(gctx).Order("created_at DESC").Order("id DESC").Find(&categories).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		settings, err = findSettings(gctx, s.db)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if settings == nil {
		defaults := models.DefaultSettings()
		settings = &defaults
	}

	cycle, err := period.CurrentCycle(now, settings.CycleStartDay)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := reports.Summarize(expenses)
	daily := reports.DailyTotals(expenses)

	report := &MonthlyReport{
		Period:        m,
		Window:        window,
		Currency:      settings.Currency,
		Stats:         stats,
		Daily:         daily,
		Cumulative:    reports.Cumulative(daily),
		BudgetUsage:   reports.BudgetUsages(categories, stats),
		OverallBudget: reports.CategoryBudgetUsage(categories, stats.TotalSpent),
		DailyAverage:  reports.DailyAverage(stats.TotalSpent, m.Year, m.Month, now),
		TopCategory:   reports.TopCategory(stats),
		Cycle:         cycle,
	}
	if settings.MonthlyBudget != nil {
		usage := reports.NewOverallUsage(*settings.MonthlyBudget, stats.TotalSpent)
		report.SettingsBudget = &usage
	}

	return report, nil
}
