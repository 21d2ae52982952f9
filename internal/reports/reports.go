// Package reports reduces a month's expenses into the summaries and chart
// series shown on the dashboard and reports pages. Everything here is a pure
// function over already-fetched records.
package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"expenso/internal/models"
	"expenso/internal/period"
)

var hundred = decimal.NewFromInt(100)

// CategoryStat accumulates the spending of one category.
type CategoryStat struct {
	Category models.Category `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MonthlyStats is the aggregate summary of one month window.
type MonthlyStats struct {
	TotalSpent    decimal.Decimal `json:"total_spent"`
	ExpenseCount  int             `json:"expense_count"`
	CategoryStats []CategoryStat  `json:"category_stats"`
}

// Summarize folds expenses into MonthlyStats in a single pass.
//
// CategoryStats keeps the order in which categories are first met while
// scanning, so the caller's fetch order decides it. The category recorded for
// a stat is the snapshot attached to the first expense seen for it.
func Summarize(expenses []models.Expense) MonthlyStats {
	stats := MonthlyStats{
		TotalSpent:    decimal.Zero,
		CategoryStats: []CategoryStat{},
	}
	index := make(map[string]int)

	for _, e := range expenses {
		stats.TotalSpent = stats.TotalSpent.Add(e.Amount)
		stats.ExpenseCount++

		i, seen := index[e.CategoryID]
		if !seen {
			snapshot := models.Category{Base: models.Base{ID: e.CategoryID}}
			if e.Category != nil {
				snapshot = *e.Category
				snapshot.Expenses = nil
			}
			stats.CategoryStats = append(stats.CategoryStats, CategoryStat{
				Category: snapshot,
				Total:    decimal.Zero,
			})
			i = len(stats.CategoryStats) - 1
			index[e.CategoryID] = i
		}
		stats.CategoryStats[i].Total = stats.CategoryStats[i].Total.Add(e.Amount)
		stats.CategoryStats[i].Count++
	}

	return stats
}

// TopCategory returns the stat with the largest total, or nil when there are
// none. Ties go to the stat met first.
func TopCategory(stats MonthlyStats) *CategoryStat {
	var top *CategoryStat
	for i := range stats.CategoryStats {
		s := &stats.CategoryStats[i]
		if top == nil || s.Total.GreaterThan(top.Total) {
			top = s
		}
	}
	if top == nil {
		return nil
	}
	out := *top
	return &out
}

// DailyTotal is the amount spent on one day of the month.
type DailyTotal struct {
	Day    int             `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// DailyTotals groups expenses by day of month, ascending. Days without
// expenses are left out rather than zero-filled.
func DailyTotals(expenses []models.Expense) []DailyTotal {
	byDay := make(map[int]decimal.Decimal)
	for _, e := range expenses {
		day := e.Date.UTC().Day()
		byDay[day] = byDay[day].Add(e.Amount)
	}

	out := make([]DailyTotal, 0, len(byDay))
	for day, amount := range byDay {
		out = append(out, DailyTotal{Day: day, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// CumulativePoint pairs a day's spending with the running total up to it.
type CumulativePoint struct {
	Day        int             `json:"day"`
	Daily      decimal.Decimal `json:"daily"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// Cumulative computes the running sum of an ascending daily series.
func Cumulative(daily []DailyTotal) []CumulativePoint {
	out := make([]CumulativePoint, 0, len(daily))
	running := decimal.Zero
	for _, d := range daily {
		running = running.Add(d.Amount)
		out = append(out, CumulativePoint{Day: d.Day, Daily: d.Amount, Cumulative: running})
	}
	return out
}

// BudgetUsage compares a category's spending with its monthly budget.
// Percentage is unclamped; DisplayPercentage is clamped to [0, 100] for
// progress bars.
type BudgetUsage struct {
	CategoryID        string          `json:"category_id"`
	Name              string          `json:"name"`
	Color             string          `json:"color"`
	Budget            decimal.Decimal `json:"budget"`
	Spent             decimal.Decimal `json:"spent"`
	Remaining         decimal.Decimal `json:"remaining"`
	Percentage        float64         `json:"percentage"`
	DisplayPercentage float64         `json:"display_percentage"`
	Exceeded          bool            `json:"exceeded"`
}

// BudgetUsageFor returns the usage of a category with a budget, or nil when
// the category has none.
func BudgetUsageFor(c models.Category, spent decimal.Decimal) *BudgetUsage {
	if !c.HasBudget() {
		return nil
	}
	budget := *c.Budget
	pct := Percentage(spent, budget)
	return &BudgetUsage{
		CategoryID:        c.ID,
		Name:              c.Name,
		Color:             c.Color,
		Budget:            budget,
		Spent:             spent,
		Remaining:         budget.Sub(spent),
		Percentage:        pct,
		DisplayPercentage: Clamp(pct),
		Exceeded:          spent.GreaterThan(budget),
	}
}

// BudgetUsages returns the usage of every category that has a budget, in the
// order of categories. Spending comes from stats; a budgeted category without
// expenses in the month shows zero spent.
func BudgetUsages(categories []models.Category, stats MonthlyStats) []BudgetUsage {
	spent := make(map[string]decimal.Decimal, len(stats.CategoryStats))
	for _, s := range stats.CategoryStats {
		spent[s.Category.ID] = s.Total
	}

	out := make([]BudgetUsage, 0, len(categories))
	for _, c := range categories {
		if u := BudgetUsageFor(c, spent[c.ID]); u != nil {
			out = append(out, *u)
		}
	}
	return out
}

// OverallUsage compares total spending against a budget total.
type OverallUsage struct {
	Budget            decimal.Decimal `json:"budget"`
	Spent             decimal.Decimal `json:"spent"`
	Percentage        float64         `json:"percentage"`
	DisplayPercentage float64         `json:"display_percentage"`
	Exceeded          bool            `json:"exceeded"`
}

// NewOverallUsage builds an OverallUsage; a non-positive budget yields 0%.
func NewOverallUsage(budget, spent decimal.Decimal) OverallUsage {
	pct := Percentage(spent, budget)
	return OverallUsage{
		Budget:            budget,
		Spent:             spent,
		Percentage:        pct,
		DisplayPercentage: Clamp(pct),
		Exceeded:          budget.IsPositive() && spent.GreaterThan(budget),
	}
}

// CategoryBudgetUsage sums the budgets of all categories and compares the
// month's total spending with that sum.
func CategoryBudgetUsage(categories []models.Category, totalSpent decimal.Decimal) OverallUsage {
	sum := decimal.Zero
	for _, c := range categories {
		if c.HasBudget() {
			sum = sum.Add(*c.Budget)
		}
	}
	return NewOverallUsage(sum, totalSpent)
}

// Percentage returns part/whole*100, or 0 when whole is not positive.
func Percentage(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Mul(hundred).Div(whole).Round(2).InexactFloat64()
}

// Clamp limits a percentage to [0, 100].
func Clamp(pct float64) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// DailyAverage divides the month's total by the days elapsed in it as of now:
// today's day for the current month, the full length for past months. Future
// months have no elapsed days and average zero.
func DailyAverage(totalSpent decimal.Decimal, year int, month time.Month, now time.Time) decimal.Decimal {
	elapsed := ElapsedDays(year, month, now)
	if elapsed == 0 {
		return decimal.Zero
	}
	return totalSpent.Div(decimal.NewFromInt(int64(elapsed))).Round(2)
}

// ElapsedDays returns how many days of the month have started as of now.
func ElapsedDays(year int, month time.Month, now time.Time) int {
	ny, nm, nd := now.Date()
	switch {
	case ny == year && nm == month:
		return nd
	case ny > year || (ny == year && nm > month):
		return period.DaysIn(year, month)
	default:
		return 0
	}
}
