// Package period turns month/year selections into half-open date windows and
// computes budgeting cycle boundaries.
//
// Expense dates are calendar dates stored as UTC midnight, so every window
// produced here is expressed in UTC as well. The caller's timezone only matters
// when deciding which month "now" falls in.
package period

import (
	"fmt"
	"math"
	"time"
)

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// MonthWindow returns [first day of month, first day of next month).
func MonthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// Month identifies a calendar month. Month values are 1-based.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Window returns the month's date window.
func (m Month) Window() Window {
	return MonthWindow(m.Year, m.Month)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return DaysIn(m.Year, m.Month)
}

// Current returns the month now falls in, evaluated in now's location.
func Current(now time.Time) Month {
	return Month{Year: now.Year(), Month: now.Month()}
}

// Resolve applies the current-month defaults to an optional month (1-12) and
// year. An out-of-range month or a non-positive year is rejected.
func Resolve(month, year *int, now time.Time) (Month, error) {
	m := Current(now)
	if month != nil {
		if *month < 1 || *month > 12 {
			return Month{}, fmt.Errorf("month must be between 1 and 12, got %d", *month)
		}
		m.Month = time.Month(*month)
	}
	if year != nil {
		if *year < 1 {
			return Month{}, fmt.Errorf("year must be positive, got %d", *year)
		}
		m.Year = *year
	}
	return m, nil
}

// CalendarDate drops the time of day from t, keeping the calendar date as
// seen in t's own location, and returns it as UTC midnight.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Cycle describes the budgeting cycle that contains a given day.
type Cycle struct {
	StartDay      int       `json:"start_day"`
	Start         time.Time `json:"start"`
	NextReset     time.Time `json:"next_reset"`
	DaysRemaining int       `json:"days_remaining"`
}

// CurrentCycle returns the cycle containing now for a cycle that resets on
// startDay of every month. startDay must be within 1-28 so that it exists in
// every month.
func CurrentCycle(now time.Time, startDay int) (Cycle, error) {
	if startDay < 1 || startDay > 28 {
		return Cycle{}, fmt.Errorf("cycle start day must be between 1 and 28, got %d", startDay)
	}

	today := CalendarDate(now)
	start := time.Date(today.Year(), today.Month(), startDay, 0, 0, 0, 0, time.UTC)
	if today.Day() < startDay {
		start = start.AddDate(0, -1, 0)
	}
	next := start.AddDate(0, 1, 0)

	return Cycle{
		StartDay:      startDay,
		Start:         start,
		NextReset:     next,
		DaysRemaining: int(math.Ceil(next.Sub(today).Hours() / 24)),
	}, nil
}
