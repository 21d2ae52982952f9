package services

import "time"

// testNow is the fixed "today" used by service tests: 2025-03-15 10:30 UTC.
var testNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
