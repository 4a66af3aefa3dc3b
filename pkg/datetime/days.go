// Package datetime provides date utility functions.
package datetime

import (
	"time"
)

// DateTimeLayout is the month format accepted in configuration files.
const DateTimeLayout = "2006-01"

// DaysInMonth returns the number of calendar days (28-31) in the month
// given as a YYYY-MM string. It backs the day-count selector for the
// first-month interest figure when a quote names a start month instead of
// an explicit day count.
func DaysInMonth(date string) (int, error) {
	t, err := time.Parse(DateTimeLayout, date)
	if err != nil {
		return 0, err
	}
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, 1, -1).Day(), nil
}

// MustParseTime parses a date string using the given layout and panics on
// error. This is intended for use in tests where the date string is known
// to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}
