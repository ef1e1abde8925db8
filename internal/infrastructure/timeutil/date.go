// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import "time"

// DateLayout is the YYYY-MM-DD calendar date layout used throughout the
// search pipeline and by the upstream flight APIs.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a time as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays returns the calendar date the given number of days after t.
// Days may be negative.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
