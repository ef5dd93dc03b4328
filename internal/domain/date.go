package domain

import "time"

const (
	// dayLayout is the wire format for calendar dates on input.
	dayLayout = "2006-01-02"
	// logLayout is the fixed rendering for dates in responses,
	// e.g. "Mon Jan 01 1990".
	logLayout = "Mon Jan 02 2006"
)

// ParseDay parses a YYYY-MM-DD calendar date into a UTC-midnight time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}

// Today returns the current calendar date at UTC midnight.
func Today() time.Time {
	return DayOf(time.Now())
}

// DayOf truncates a moment to its calendar date at UTC midnight.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDay renders a calendar date in the fixed response format.
func FormatDay(t time.Time) string {
	return t.Format(logLayout)
}
