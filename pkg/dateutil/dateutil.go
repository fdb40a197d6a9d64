package dateutil

import (
	"fmt"
	"time"
)

// DateTimeLayout is the layout used for start instants on the command line
// Example: 2004-05-24 19:03
const DateTimeLayout = "2006-01-02 15:04"

// DateLayout is the layout used for calendar dates
const DateLayout = "2006-01-02"

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// TruncateToMinute drops seconds and sub-second precision, keeping the wall clock
func TruncateToMinute(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), date.Hour(), date.Minute(), 0, 0, date.Location())
}

// FormatDateTime formats an instant using DateTimeLayout
func FormatDateTime(date time.Time) string {
	return date.Format(DateTimeLayout)
}

// ParseDateTime parses a start instant in various formats.
// Instants without an offset are interpreted in UTC.
func ParseDateTime(value string) (time.Time, error) {
	formats := []string{
		DateTimeLayout,
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"02.01.2006 15:04",
		DateLayout,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date-time %q, expected format %s", value, DateTimeLayout)
}

// ParseDate parses a calendar date (YYYY-MM-DD or DD.MM.YYYY)
func ParseDate(value string) (time.Time, error) {
	for _, format := range []string{DateLayout, "02.01.2006"} {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q, expected format %s", value, DateLayout)
}
