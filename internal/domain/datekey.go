package domain

import (
	"fmt"
	"time"
)

// dateKeyLayout is the partition key format: one key per calendar date.
const dateKeyLayout = "2006-01-02"

// DateKey returns the partition key for the calendar date of t, in t's location.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// MakeDateKey builds a YYYY-MM-DD partition key from its components.
func MakeDateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseDateKey splits a YYYY-MM-DD partition key into its components.
func ParseDateKey(key string) (year, month, day int, err error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parsing date key %q: %w", key, err)
	}
	return t.Year(), int(t.Month()), t.Day(), nil
}

// KeyInMonth reports whether the partition key falls in the given month and
// year. Malformed keys never match.
func KeyInMonth(key string, month, year int) bool {
	y, m, _, err := ParseDateKey(key)
	if err != nil {
		return false
	}
	return y == year && m == month
}

// DaysInMonth returns the number of days in the given month of the proleptic
// Gregorian calendar. Day zero of the next month is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
