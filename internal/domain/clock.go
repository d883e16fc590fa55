package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IsValidClockTime reports whether s is a clock time in H:mm or HH:mm form
// with hour 0-23 and minute 0-59.
func IsValidClockTime(s string) bool {
	_, _, err := parseClock(s)
	return err == nil
}

// parseClock splits an H:mm / HH:mm string into hour and minute.
func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 ||
		!allDigits(parts[0]) || !allDigits(parts[1]) {
		return 0, 0, fmt.Errorf("clock time %q: want H:mm or HH:mm", s)
	}
	hour, _ = strconv.Atoi(parts[0])
	if hour > 23 {
		return 0, 0, fmt.Errorf("clock time %q: hour out of range", s)
	}
	minute, _ = strconv.Atoi(parts[1])
	if minute > 59 {
		return 0, 0, fmt.Errorf("clock time %q: minute out of range", s)
	}
	return hour, minute, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CombineDateAndTime produces a timestamp on date's calendar day at the given
// H:mm clock time, in date's location. Seconds and below are zeroed.
func CombineDateAndTime(date time.Time, hhmm string) (time.Time, error) {
	hour, minute, err := parseClock(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// FormatClock renders t's clock time as H:mm — hour unpadded, minutes padded.
// This is the since/till format used in summaries.
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

// FormatClockPadded renders t's clock time as HH:mm, for session listings.
func FormatClockPadded(t time.Time) string {
	return t.Format("15:04")
}
