package formatter

import (
	"fmt"
	"time"
)

// FormatDuration converts a tracked interval into human-friendly "2h 35m"
// form. Sub-minute remainders are truncated.
func FormatDuration(d time.Duration) string {
	min := int(d.Minutes())
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders fractional hours with two decimals, e.g. "8.50".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}
