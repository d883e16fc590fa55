package contract

import "time"

// DaySummary is one calendar day's aggregate in a monthly summary. A day
// with no closed sessions has zero Hours and zero-valued Since/Till;
// renderers emit blanks for it so non-working days are visually distinct.
type DaySummary struct {
	Day   int
	Since time.Time
	Till  time.Time
	Hours float64
}

// Worked reports whether any closed session contributed to this day.
func (d DaySummary) Worked() bool {
	return d.Hours > 0
}

// MonthlySummary is the aggregated view of one calendar month, with one
// entry per day from 1 to the month's length. It is the single source of
// truth for every renderer (terminal table, TSV clipboard text, HTML export).
type MonthlySummary struct {
	Month      int
	Year       int
	Days       []DaySummary
	TotalHours float64
}
