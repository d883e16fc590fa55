package domain

import (
	"sort"
	"time"
)

// WorkSession is a single tracked work interval. A session without an
// EndTime is open (in progress). JSON field names match the stored
// partition format; optional fields marshal away when absent.
type WorkSession struct {
	ID          int        `json:"id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Description string     `json:"description,omitempty"`
	Tag         string     `json:"tag,omitempty"`
}

// IsOpen reports whether the session has not been ended yet.
func (s WorkSession) IsOpen() bool {
	return s.EndTime == nil
}

// Duration returns the tracked length of the session, or 0 while open.
func (s WorkSession) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// Hours returns the tracked length in fractional hours, or 0 while open.
func (s WorkSession) Hours() float64 {
	return s.Duration().Hours()
}

// SortByStart orders sessions by ascending start time. Insertion order in a
// partition carries no meaning; consumers re-sort for display.
func SortByStart(sessions []WorkSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
}

// NextID returns the ID for a session appended to the given partition:
// 1 for an empty partition, otherwise max existing ID + 1. IDs are not
// assumed to be dense or sorted.
func NextID(sessions []WorkSession) int {
	max := 0
	for _, s := range sessions {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}
