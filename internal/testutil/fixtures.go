package testutil

import (
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

// SessionOption mutates a test session under construction.
type SessionOption func(*domain.WorkSession)

// WithEnd closes the session at the given local clock time on the start's day.
func WithEnd(hour, minute int) SessionOption {
	return func(s *domain.WorkSession) {
		end := time.Date(s.StartTime.Year(), s.StartTime.Month(), s.StartTime.Day(),
			hour, minute, 0, 0, s.StartTime.Location())
		s.EndTime = &end
	}
}

// WithDescription sets the session description.
func WithDescription(d string) SessionOption {
	return func(s *domain.WorkSession) {
		s.Description = d
	}
}

// WithTag sets the session tag.
func WithTag(tag string) SessionOption {
	return func(s *domain.WorkSession) {
		s.Tag = tag
	}
}

// NewTestSession builds an open session starting at the given local clock
// time on the given date. Options close it or fill optional fields.
func NewTestSession(id, year, month, day, hour, minute int, opts ...SessionOption) domain.WorkSession {
	s := domain.WorkSession{
		ID:        id,
		StartTime: time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
