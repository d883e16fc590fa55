package service

import "errors"

var (
	// ErrNoSessionsToday means end-session found no partition for today.
	ErrNoSessionsToday = errors.New("no sessions found for today")

	// ErrNoActiveSession means today's partition holds no open session.
	ErrNoActiveSession = errors.New("no active session to end")

	// ErrDateRequired means a manual add/edit was submitted without a date.
	ErrDateRequired = errors.New("date is required")

	// ErrInvalidTimeFormat means a clock time was not in H:mm / HH:mm form.
	ErrInvalidTimeFormat = errors.New("invalid time format (use HH:mm)")

	// ErrInvalidRange means the end timestamp precedes the start timestamp.
	ErrInvalidRange = errors.New("end time must not be before start time")

	// ErrSessionNotFound means no session with the given ID exists in the
	// addressed partition.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoDataForPeriod means no stored partition falls in the requested
	// month and year.
	ErrNoDataForPeriod = errors.New("no sessions found for this month/year")
)
