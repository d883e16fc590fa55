package service

import (
	"context"

	"github.com/alexanderramin/worklog/internal/contract"
	"github.com/alexanderramin/worklog/internal/domain"
)

// SessionInput carries the fields of a manual add or edit. Date is a
// YYYY-MM-DD key; Start and End are H:mm clock times on that date. End,
// Description and Tag may be blank.
type SessionInput struct {
	Date        string
	Start       string
	End         string
	Description string
	Tag         string
}

type SessionService interface {
	// Start opens a new session under today's partition.
	Start(ctx context.Context) (*domain.WorkSession, error)

	// End closes the most recently started open session of today,
	// applying non-blank description/tag overrides.
	End(ctx context.Context, description, tag string) (*domain.WorkSession, error)

	// Add appends a manually entered session to the partition named by
	// input.Date.
	Add(ctx context.Context, input SessionInput) (*domain.WorkSession, error)

	// Edit replaces the session with the given id in the partition under
	// dateKey. When input.Date differs from dateKey the session moves to
	// the new partition (removed from the old key, inserted under the new
	// one with a fresh id there).
	Edit(ctx context.Context, dateKey string, id int, input SessionInput) (*domain.WorkSession, error)

	// Remove deletes one session by id from its partition.
	Remove(ctx context.Context, dateKey string, id int) error

	// RemoveAll deletes every stored partition.
	RemoveAll(ctx context.Context) error

	// Day returns the sessions stored under one date key, empty when none.
	Day(ctx context.Context, dateKey string) ([]domain.WorkSession, error)

	// List returns all stored partitions keyed by date.
	List(ctx context.Context) (map[string][]domain.WorkSession, error)

	// ListMonth returns the partitions whose key falls in the given month.
	ListMonth(ctx context.Context, month, year int) (map[string][]domain.WorkSession, error)
}

type SummaryService interface {
	// Aggregate computes the per-day and total hours for one month.
	Aggregate(ctx context.Context, month, year int) (*contract.MonthlySummary, error)
}
