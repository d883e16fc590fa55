package repository

import (
	"context"

	"github.com/alexanderramin/worklog/internal/domain"
)

// SessionStore persists date-keyed partitions of work sessions. Each
// partition is read and written whole; there are no partial updates, so
// concurrent writers racing on the same key are last-writer-wins.
type SessionStore interface {
	// Get returns the sessions stored under the given YYYY-MM-DD key.
	// An absent key or unparsable partition yields an empty slice, not an error.
	Get(ctx context.Context, dateKey string) ([]domain.WorkSession, error)

	// Put overwrites the entire partition under the given key.
	Put(ctx context.Context, dateKey string, sessions []domain.WorkSession) error

	// Keys lists every partition key currently stored.
	Keys(ctx context.Context) ([]string, error)

	// Clear removes all partitions. Irreversible.
	Clear(ctx context.Context) error
}
