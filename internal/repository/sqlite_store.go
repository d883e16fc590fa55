package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

// SQLiteSessionStore implements SessionStore over a single key-value table.
// Each row holds one date partition serialized as a JSON array, mirroring
// the stored format: [{"id":1,"start_time":"...","end_time":"...",...}].
type SQLiteSessionStore struct {
	db *sql.DB
}

// NewSQLiteSessionStore creates a new SQLiteSessionStore.
func NewSQLiteSessionStore(db *sql.DB) *SQLiteSessionStore {
	return &SQLiteSessionStore{db: db}
}

func (r *SQLiteSessionStore) Get(ctx context.Context, dateKey string) ([]domain.WorkSession, error) {
	var blob string
	err := r.db.QueryRowContext(ctx,
		`SELECT sessions FROM work_days WHERE date_key = ?`, dateKey).Scan(&blob)
	if err == sql.ErrNoRows {
		return []domain.WorkSession{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading partition %s: %w", dateKey, err)
	}

	var sessions []domain.WorkSession
	if err := json.Unmarshal([]byte(blob), &sessions); err != nil {
		// A corrupted partition must not block access to the rest of the
		// store; treat it as empty.
		return []domain.WorkSession{}, nil
	}
	if sessions == nil {
		sessions = []domain.WorkSession{}
	}
	return sessions, nil
}

func (r *SQLiteSessionStore) Put(ctx context.Context, dateKey string, sessions []domain.WorkSession) error {
	if sessions == nil {
		sessions = []domain.WorkSession{}
	}
	blob, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encoding partition %s: %w", dateKey, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO work_days (date_key, sessions, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(date_key) DO UPDATE SET sessions = excluded.sessions, updated_at = excluded.updated_at`,
		dateKey, string(blob), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing partition %s: %w", dateKey, err)
	}
	return nil
}

func (r *SQLiteSessionStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date_key FROM work_days ORDER BY date_key`)
	if err != nil {
		return nil, fmt.Errorf("listing partition keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning partition key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating partition keys: %w", err)
	}
	return keys, nil
}

func (r *SQLiteSessionStore) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM work_days`); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}
	return nil
}
