package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore creates a SessionStore backed by an in-memory database.
func NewTestStore(t *testing.T) *repository.SQLiteSessionStore {
	t.Helper()
	return repository.NewSQLiteSessionStore(NewTestDB(t))
}
