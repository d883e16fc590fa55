package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/worklog/internal/backup"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
)

type BackupService interface {
	// Export writes every stored partition to a backup JSON file and
	// returns the number of days written.
	Export(ctx context.Context, path string) (int, error)

	// Import loads a backup file into the store, validating it first.
	// With replace set, existing data is wiped before loading; otherwise
	// imported days overwrite only the partitions they name. Returns the
	// number of days loaded.
	Import(ctx context.Context, path string, replace bool) (int, error)
}

type backupService struct {
	store repository.SessionStore
}

func NewBackupService(store repository.SessionStore) BackupService {
	return &backupService{store: store}
}

func (s *backupService) Export(ctx context.Context, path string) (int, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return 0, err
	}

	byDate := make(map[string][]domain.WorkSession, len(keys))
	for _, key := range keys {
		sessions, err := s.store.Get(ctx, key)
		if err != nil {
			return 0, err
		}
		byDate[key] = sessions
	}

	schema := backup.Build(byDate)
	if err := backup.WriteBackup(path, schema); err != nil {
		return 0, err
	}
	return len(schema.Days), nil
}

func (s *backupService) Import(ctx context.Context, path string, replace bool) (int, error) {
	schema, err := backup.LoadBackup(path)
	if err != nil {
		return 0, err
	}
	if errs := backup.ValidateBackup(schema); len(errs) > 0 {
		return 0, fmt.Errorf("invalid backup file: %w", errors.Join(errs...))
	}

	if replace {
		if err := s.store.Clear(ctx); err != nil {
			return 0, err
		}
	}

	for _, day := range schema.Days {
		sessions, err := backup.ToSessions(day)
		if err != nil {
			return 0, err
		}
		if err := s.store.Put(ctx, day.Date, sessions); err != nil {
			return 0, err
		}
	}
	return len(schema.Days), nil
}
