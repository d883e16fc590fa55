package backup

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

// ToSessions converts one exported day into domain sessions ready for
// persistence. Call ValidateBackup first; ToSessions assumes valid input.
func ToSessions(day DayExport) ([]domain.WorkSession, error) {
	sessions := make([]domain.WorkSession, 0, len(day.Sessions))
	for _, s := range day.Sessions {
		start, err := time.Parse(time.RFC3339, s.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing start_time %q: %w", s.Start, err)
		}

		session := domain.WorkSession{
			ID:          s.ID,
			StartTime:   start.Local(),
			Description: s.Description,
			Tag:         s.Tag,
		}
		if s.End != nil {
			end, err := time.Parse(time.RFC3339, *s.End)
			if err != nil {
				return nil, fmt.Errorf("parsing end_time %q: %w", *s.End, err)
			}
			local := end.Local()
			session.EndTime = &local
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// Build assembles a backup schema from stored partitions, days sorted by
// date key.
func Build(byDate map[string][]domain.WorkSession) *BackupSchema {
	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	schema := &BackupSchema{
		Version:    SchemaVersion,
		ExportedAt: time.Now().UTC(),
	}
	for _, key := range keys {
		day := DayExport{Date: key, Sessions: []SessionExport{}}
		for _, s := range byDate[key] {
			export := SessionExport{
				ID:          s.ID,
				Start:       s.StartTime.Format(time.RFC3339),
				Description: s.Description,
				Tag:         s.Tag,
			}
			if s.EndTime != nil {
				end := s.EndTime.Format(time.RFC3339)
				export.End = &end
			}
			day.Sessions = append(day.Sessions, export)
		}
		schema.Days = append(schema.Days, day)
	}
	return schema
}
