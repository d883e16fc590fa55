package backup

import (
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

// ValidateBackup checks a backup schema before conversion. Returns a slice
// of all validation errors found.
func ValidateBackup(schema *BackupSchema) []error {
	var errs []error

	if schema.Version != SchemaVersion {
		errs = append(errs, fmt.Errorf("version: unsupported value %d (expected %d)", schema.Version, SchemaVersion))
	}

	seenDates := make(map[string]bool)
	for i, day := range schema.Days {
		prefix := fmt.Sprintf("days[%d]", i)

		if day.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, _, _, err := domain.ParseDateKey(day.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date %q (expected YYYY-MM-DD)", prefix, day.Date))
		} else if seenDates[day.Date] {
			errs = append(errs, fmt.Errorf("%s.date: duplicate date %q", prefix, day.Date))
		} else {
			seenDates[day.Date] = true
		}

		errs = append(errs, validateSessions(prefix, day)...)
	}

	return errs
}

func validateSessions(prefix string, day DayExport) []error {
	var errs []error

	seenIDs := make(map[int]bool)
	for j, s := range day.Sessions {
		sp := fmt.Sprintf("%s.sessions[%d]", prefix, j)

		if s.ID <= 0 {
			errs = append(errs, fmt.Errorf("%s.id must be positive", sp))
		} else if seenIDs[s.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %d", sp, s.ID))
		} else {
			seenIDs[s.ID] = true
		}

		start, err := time.Parse(time.RFC3339, s.Start)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.start_time: invalid timestamp %q", sp, s.Start))
			continue
		}

		// The partition key is the session's start day.
		if day.Date != "" && domain.DateKey(start.Local()) != day.Date {
			errs = append(errs, fmt.Errorf("%s.start_time: %q does not fall on %q", sp, s.Start, day.Date))
		}

		if s.End != nil {
			end, err := time.Parse(time.RFC3339, *s.End)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s.end_time: invalid timestamp %q", sp, *s.End))
			} else if end.Before(start) {
				errs = append(errs, fmt.Errorf("%s.end_time: %q is before start_time %q", sp, *s.End, s.Start))
			}
		}
	}

	return errs
}
