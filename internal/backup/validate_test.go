package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validDay() DayExport {
	start := time.Date(2025, 3, 5, 9, 0, 0, 0, time.Local).Format(time.RFC3339)
	end := time.Date(2025, 3, 5, 12, 0, 0, 0, time.Local).Format(time.RFC3339)
	return DayExport{
		Date: "2025-03-05",
		Sessions: []SessionExport{
			{ID: 1, Start: start, End: &end, Description: "morning block"},
		},
	}
}

func TestValidateBackupAcceptsValidSchema(t *testing.T) {
	schema := &BackupSchema{Version: SchemaVersion, Days: []DayExport{validDay()}}
	assert.Empty(t, ValidateBackup(schema))
}

func TestValidateBackupVersion(t *testing.T) {
	schema := &BackupSchema{Version: 99, Days: []DayExport{validDay()}}
	errs := ValidateBackup(schema)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "version")
}

func TestValidateBackupDates(t *testing.T) {
	day := validDay()
	schema := &BackupSchema{Version: SchemaVersion, Days: []DayExport{
		{Date: ""},
		{Date: "05/03/2025"},
		day,
		day, // duplicate
	}}

	errs := ValidateBackup(schema)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "days[0].date is required")
	assert.Contains(t, errs[1].Error(), "invalid date")
	assert.Contains(t, errs[2].Error(), "duplicate date")
}

func TestValidateBackupSessions(t *testing.T) {
	start := time.Date(2025, 3, 5, 9, 0, 0, 0, time.Local).Format(time.RFC3339)
	wrongDayStart := time.Date(2025, 3, 6, 9, 0, 0, 0, time.Local).Format(time.RFC3339)
	badEnd := time.Date(2025, 3, 5, 8, 0, 0, 0, time.Local).Format(time.RFC3339)

	schema := &BackupSchema{Version: SchemaVersion, Days: []DayExport{{
		Date: "2025-03-05",
		Sessions: []SessionExport{
			{ID: 0, Start: start},
			{ID: 1, Start: "yesterday at nine"},
			{ID: 1, Start: start},
			{ID: 2, Start: wrongDayStart},
			{ID: 3, Start: start, End: &badEnd},
		},
	}}}

	errs := ValidateBackup(schema)
	assert.Len(t, errs, 5)
	assert.Contains(t, errs[0].Error(), "id must be positive")
	assert.Contains(t, errs[1].Error(), "invalid timestamp")
	assert.Contains(t, errs[2].Error(), "duplicate id")
	assert.Contains(t, errs[3].Error(), "does not fall on")
	assert.Contains(t, errs[4].Error(), "before start_time")
}

func TestValidateBackupCrossMidnightEnd(t *testing.T) {
	// An end on the next calendar day is fine; only the start must match
	// the partition date.
	start := time.Date(2025, 3, 5, 23, 0, 0, 0, time.Local).Format(time.RFC3339)
	end := time.Date(2025, 3, 6, 2, 0, 0, 0, time.Local).Format(time.RFC3339)

	schema := &BackupSchema{Version: SchemaVersion, Days: []DayExport{{
		Date:     "2025-03-05",
		Sessions: []SessionExport{{ID: 1, Start: start, End: &end}},
	}}}

	assert.Empty(t, ValidateBackup(schema))
}
