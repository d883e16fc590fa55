package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SchemaVersion is the current backup file format version.
const SchemaVersion = 1

// BackupSchema is the top-level JSON structure of a worklog backup file.
type BackupSchema struct {
	Version    int         `json:"version"`
	ExportedAt time.Time   `json:"exported_at"`
	Days       []DayExport `json:"days"`
}

// DayExport holds one date partition: the YYYY-MM-DD key and its sessions.
type DayExport struct {
	Date     string          `json:"date"`
	Sessions []SessionExport `json:"sessions"`
}

// SessionExport is one work session in the backup file. Timestamps are
// RFC 3339; End, Description and Tag may be absent.
type SessionExport struct {
	ID          int     `json:"id"`
	Start       string  `json:"start_time"`
	End         *string `json:"end_time,omitempty"`
	Description string  `json:"description,omitempty"`
	Tag         string  `json:"tag,omitempty"`
}

// LoadBackup reads and parses a backup JSON file.
func LoadBackup(path string) (*BackupSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema BackupSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}
	return &schema, nil
}

// WriteBackup writes a backup schema as indented JSON.
func WriteBackup(path string, schema *BackupSchema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}
	return nil
}
