package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/testutil"
)

func TestToSessions(t *testing.T) {
	sessions, err := ToSessions(validDay())
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	s := sessions[0]
	assert.Equal(t, 1, s.ID)
	assert.True(t, s.StartTime.Equal(time.Date(2025, 3, 5, 9, 0, 0, 0, time.Local)))
	require.NotNil(t, s.EndTime)
	assert.True(t, s.EndTime.Equal(time.Date(2025, 3, 5, 12, 0, 0, 0, time.Local)))
	assert.Equal(t, "morning block", s.Description)
}

func TestToSessionsOpenSession(t *testing.T) {
	day := DayExport{
		Date: "2025-03-05",
		Sessions: []SessionExport{
			{ID: 1, Start: time.Date(2025, 3, 5, 9, 0, 0, 0, time.Local).Format(time.RFC3339)},
		},
	}

	sessions, err := ToSessions(day)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].IsOpen())
}

func TestBuildSortsDaysAndRoundTrips(t *testing.T) {
	byDate := map[string][]domain.WorkSession{
		"2025-03-20": {testutil.NewTestSession(1, 2025, 3, 20, 9, 0, testutil.WithEnd(17, 0))},
		"2025-03-05": {
			testutil.NewTestSession(1, 2025, 3, 5, 9, 0, testutil.WithEnd(12, 0), testutil.WithTag("#focus")),
			testutil.NewTestSession(2, 2025, 3, 5, 13, 0),
		},
	}

	schema := Build(byDate)
	assert.Equal(t, SchemaVersion, schema.Version)
	require.Len(t, schema.Days, 2)
	assert.Equal(t, "2025-03-05", schema.Days[0].Date)
	assert.Equal(t, "2025-03-20", schema.Days[1].Date)

	assert.Empty(t, ValidateBackup(schema), "built schemas are always valid")

	restored, err := ToSessions(schema.Days[0])
	require.NoError(t, err)
	require.Len(t, restored, 2)
	assert.True(t, restored[0].StartTime.Equal(byDate["2025-03-05"][0].StartTime))
	assert.Equal(t, "#focus", restored[0].Tag)
	assert.Nil(t, restored[1].EndTime)
}
