package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 2), "leap year February")
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 31, DaysInMonth(2025, 1))
	assert.Equal(t, 30, DaysInMonth(2025, 4))
	assert.Equal(t, 31, DaysInMonth(2025, 12))
	assert.Equal(t, 28, DaysInMonth(2100, 2), "century non-leap year")
}

func TestParseDateKey(t *testing.T) {
	year, month, day, err := ParseDateKey("2025-03-05")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 5, day)

	for _, bad := range []string{"", "garbage", "2025-13-05", "2025-02-30", "05-03-2025"} {
		_, _, _, err := ParseDateKey(bad)
		assert.Error(t, err, "expected %q to fail", bad)
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	key := MakeDateKey(2025, 3, 5)
	assert.Equal(t, "2025-03-05", key)

	assert.Equal(t, key, DateKey(time.Date(2025, 3, 5, 23, 59, 0, 0, time.Local)))
}

func TestKeyInMonth(t *testing.T) {
	assert.True(t, KeyInMonth("2025-03-05", 3, 2025))
	assert.False(t, KeyInMonth("2025-03-05", 4, 2025))
	assert.False(t, KeyInMonth("2025-03-05", 3, 2024))
	assert.False(t, KeyInMonth("not-a-key", 3, 2025), "malformed keys never match")
}
