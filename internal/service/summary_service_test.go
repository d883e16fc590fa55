package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/alexanderramin/worklog/internal/testutil"
)

func TestAggregateMonth(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := service.NewSummaryService(store)
	ctx := context.Background()

	// Two closed sessions on March 5th: 09:00-12:00 and 13:00-17:30.
	require.NoError(t, store.Put(ctx, "2025-03-05", []domain.WorkSession{
		testutil.NewTestSession(1, 2025, 3, 5, 9, 0, testutil.WithEnd(12, 0)),
		testutil.NewTestSession(2, 2025, 3, 5, 13, 0, testutil.WithEnd(17, 30)),
	}))

	summary, err := svc.Aggregate(ctx, 3, 2025)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Month)
	assert.Equal(t, 2025, summary.Year)
	require.Len(t, summary.Days, 31)

	day5 := summary.Days[4]
	assert.Equal(t, 5, day5.Day)
	assert.True(t, day5.Worked())
	assert.Equal(t, 9, day5.Since.Hour(), "since is the earliest start")
	assert.Equal(t, 17, day5.Till.Hour(), "till is the latest end")
	assert.Equal(t, 30, day5.Till.Minute())
	assert.InDelta(t, 8.5, day5.Hours, 1e-9)

	for _, d := range summary.Days {
		if d.Day == 5 {
			continue
		}
		assert.False(t, d.Worked(), "day %d has no sessions", d.Day)
		assert.Zero(t, d.Hours)
	}

	assert.InDelta(t, 8.5, summary.TotalHours, 1e-9)
}

func TestAggregateSpansMultipleDays(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := service.NewSummaryService(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "2025-03-05", []domain.WorkSession{
		testutil.NewTestSession(1, 2025, 3, 5, 9, 0, testutil.WithEnd(17, 0)),
	}))
	require.NoError(t, store.Put(ctx, "2025-03-10", []domain.WorkSession{
		testutil.NewTestSession(1, 2025, 3, 10, 10, 0, testutil.WithEnd(14, 30)),
	}))
	// Another month's data must not leak in.
	require.NoError(t, store.Put(ctx, "2025-04-01", []domain.WorkSession{
		testutil.NewTestSession(1, 2025, 4, 1, 9, 0, testutil.WithEnd(17, 0)),
	}))

	summary, err := svc.Aggregate(ctx, 3, 2025)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, summary.TotalHours, 1e-9)
	assert.True(t, summary.Days[4].Worked())
	assert.True(t, summary.Days[9].Worked())
	assert.False(t, summary.Days[0].Worked())
}

func TestAggregateNoDataForPeriod(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := service.NewSummaryService(store)
	ctx := context.Background()

	_, err := svc.Aggregate(ctx, 3, 2025)
	assert.ErrorIs(t, err, service.ErrNoDataForPeriod)

	// Data in other months does not count for this one.
	require.NoError(t, store.Put(ctx, "2025-04-01", []domain.WorkSession{
		testutil.NewTestSession(1, 2025, 4, 1, 9, 0, testutil.WithEnd(17, 0)),
	}))
	_, err = svc.Aggregate(ctx, 3, 2025)
	assert.ErrorIs(t, err, service.ErrNoDataForPeriod)
}

func TestAggregateSkipsOpenSessions(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := service.NewSummaryService(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "2025-03-05", []domain.WorkSession{
		testutil.NewTestSession(1, 2025, 3, 5, 9, 0, testutil.WithEnd(12, 0)),
		testutil.NewTestSession(2, 2025, 3, 5, 13, 0), // still running
	}))

	summary, err := svc.Aggregate(ctx, 3, 2025)
	require.NoError(t, err)

	day5 := summary.Days[4]
	assert.InDelta(t, 3.0, day5.Hours, 1e-9, "open sessions contribute nothing")
	assert.Equal(t, 12, day5.Till.Hour())
}

func TestAggregateCrossMidnightSession(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := service.NewSummaryService(store)
	ctx := context.Background()

	// Stored under the day it started; all hours land on that day.
	start := time.Date(2025, 3, 5, 23, 0, 0, 0, time.Local)
	end := time.Date(2025, 3, 6, 2, 0, 0, 0, time.Local)
	require.NoError(t, store.Put(ctx, "2025-03-05", []domain.WorkSession{
		{ID: 1, StartTime: start, EndTime: &end},
	}))

	summary, err := svc.Aggregate(ctx, 3, 2025)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, summary.Days[4].Hours, 1e-9)
	assert.False(t, summary.Days[5].Worked())
	assert.InDelta(t, 3.0, summary.TotalHours, 1e-9)
}

func TestAggregateLeapFebruary(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := service.NewSummaryService(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "2024-02-29", []domain.WorkSession{
		testutil.NewTestSession(1, 2024, 2, 29, 9, 0, testutil.WithEnd(10, 0)),
	}))

	summary, err := svc.Aggregate(ctx, 2, 2024)
	require.NoError(t, err)
	require.Len(t, summary.Days, 29)
	assert.True(t, summary.Days[28].Worked())
}
