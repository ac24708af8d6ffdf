package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tandemlab/tandem/internal/domain"
	"github.com/tandemlab/tandem/internal/testutil"
)

func summaryAt(id string, generatedAt time.Time, activityIDs ...string) domain.PlanSummary {
	return domain.PlanSummary{
		ID:               id,
		Title:            "Plan",
		Reasoning:        "porque sí",
		TotalDurationMin: 60,
		ActivityIDs:      activityIDs,
		ActivityCount:    len(activityIDs),
		Params:           domain.PlanParams{TargetMin: 60, Surprise: 30, Weights: map[string]int{"ana": 50, "bruno": 50}},
		GeneratedAt:      generatedAt,
	}
}

func TestSQLitePlanHistoryRepo_RoundTrip(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, summaryAt("p1", base, "a", "b")))

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, []string{"a", "b"}, got[0].ActivityIDs)
	assert.Equal(t, 2, got[0].ActivityCount)
	assert.Equal(t, map[string]int{"ana": 50, "bruno": 50}, got[0].Params.Weights)
	assert.True(t, got[0].GeneratedAt.Equal(base))
}

func TestSQLitePlanHistoryRepo_MostRecentFirst(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, summaryAt("viejo", base, "a")))
	require.NoError(t, repo.Append(ctx, summaryAt("nuevo", base.Add(time.Hour), "b")))

	got, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "nuevo", got[0].ID)
}

func TestSQLitePlanHistoryRepo_PrunesBeyondCap(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < maxHistorySize+5; i++ {
		s := summaryAt(fmt.Sprintf("p%03d", i), base.Add(time.Duration(i)*time.Hour), "a")
		require.NoError(t, repo.Append(ctx, s))
	}

	got, err := repo.ListRecent(ctx, maxHistorySize*2)
	require.NoError(t, err)
	assert.Len(t, got, maxHistorySize)
	assert.Equal(t, "p054", got[0].ID, "the newest entries survive pruning")
}

func TestSQLitePlanHistoryRepo_RecentActivityIDs(t *testing.T) {
	repo := NewSQLitePlanHistoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, summaryAt("p1", base, "a", "b")))
	require.NoError(t, repo.Append(ctx, summaryAt("p2", base.Add(time.Hour), "b", "c")))
	require.NoError(t, repo.Append(ctx, summaryAt("p3", base.Add(2*time.Hour), "d")))

	ids, err := repo.RecentActivityIDs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"b": true, "c": true, "d": true}, ids,
		"only the last two plans feed the recency window")
}
