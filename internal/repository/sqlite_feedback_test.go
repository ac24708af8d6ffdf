package repository

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tandemlab/tandem/internal/domain"
	"github.com/tandemlab/tandem/internal/testutil"
)

func TestSQLiteFeedbackRepo_StatsForUnknownActivity(t *testing.T) {
	repo := NewSQLiteFeedbackRepo(testutil.NewTestDB(t))

	stats, err := repo.Stats(context.Background(), "nunca-visto")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStats{}, stats)
}

func TestSQLiteFeedbackRepo_RecordAccumulatesCounters(t *testing.T) {
	repo := NewSQLiteFeedbackRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, "juego", "p1", domain.FeedbackThumbsUp))
	require.NoError(t, repo.Record(ctx, "juego", "p2", domain.FeedbackThumbsUp))
	require.NoError(t, repo.Record(ctx, "juego", "p2", domain.FeedbackCompleted))
	require.NoError(t, repo.Record(ctx, "juego", "p3", domain.FeedbackSkipped))

	stats, err := repo.Stats(ctx, "juego")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStats{ThumbsUp: 2, Completed: 1, Skipped: 1}, stats)
}

func TestSQLiteFeedbackRepo_CountersAreSeparatePerActivity(t *testing.T) {
	repo := NewSQLiteFeedbackRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, "juego", "p1", domain.FeedbackThumbsUp))
	require.NoError(t, repo.Record(ctx, "paseo", "p1", domain.FeedbackThumbsDown))

	stats, err := repo.Stats(ctx, "paseo")
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStats{ThumbsDown: 1}, stats)
}

func TestSQLiteFeedbackRepo_UnknownTypeRejected(t *testing.T) {
	repo := NewSQLiteFeedbackRepo(testutil.NewTestDB(t))

	err := repo.Record(context.Background(), "juego", "p1", "meh")
	assert.ErrorContains(t, err, `unknown feedback type "meh"`)
}

func TestSQLiteFeedbackRepo_InstanceLogBounded(t *testing.T) {
	repo := NewSQLiteFeedbackRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i := 0; i < maxInstancesPerActivity+7; i++ {
		require.NoError(t, repo.Record(ctx, "juego", "p1", domain.FeedbackThumbsUp))
	}

	n, err := repo.InstanceCount(ctx, "juego")
	require.NoError(t, err)
	assert.Equal(t, maxInstancesPerActivity, n)

	// Counters keep the full tally even after instances have been pruned.
	stats, err := repo.Stats(ctx, "juego")
	require.NoError(t, err)
	assert.Equal(t, maxInstancesPerActivity+7, stats.ThumbsUp)
}

func TestInstanceTimeFormat_SortsChronologically(t *testing.T) {
	// time.RFC3339Nano drops trailing zeros, which makes ".99" sort after
	// ".999999" as text. The fixed-width layout must not have that hazard.
	base := time.Date(2026, 3, 14, 9, 26, 5, 0, time.UTC)
	instants := []time.Time{
		base.Add(990 * time.Millisecond),
		base.Add(999999 * time.Microsecond),
		base.Add(time.Second),
		base.Add(100 * time.Millisecond),
	}

	formatted := make([]string, len(instants))
	for i, ts := range instants {
		formatted[i] = ts.Format(instanceTimeFormat)
		assert.Len(t, formatted[i], len("2026-03-14T09:26:05.000000000Z"))
	}

	sorted := append([]string(nil), formatted...)
	sort.Strings(sorted)

	chronological := append([]time.Time(nil), instants...)
	sort.Slice(chronological, func(i, j int) bool { return chronological[i].Before(chronological[j]) })
	want := make([]string, len(chronological))
	for i, ts := range chronological {
		want[i] = ts.Format(instanceTimeFormat)
	}
	assert.Equal(t, want, sorted)
}
