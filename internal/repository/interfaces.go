package repository

import (
	"context"
	"errors"

	"github.com/tandemlab/tandem/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// HeuristicsRepo persists the single tunable heuristics snapshot.
type HeuristicsRepo interface {
	Get(ctx context.Context) (*domain.Heuristics, error)
	Save(ctx context.Context, h domain.Heuristics) error
}

// PlanHistoryRepo keeps a bounded log of generated plan summaries,
// most-recent-first.
type PlanHistoryRepo interface {
	Append(ctx context.Context, s domain.PlanSummary) error
	ListRecent(ctx context.Context, n int) ([]domain.PlanSummary, error)
	// RecentActivityIDs returns the distinct activity ids appearing in the
	// last n plans.
	RecentActivityIDs(ctx context.Context, n int) (map[string]bool, error)
}

// FeedbackRepo aggregates per-activity feedback counters and keeps a bounded
// instance log per activity.
type FeedbackRepo interface {
	Stats(ctx context.Context, activityID string) (domain.FeedbackStats, error)
	Record(ctx context.Context, activityID, planID string, ft domain.FeedbackType) error
}
