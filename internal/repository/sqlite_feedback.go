package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem/internal/db"
	"github.com/tandemlab/tandem/internal/domain"
)

// maxInstancesPerActivity bounds the per-activity feedback instance log.
const maxInstancesPerActivity = 20

// instanceTimeFormat is a fixed-width RFC 3339 layout. Unlike
// time.RFC3339Nano it never drops trailing zeros from the fraction, so
// lexicographic order of stored timestamps matches chronological order
// and the prune query keeps the newest rows.
const instanceTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteFeedbackRepo implements FeedbackRepo using a SQLite database.
type SQLiteFeedbackRepo struct {
	db db.DBTX
}

// NewSQLiteFeedbackRepo creates a new SQLiteFeedbackRepo.
func NewSQLiteFeedbackRepo(conn db.DBTX) *SQLiteFeedbackRepo {
	return &SQLiteFeedbackRepo{db: conn}
}

// Stats returns the aggregated counters for an activity; an activity with no
// recorded feedback yields zeros.
func (r *SQLiteFeedbackRepo) Stats(ctx context.Context, activityID string) (domain.FeedbackStats, error) {
	query := `SELECT thumbs_up, thumbs_down, completed, skipped
		FROM activity_feedback WHERE activity_id = ?`
	row := r.db.QueryRowContext(ctx, query, activityID)

	var s domain.FeedbackStats
	err := row.Scan(&s.ThumbsUp, &s.ThumbsDown, &s.Completed, &s.Skipped)
	if err == sql.ErrNoRows {
		return domain.FeedbackStats{}, nil
	}
	if err != nil {
		return domain.FeedbackStats{}, fmt.Errorf("scanning feedback stats: %w", err)
	}
	return s, nil
}

func (r *SQLiteFeedbackRepo) Record(ctx context.Context, activityID, planID string, ft domain.FeedbackType) error {
	column, err := counterColumn(ft)
	if err != nil {
		return err
	}

	upsert := fmt.Sprintf(`INSERT INTO activity_feedback (activity_id, %s) VALUES (?, 1)
		ON CONFLICT(activity_id) DO UPDATE SET %s = %s + 1`, column, column, column)
	if _, err := r.db.ExecContext(ctx, upsert, activityID); err != nil {
		return fmt.Errorf("recording feedback: %w", err)
	}

	insert := `INSERT INTO feedback_instances (id, activity_id, plan_id, feedback_type, created_at)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, insert,
		uuid.New().String(), activityID, planID, string(ft),
		time.Now().UTC().Format(instanceTimeFormat),
	); err != nil {
		return fmt.Errorf("logging feedback instance: %w", err)
	}

	prune := `DELETE FROM feedback_instances WHERE activity_id = ? AND id NOT IN (
		SELECT id FROM feedback_instances WHERE activity_id = ?
		ORDER BY created_at DESC, id LIMIT ?)`
	if _, err := r.db.ExecContext(ctx, prune, activityID, activityID, maxInstancesPerActivity); err != nil {
		return fmt.Errorf("pruning feedback instances: %w", err)
	}
	return nil
}

// InstanceCount reports how many instance rows an activity currently has.
func (r *SQLiteFeedbackRepo) InstanceCount(ctx context.Context, activityID string) (int, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM feedback_instances WHERE activity_id = ?`, activityID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting feedback instances: %w", err)
	}
	return n, nil
}

func counterColumn(ft domain.FeedbackType) (string, error) {
	switch ft {
	case domain.FeedbackThumbsUp:
		return "thumbs_up", nil
	case domain.FeedbackThumbsDown:
		return "thumbs_down", nil
	case domain.FeedbackCompleted:
		return "completed", nil
	case domain.FeedbackSkipped:
		return "skipped", nil
	default:
		return "", fmt.Errorf("unknown feedback type %q", ft)
	}
}
