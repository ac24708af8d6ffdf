package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tandemlab/tandem/internal/db"
	"github.com/tandemlab/tandem/internal/domain"
)

// maxHistorySize bounds the plan history; older entries are pruned on append.
const maxHistorySize = 50

// SQLitePlanHistoryRepo implements PlanHistoryRepo using a SQLite database.
type SQLitePlanHistoryRepo struct {
	db db.DBTX
}

// NewSQLitePlanHistoryRepo creates a new SQLitePlanHistoryRepo.
func NewSQLitePlanHistoryRepo(conn db.DBTX) *SQLitePlanHistoryRepo {
	return &SQLitePlanHistoryRepo{db: conn}
}

func (r *SQLitePlanHistoryRepo) Append(ctx context.Context, s domain.PlanSummary) error {
	idsJSON, err := json.Marshal(s.ActivityIDs)
	if err != nil {
		return fmt.Errorf("encoding activity ids: %w", err)
	}
	paramsJSON, err := json.Marshal(s.Params)
	if err != nil {
		return fmt.Errorf("encoding plan params: %w", err)
	}

	query := `INSERT OR REPLACE INTO plan_history
		(id, title, reasoning, total_duration_min, activity_count, activity_ids, params, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Title,
		s.Reasoning,
		s.TotalDurationMin,
		s.ActivityCount,
		string(idsJSON),
		string(paramsJSON),
		s.GeneratedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending plan history: %w", err)
	}

	prune := `DELETE FROM plan_history WHERE id NOT IN (
		SELECT id FROM plan_history ORDER BY generated_at DESC, id LIMIT ?)`
	if _, err := r.db.ExecContext(ctx, prune, maxHistorySize); err != nil {
		return fmt.Errorf("pruning plan history: %w", err)
	}
	return nil
}

func (r *SQLitePlanHistoryRepo) ListRecent(ctx context.Context, n int) ([]domain.PlanSummary, error) {
	query := `SELECT id, title, reasoning, total_duration_min, activity_count, activity_ids, params, generated_at
		FROM plan_history ORDER BY generated_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("listing plan history: %w", err)
	}
	defer rows.Close()

	var summaries []domain.PlanSummary
	for rows.Next() {
		var s domain.PlanSummary
		var idsJSON, paramsJSON, generatedAt string
		if err := rows.Scan(&s.ID, &s.Title, &s.Reasoning, &s.TotalDurationMin,
			&s.ActivityCount, &idsJSON, &paramsJSON, &generatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan summary: %w", err)
		}
		if err := json.Unmarshal([]byte(idsJSON), &s.ActivityIDs); err != nil {
			return nil, fmt.Errorf("decoding activity ids: %w", err)
		}
		if err := json.Unmarshal([]byte(paramsJSON), &s.Params); err != nil {
			return nil, fmt.Errorf("decoding plan params: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, generatedAt); err == nil {
			s.GeneratedAt = t
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *SQLitePlanHistoryRepo) RecentActivityIDs(ctx context.Context, n int) (map[string]bool, error) {
	summaries, err := r.ListRecent(ctx, n)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool)
	for _, s := range summaries {
		for _, id := range s.ActivityIDs {
			ids[id] = true
		}
	}
	return ids, nil
}
