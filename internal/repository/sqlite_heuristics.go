package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tandemlab/tandem/internal/db"
	"github.com/tandemlab/tandem/internal/domain"
)

// the heuristics table holds one row.
const heuristicsRowID = "default"

// SQLiteHeuristicsRepo implements HeuristicsRepo using a SQLite database.
type SQLiteHeuristicsRepo struct {
	db db.DBTX
}

// NewSQLiteHeuristicsRepo creates a new SQLiteHeuristicsRepo.
func NewSQLiteHeuristicsRepo(conn db.DBTX) *SQLiteHeuristicsRepo {
	return &SQLiteHeuristicsRepo{db: conn}
}

func (r *SQLiteHeuristicsRepo) Get(ctx context.Context) (*domain.Heuristics, error) {
	query := `SELECT tag_match_weight, intensity_match_weight, variety_bonus,
		recency_penalty, feedback_weight, min_transition_min, max_transition_min, surprise_mix
		FROM heuristics WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, heuristicsRowID)

	var h domain.Heuristics
	var mixJSON string
	err := row.Scan(
		&h.TagMatchWeight,
		&h.IntensityMatchWeight,
		&h.VarietyBonus,
		&h.RecencyPenalty,
		&h.FeedbackWeight,
		&h.MinTransitionMin,
		&h.MaxTransitionMin,
		&mixJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("heuristics: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning heuristics: %w", err)
	}

	if err := json.Unmarshal([]byte(mixJSON), &h.SurpriseMix); err != nil {
		return nil, fmt.Errorf("decoding surprise mix: %w", err)
	}
	return &h, nil
}

func (r *SQLiteHeuristicsRepo) Save(ctx context.Context, h domain.Heuristics) error {
	mixJSON, err := json.Marshal(h.SurpriseMix)
	if err != nil {
		return fmt.Errorf("encoding surprise mix: %w", err)
	}

	query := `INSERT OR REPLACE INTO heuristics (id, tag_match_weight, intensity_match_weight,
		variety_bonus, recency_penalty, feedback_weight, min_transition_min, max_transition_min,
		surprise_mix, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		heuristicsRowID,
		h.TagMatchWeight,
		h.IntensityMatchWeight,
		h.VarietyBonus,
		h.RecencyPenalty,
		h.FeedbackWeight,
		h.MinTransitionMin,
		h.MaxTransitionMin,
		string(mixJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving heuristics: %w", err)
	}
	return nil
}
