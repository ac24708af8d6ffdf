package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list re-runs safely on each startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS heuristics (
		id TEXT PRIMARY KEY,
		tag_match_weight REAL NOT NULL,
		intensity_match_weight REAL NOT NULL,
		variety_bonus REAL NOT NULL,
		recency_penalty REAL NOT NULL,
		feedback_weight REAL NOT NULL,
		min_transition_min INTEGER NOT NULL,
		max_transition_min INTEGER NOT NULL,
		surprise_mix TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_history (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		reasoning TEXT NOT NULL,
		total_duration_min INTEGER NOT NULL,
		activity_count INTEGER NOT NULL,
		activity_ids TEXT NOT NULL,
		params TEXT NOT NULL,
		generated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_history_generated_at
		ON plan_history(generated_at DESC)`,

	`CREATE TABLE IF NOT EXISTS activity_feedback (
		activity_id TEXT PRIMARY KEY,
		thumbs_up INTEGER NOT NULL DEFAULT 0,
		thumbs_down INTEGER NOT NULL DEFAULT 0,
		completed INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS feedback_instances (
		id TEXT PRIMARY KEY,
		activity_id TEXT NOT NULL,
		plan_id TEXT NOT NULL,
		feedback_type TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_feedback_instances_activity
		ON feedback_instances(activity_id, created_at DESC)`,
}
