package domain

import "time"

// ScheduledItem is one slot in a plan timeline: either a concrete activity
// with a chosen duration, or a synthetic transition between two activities.
type ScheduledItem struct {
	ActivityID     string // empty for transitions
	Title          string
	Description    string
	Tags           []string
	Intensity      Intensity
	Cost           float64
	RequiredAssets []string
	Steps          []string
	DurationMin    int
	StartMin       int // minutes from plan start
	Transition     bool
}

// PlanParams echoes the generation parameters a plan was built from.
type PlanParams struct {
	Mood      Mood
	TimeOfDay TimeOfDay
	TargetMin int
	Surprise  int
	Weights   map[string]int // profile name -> 0-100
}

// Plan is the final timed sequence returned to the caller. It is created
// once and never mutated; feedback references it by ID.
type Plan struct {
	ID               string
	Title            string
	Reasoning        string
	Items            []ScheduledItem
	TotalDurationMin int
	RequiredAssets   []string
	Params           PlanParams
	GeneratedAt      time.Time
}

// ActivityIDs returns the ids of the real (non-transition) items, in order.
func (p Plan) ActivityIDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		if !item.Transition {
			ids = append(ids, item.ActivityID)
		}
	}
	return ids
}

// Summary reduces a plan to the form kept in history.
func (p Plan) Summary() PlanSummary {
	return PlanSummary{
		ID:               p.ID,
		Title:            p.Title,
		Reasoning:        p.Reasoning,
		TotalDurationMin: p.TotalDurationMin,
		ActivityIDs:      p.ActivityIDs(),
		ActivityCount:    len(p.ActivityIDs()),
		Params:           p.Params,
		GeneratedAt:      p.GeneratedAt,
	}
}

// PlanSummary is the bounded history record persisted per generated plan.
type PlanSummary struct {
	ID               string
	Title            string
	Reasoning        string
	TotalDurationMin int
	ActivityIDs      []string
	ActivityCount    int
	Params           PlanParams
	GeneratedAt      time.Time
}
