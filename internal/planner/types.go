package planner

import (
	"math/rand"
	"time"

	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/domain"
)

// Context carries the situational inputs that influence scoring.
type Context struct {
	Mood      domain.Mood
	TimeOfDay domain.TimeOfDay
	Surprise  int
}

// ScoredActivity is an activity annotated with its desirability score and the
// factor breakdown that produced it.
type ScoredActivity struct {
	Activity domain.Activity
	Score    float64
	Reasons  []app.ScoreReason
}

// Request bundles every input to one generation run. All collaborator data
// (heuristics, history, feedback) arrives as a snapshot; the planner itself
// touches no store.
type Request struct {
	Activities  []domain.Activity
	Profiles    []domain.WeightedProfile
	Weights     map[string]int // echoed into the plan parameters
	Constraints app.Constraints
	Heuristics  domain.Heuristics
	Context     Context
	TargetMin   int
	RecentIDs   map[string]bool // activity ids seen in recent plans
	// Feedback resolves per-activity stats; nil means no feedback signal.
	Feedback func(activityID string) domain.FeedbackStats
	Rand     *rand.Rand
	Now      time.Time
}

// Result is a generated plan plus the scored pool it was drawn from.
type Result struct {
	Plan     *domain.Plan
	Pool     []ScoredActivity
	Degraded bool // constraints eliminated every candidate
}
