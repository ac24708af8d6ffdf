package app

import (
	"time"

	"github.com/tandemlab/tandem/internal/domain"
)

// Constraints are the hard exclusion axes for plan generation. On each axis,
// naming both options or none imposes no restriction.
type Constraints struct {
	Location  []domain.LocationConstraint
	Intensity []domain.Intensity
	Cost      []domain.CostConstraint
}

type GenerateRequest struct {
	TargetMin   int
	Weights     map[string]int // profile name -> 0-100
	Surprise    int            // 0-100
	Mood        domain.Mood    // empty = no mood signal
	TimeOfDay   domain.TimeOfDay
	Constraints Constraints
	Seed        *int64     // fixed random seed, nil = time-based
	Now         *time.Time // test injection point
	Explain     bool
}

// NewGenerateRequest applies the household defaults (60 minutes, surprise 30,
// even weights filled in by the caller once profile names are known).
func NewGenerateRequest(targetMin int) GenerateRequest {
	if targetMin == 0 {
		targetMin = 60
	}
	return GenerateRequest{
		TargetMin: targetMin,
		Surprise:  30,
		Weights:   map[string]int{},
	}
}

type GenerateResponse struct {
	Plan     *domain.Plan
	Scores   []ActivityScore // populated when Explain is set
	Degraded bool            // true when constraints removed every activity
}

// ActivityScore is the per-activity scoring breakdown surfaced by --explain.
type ActivityScore struct {
	ActivityID string
	Title      string
	Score      float64
	Reasons    []ScoreReason
}

type PlanErrorCode string

const (
	ErrInvalidTargetMin PlanErrorCode = "INVALID_TARGET_MIN"
	ErrInvalidWeight    PlanErrorCode = "INVALID_WEIGHT"
	ErrInvalidSurprise  PlanErrorCode = "INVALID_SURPRISE"
	ErrUnknownProfile   PlanErrorCode = "UNKNOWN_PROFILE"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
