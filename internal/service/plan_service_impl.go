package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/domain"
	"github.com/tandemlab/tandem/internal/planner"
	"github.com/tandemlab/tandem/internal/repository"
)

type planService struct {
	activities []domain.Activity
	pair       domain.Pair
	heuristics repository.HeuristicsRepo
	history    repository.PlanHistoryRepo
	feedback   repository.FeedbackRepo
	observer   UseCaseObserver
}

// NewPlanService wires the plan generation use case. The activity catalog and
// partner profiles are loaded once per session and passed in as snapshots.
func NewPlanService(
	activities []domain.Activity,
	pair domain.Pair,
	heuristics repository.HeuristicsRepo,
	history repository.PlanHistoryRepo,
	feedback repository.FeedbackRepo,
	observer UseCaseObserver,
) app.GeneratePlanUseCase {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &planService{
		activities: activities,
		pair:       pair,
		heuristics: heuristics,
		history:    history,
		feedback:   feedback,
		observer:   observer,
	}
}

func (s *planService) Generate(ctx context.Context, req app.GenerateRequest) (resp *app.GenerateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"target_min": req.TargetMin,
		"surprise":   req.Surprise,
		"mood":       string(req.Mood),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	weights, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	now := startedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}
	seed := now.UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	result := planner.Generate(planner.Request{
		Activities:  s.activities,
		Profiles:    s.weightedProfiles(weights),
		Weights:     weights,
		Constraints: req.Constraints,
		Heuristics:  s.loadHeuristics(ctx),
		Context: planner.Context{
			Mood:      req.Mood,
			TimeOfDay: req.TimeOfDay,
			Surprise:  req.Surprise,
		},
		TargetMin: req.TargetMin,
		RecentIDs: s.loadRecentIDs(ctx),
		Feedback:  s.feedbackLookup(ctx),
		Rand:      rand.New(rand.NewSource(seed)),
		Now:       now,
	})

	fields["plan_id"] = result.Plan.ID
	fields["total_min"] = result.Plan.TotalDurationMin
	fields["degraded"] = result.Degraded

	if appendErr := s.history.Append(ctx, result.Plan.Summary()); appendErr != nil {
		// History is best-effort; a failed append must not lose the plan.
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "append-history",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   false,
			Err:       appendErr,
			Fields:    map[string]any{"plan_id": result.Plan.ID},
		})
	}

	resp = &app.GenerateResponse{Plan: result.Plan, Degraded: result.Degraded}
	if req.Explain {
		resp.Scores = explainScores(result.Pool)
	}
	return resp, nil
}

// validate checks the request parameters and resolves the per-profile
// weights, defaulting to an even split.
func (s *planService) validate(req app.GenerateRequest) (map[string]int, error) {
	if req.TargetMin <= 0 {
		return nil, &app.PlanError{
			Code:    app.ErrInvalidTargetMin,
			Message: "target minutes must be > 0",
		}
	}
	if req.Surprise < 0 || req.Surprise > 100 {
		return nil, &app.PlanError{
			Code:    app.ErrInvalidSurprise,
			Message: fmt.Sprintf("surprise %d outside 0-100", req.Surprise),
		}
	}

	weights := make(map[string]int, len(s.pair.Profiles))
	for _, name := range s.pair.Names() {
		weights[name] = 50
	}
	for name, w := range req.Weights {
		if _, ok := s.pair.Profiles[name]; !ok {
			return nil, &app.PlanError{
				Code:    app.ErrUnknownProfile,
				Message: fmt.Sprintf("unknown profile %q", name),
			}
		}
		if w < 0 || w > 100 {
			return nil, &app.PlanError{
				Code:    app.ErrInvalidWeight,
				Message: fmt.Sprintf("weight %d for %q outside 0-100", w, name),
			}
		}
		weights[name] = w
	}
	return weights, nil
}

func (s *planService) weightedProfiles(weights map[string]int) []domain.WeightedProfile {
	profiles := make([]domain.WeightedProfile, 0, len(weights))
	for _, name := range s.pair.Names() {
		profiles = append(profiles, domain.WeightedProfile{
			Profile: s.pair.Profiles[name],
			Weight:  float64(weights[name]) / 100,
		})
	}
	return profiles
}

// loadHeuristics returns the persisted snapshot, falling back to defaults on
// a missing row or any store failure.
func (s *planService) loadHeuristics(ctx context.Context) domain.Heuristics {
	h, err := s.heuristics.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.observeStoreFailure(ctx, "load-heuristics", err)
		}
		return domain.DefaultHeuristics()
	}
	return *h
}

func (s *planService) loadRecentIDs(ctx context.Context) map[string]bool {
	ids, err := s.history.RecentActivityIDs(ctx, planner.RecencyWindow)
	if err != nil {
		s.observeStoreFailure(ctx, "load-recent-ids", err)
		return map[string]bool{}
	}
	return ids
}

func (s *planService) feedbackLookup(ctx context.Context) func(string) domain.FeedbackStats {
	return func(activityID string) domain.FeedbackStats {
		stats, err := s.feedback.Stats(ctx, activityID)
		if err != nil {
			s.observeStoreFailure(ctx, "load-feedback", err)
			return domain.FeedbackStats{}
		}
		return stats
	}
}

func (s *planService) observeStoreFailure(ctx context.Context, name string, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: time.Now().UTC(),
		Success:   false,
		Err:       err,
	})
}

func explainScores(pool []planner.ScoredActivity) []app.ActivityScore {
	scores := make([]app.ActivityScore, 0, len(pool))
	for _, c := range pool {
		scores = append(scores, app.ActivityScore{
			ActivityID: c.Activity.ID,
			Title:      c.Activity.Title,
			Score:      c.Score,
			Reasons:    c.Reasons,
		})
	}
	return scores
}
