package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/domain"
	"github.com/tandemlab/tandem/internal/repository"
)

type feedbackService struct {
	feedback   repository.FeedbackRepo
	heuristics repository.HeuristicsRepo
	observer   UseCaseObserver
}

// NewFeedbackService wires feedback recording and heuristics adaptation.
func NewFeedbackService(
	feedback repository.FeedbackRepo,
	heuristics repository.HeuristicsRepo,
	observer UseCaseObserver,
) app.FeedbackUseCase {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &feedbackService{feedback: feedback, heuristics: heuristics, observer: observer}
}

func (s *feedbackService) RecordActivity(ctx context.Context, activityID, planID string, ft domain.FeedbackType) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "record-feedback",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"activity_id": activityID, "type": string(ft)},
		})
	}()

	if activityID == "" {
		return fmt.Errorf("activity id is required")
	}
	if !domain.ValidFeedbackTypes[string(ft)] {
		return fmt.Errorf("unknown feedback type %q", ft)
	}
	return s.feedback.Record(ctx, activityID, planID, ft)
}

// RatePlan applies a plan-level rating to the heuristics and persists the
// new snapshot. A failed save keeps the adapted value for this process and
// is reported through the observer only.
func (s *feedbackService) RatePlan(ctx context.Context, planID string, rating domain.PlanRating) (result *domain.Heuristics, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "rate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"plan_id": planID, "rating": string(rating)},
		})
	}()

	if !domain.ValidPlanRatings[string(rating)] {
		return nil, fmt.Errorf("unknown plan rating %q", rating)
	}

	current := domain.DefaultHeuristics()
	if h, getErr := s.heuristics.Get(ctx); getErr == nil {
		current = *h
	} else if !errors.Is(getErr, repository.ErrNotFound) {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load-heuristics",
			StartedAt: startedAt,
			Success:   false,
			Err:       getErr,
		})
	}

	next := current.ApplyPlanRating(rating)
	if saveErr := s.heuristics.Save(ctx, next); saveErr != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-heuristics",
			StartedAt: startedAt,
			Success:   false,
			Err:       saveErr,
		})
	}
	return &next, nil
}
