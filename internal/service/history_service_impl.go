package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/domain"
	"github.com/tandemlab/tandem/internal/repository"
)

type historyService struct {
	history repository.PlanHistoryRepo
}

// NewHistoryService wires the history listing use case.
func NewHistoryService(history repository.PlanHistoryRepo) app.HistoryUseCase {
	return &historyService{history: history}
}

func (s *historyService) Recent(ctx context.Context, n int) ([]domain.PlanSummary, error) {
	if n <= 0 {
		n = 10
	}
	summaries, err := s.history.ListRecent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("listing recent plans: %w", err)
	}
	return summaries, nil
}

type heuristicsService struct {
	heuristics repository.HeuristicsRepo
}

// NewHeuristicsService wires heuristics inspection and reset.
func NewHeuristicsService(heuristics repository.HeuristicsRepo) app.HeuristicsUseCase {
	return &heuristicsService{heuristics: heuristics}
}

func (s *heuristicsService) Current(ctx context.Context) (*domain.Heuristics, error) {
	h, err := s.heuristics.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			defaults := domain.DefaultHeuristics()
			return &defaults, nil
		}
		return nil, fmt.Errorf("loading heuristics: %w", err)
	}
	return h, nil
}

func (s *heuristicsService) Reset(ctx context.Context) (*domain.Heuristics, error) {
	defaults := domain.DefaultHeuristics()
	if err := s.heuristics.Save(ctx, defaults); err != nil {
		return nil, fmt.Errorf("resetting heuristics: %w", err)
	}
	return &defaults, nil
}
