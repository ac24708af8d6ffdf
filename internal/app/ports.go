package app

import (
	"context"

	"github.com/tandemlab/tandem/internal/domain"
)

type GeneratePlanUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type FeedbackUseCase interface {
	RecordActivity(ctx context.Context, activityID, planID string, ft domain.FeedbackType) error
	RatePlan(ctx context.Context, planID string, rating domain.PlanRating) (*domain.Heuristics, error)
}

type HistoryUseCase interface {
	Recent(ctx context.Context, n int) ([]domain.PlanSummary, error)
}

type HeuristicsUseCase interface {
	Current(ctx context.Context) (*domain.Heuristics, error)
	Reset(ctx context.Context) (*domain.Heuristics, error)
}
