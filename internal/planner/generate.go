package planner

import (
	"sort"

	"github.com/google/uuid"
	"github.com/tandemlab/tandem/internal/domain"
)

// how many past plans feed the recency discount.
const RecencyWindow = 5

// Generate runs the full pipeline over one input snapshot:
// filter -> score -> recency -> sort -> select -> transitions -> gap fill ->
// dynamic content -> reasoning. It is pure given the request's rand source
// and clock; no collaborator is touched.
//
// An empty filtered pool yields a degraded plan with zero activities and a
// reasoning string saying the constraints were too restrictive, not an error.
func Generate(req Request) *Result {
	filtered := Filter(req.Activities, req.Constraints)
	if len(filtered) == 0 {
		return &Result{Plan: emptyPlan(req), Degraded: true}
	}

	pool := make([]ScoredActivity, 0, len(filtered))
	for _, a := range filtered {
		var stats domain.FeedbackStats
		if req.Feedback != nil {
			stats = req.Feedback(a.ID)
		}
		score, reasons := Score(a, req.Profiles, req.Heuristics, req.Context, stats)
		pool = append(pool, ScoredActivity{Activity: a, Score: score, Reasons: reasons})
	}

	ApplyRecency(pool, req.RecentIDs, req.Heuristics.RecencyPenalty)
	SortByScore(pool)

	selected := SelectSequence(pool, req.TargetMin, req.Context.Surprise, req.Heuristics)
	items := InsertTransitions(selected, req.Heuristics, req.Rand)
	items = FillGap(items, req.TargetMin, pool)
	InjectDynamicContent(items, req.Profiles, req.Context.Mood, req.Rand)

	total := 0
	for _, item := range items {
		total += item.DurationMin
	}

	plan := &domain.Plan{
		ID:               uuid.New().String(),
		Title:            Title(req.Context.Mood),
		Reasoning:        Reasoning(req.TargetMin, req.Context.Mood, req.Context.Surprise),
		Items:            items,
		TotalDurationMin: total,
		RequiredAssets:   collectAssets(items),
		Params:           planParams(req),
		GeneratedAt:      req.Now,
	}

	return &Result{Plan: plan, Pool: pool}
}

func emptyPlan(req Request) *domain.Plan {
	return &domain.Plan{
		ID:          uuid.New().String(),
		Title:       Title(req.Context.Mood),
		Reasoning:   EmptyPoolReasoning(),
		Params:      planParams(req),
		GeneratedAt: req.Now,
	}
}

func planParams(req Request) domain.PlanParams {
	weights := make(map[string]int, len(req.Weights))
	for name, w := range req.Weights {
		weights[name] = w
	}
	return domain.PlanParams{
		Mood:      req.Context.Mood,
		TimeOfDay: req.Context.TimeOfDay,
		TargetMin: req.TargetMin,
		Surprise:  req.Context.Surprise,
		Weights:   weights,
	}
}

// collectAssets unions the required assets across all items, sorted for
// stable output.
func collectAssets(items []domain.ScheduledItem) []string {
	seen := make(map[string]bool)
	var assets []string
	for _, item := range items {
		for _, asset := range item.RequiredAssets {
			if !seen[asset] {
				seen[asset] = true
				assets = append(assets, asset)
			}
		}
	}
	sort.Strings(assets)
	return assets
}
