package planner

import (
	"sort"

	"github.com/tandemlab/tandem/internal/app"
)

// ApplyRecency discounts the score of activities that appeared in recent
// plans by the heuristics' recency penalty. The slice is modified in place.
func ApplyRecency(pool []ScoredActivity, recentIDs map[string]bool, penalty float64) {
	for i := range pool {
		if !recentIDs[pool[i].Activity.ID] {
			continue
		}
		before := pool[i].Score
		pool[i].Score = before * (1 - penalty)
		pool[i].Reasons = append(pool[i].Reasons, app.ScoreReason{
			Code:    app.ReasonRecency,
			Message: "Seen in a recent plan",
			Delta:   pool[i].Score - before,
		})
	}
}

// SortByScore orders the pool by descending score. The sort is stable so
// tied activities keep their catalog order.
func SortByScore(pool []ScoredActivity) {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})
}
