package planner

import "github.com/tandemlab/tandem/internal/domain"

// gaps smaller than this are left alone.
const minFillableGapMin = 5

// FillGap appends at most one short activity when the timeline ends well
// short of the target. Candidates come from the scored pool in rank order;
// the first unused activity whose duration range contains the gap wins. When
// nothing fits, the gap stays.
func FillGap(items []domain.ScheduledItem, targetMin int, pool []ScoredActivity) []domain.ScheduledItem {
	total := 0
	used := make(map[string]bool)
	for _, item := range items {
		total += item.DurationMin
		if !item.Transition {
			used[item.ActivityID] = true
		}
	}

	gap := targetMin - total
	if gap < minFillableGapMin {
		return items
	}

	for _, c := range pool {
		a := c.Activity
		if used[a.ID] {
			continue
		}
		if a.MinDurationMin > gap || a.MaxDurationMin < gap {
			continue
		}
		duration := gap
		if a.MaxDurationMin < duration {
			duration = a.MaxDurationMin
		}
		return append(items, scheduledFrom(a, duration, total))
	}

	return items
}
