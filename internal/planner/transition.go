package planner

import (
	"math/rand"

	"github.com/tandemlab/tandem/internal/domain"
)

// transitionTexts are the fixed pause descriptions, picked at random.
var transitionTexts = []string{
	"Prepárense para la siguiente actividad",
	"Tomen un respiro antes de continuar",
	"Momento de cambiar de ritmo",
	"Hagan una pausa breve",
}

// InsertTransitions assigns start times to the selected activities and
// inserts a transition item between each adjacent pair. A big setting change
// (crossing indoor/outdoor, or an intensity jump of two levels) gets the long
// transition, everything else the short one. No transition opens or closes
// the plan.
func InsertTransitions(selected []selectedActivity, h domain.Heuristics, rng *rand.Rand) []domain.ScheduledItem {
	items := make([]domain.ScheduledItem, 0, len(selected)*2)
	clock := 0

	for i, s := range selected {
		items = append(items, scheduledFrom(s.Activity, s.DurationMin, clock))
		clock += s.DurationMin

		if i == len(selected)-1 {
			continue
		}
		dur := transitionDuration(s.Activity, selected[i+1].Activity, h)
		if dur <= 0 {
			continue
		}
		items = append(items, domain.ScheduledItem{
			Title:       "Transición",
			Description: transitionTexts[rng.Intn(len(transitionTexts))],
			Tags:        []string{"transition"},
			DurationMin: dur,
			StartMin:    clock,
			Transition:  true,
		})
		clock += dur
	}

	return items
}

func transitionDuration(from, to domain.Activity, h domain.Heuristics) int {
	locationChange := (from.HasTag("indoor") && to.HasTag("outdoor")) ||
		(from.HasTag("outdoor") && to.HasTag("indoor"))

	intensityJump := int(from.Intensity) - int(to.Intensity)
	if intensityJump < 0 {
		intensityJump = -intensityJump
	}

	if locationChange || intensityJump >= 2 {
		return h.MaxTransitionMin
	}
	return h.MinTransitionMin
}

func scheduledFrom(a domain.Activity, durationMin, startMin int) domain.ScheduledItem {
	return domain.ScheduledItem{
		ActivityID:     a.ID,
		Title:          a.Title,
		Description:    a.Description,
		Tags:           a.Tags,
		Intensity:      a.Intensity,
		Cost:           a.Cost,
		RequiredAssets: a.RequiredAssets,
		Steps:          a.Steps,
		DurationMin:    durationMin,
		StartMin:       startMin,
	}
}
