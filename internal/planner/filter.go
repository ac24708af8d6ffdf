package planner

import (
	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/domain"
)

// maxParticipants: the plan is always for the two of them.
const maxParticipants = 2

// Filter removes activities that violate hard constraints. Mood is never a
// hard filter; it only shifts scores. An empty result is propagated as-is.
func Filter(activities []domain.Activity, c app.Constraints) []domain.Activity {
	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if admits(a, c) {
			out = append(out, a)
		}
	}
	return out
}

func admits(a domain.Activity, c app.Constraints) bool {
	if excludedByLocation(a, c.Location) {
		return false
	}
	if len(c.Intensity) > 0 && !intensityAllowed(a.Intensity, c.Intensity) {
		return false
	}
	if excludedByCost(a, c.Cost) {
		return false
	}
	if a.Participants != nil && *a.Participants > maxParticipants {
		return false
	}
	return true
}

// excludedByLocation excludes only when exactly one of indoor/outdoor is
// requested and the activity carries the opposite tag.
func excludedByLocation(a domain.Activity, locations []domain.LocationConstraint) bool {
	if len(locations) == 0 {
		return false
	}
	indoor, outdoor := false, false
	for _, l := range locations {
		switch l {
		case domain.LocationIndoor:
			indoor = true
		case domain.LocationOutdoor:
			outdoor = true
		}
	}
	if indoor && !outdoor && a.HasTag("outdoor") {
		return true
	}
	if outdoor && !indoor && a.HasTag("indoor") {
		return true
	}
	return false
}

func intensityAllowed(level domain.Intensity, allowed []domain.Intensity) bool {
	for _, i := range allowed {
		if i == level {
			return true
		}
	}
	return false
}

// excludedByCost excludes only when exactly one of free/paid is requested and
// the activity's cost contradicts it.
func excludedByCost(a domain.Activity, costs []domain.CostConstraint) bool {
	if len(costs) == 0 {
		return false
	}
	free, paid := false, false
	for _, c := range costs {
		switch c {
		case domain.CostFree:
			free = true
		case domain.CostPaid:
			paid = true
		}
	}
	if free && !paid && a.Cost > 0 {
		return true
	}
	if paid && !free && a.Cost == 0 {
		return true
	}
	return false
}
