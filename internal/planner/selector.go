package planner

import (
	"math"

	"github.com/tandemlab/tandem/internal/domain"
)

// packing tolerance around the requested duration, in minutes.
const toleranceMin = 10

// selectedActivity is an activity with its chosen duration, before start
// times are assigned.
type selectedActivity struct {
	Activity    domain.Activity
	DurationMin int
}

// SelectSequence draws a duration-bounded ordered sequence from the
// score-sorted pool. The surprise dial decides how much of the candidate list
// comes from the top (known), middle (variant), and bottom (new) of the
// ranking; a greedy pass then packs candidates until the total lands inside
// [targetMin-10, targetMin+10]. Running out of candidates before the lower
// bound leaves the sequence short, which callers accept.
func SelectSequence(pool []ScoredActivity, targetMin int, surprise int, h domain.Heuristics) []selectedActivity {
	mix := h.MixFor(domain.SurpriseLevelFor(surprise))

	knownEnd := ceilFrac(len(pool), 0.4)
	variantEnd := ceilFrac(len(pool), 0.7)
	known := pool[:knownEnd]
	variant := pool[knownEnd:variantEnd]
	novel := pool[variantEnd:]

	// Front-weighted slice per bucket, not a true random sample: within each
	// bucket the highest-scoring entries are taken first.
	weighted := make([]ScoredActivity, 0, len(pool))
	weighted = append(weighted, topSlice(known, mix.Known)...)
	weighted = append(weighted, topSlice(variant, mix.Variant)...)
	weighted = append(weighted, topSlice(novel, mix.New)...)

	var selected []selectedActivity
	total := 0
	used := make(map[string]bool)

	for _, c := range weighted {
		if used[c.Activity.ID] {
			continue
		}
		duration := selectDuration(c.Activity, targetMin-total)
		if total+duration > targetMin+toleranceMin {
			continue
		}
		selected = append(selected, selectedActivity{Activity: c.Activity, DurationMin: duration})
		total += duration
		used[c.Activity.ID] = true
		if total >= targetMin-toleranceMin {
			break
		}
	}

	return selected
}

// selectDuration picks a concrete duration inside the activity's range,
// biased toward consuming most of the remaining time.
func selectDuration(a domain.Activity, remainingMin int) int {
	if remainingMin < a.MinDurationMin {
		return a.MinDurationMin
	}
	if remainingMin > a.MaxDurationMin {
		return a.MaxDurationMin
	}
	return clamp(int(math.Floor(float64(remainingMin)*0.7)), a.MinDurationMin, a.MaxDurationMin)
}

// topSlice returns the first ceil(len*frac) entries of the bucket.
func topSlice(bucket []ScoredActivity, frac float64) []ScoredActivity {
	n := ceilFrac(len(bucket), frac)
	if n > len(bucket) {
		n = len(bucket)
	}
	return bucket[:n]
}

func ceilFrac(n int, frac float64) int {
	return int(math.Ceil(float64(n) * frac))
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
