package domain

// Mix describes what fraction of a plan should come from known, variant, and
// new activities. Fractions sum to 1.
type Mix struct {
	Known   float64
	Variant float64
	New     float64
}

// Heuristics holds the tunable weights governing scoring, surprise mixing,
// and transition timing. Values are treated as a snapshot: generation reads
// one, adaptation produces a new one.
type Heuristics struct {
	TagMatchWeight       float64
	IntensityMatchWeight float64
	VarietyBonus         float64
	RecencyPenalty       float64 // in [0,1]
	FeedbackWeight       float64

	MinTransitionMin int
	MaxTransitionMin int

	SurpriseMix map[SurpriseLevel]Mix
}

// Bounds for feedback-weight drift under repeated plan ratings.
const (
	MinFeedbackWeight = 0.25
	MaxFeedbackWeight = 4.0
)

// DefaultHeuristics returns the built-in weight set used when nothing has
// been persisted yet.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		TagMatchWeight:       1.0,
		IntensityMatchWeight: 0.7,
		VarietyBonus:         0.5,
		RecencyPenalty:       0.3,
		FeedbackWeight:       1.2,
		MinTransitionMin:     2,
		MaxTransitionMin:     5,
		SurpriseMix: map[SurpriseLevel]Mix{
			SurpriseSafe:        {Known: 0.9, Variant: 0.1, New: 0.0},
			SurpriseBalanced:    {Known: 0.7, Variant: 0.2, New: 0.1},
			SurpriseAdventurous: {Known: 0.5, Variant: 0.3, New: 0.2},
			SurpriseWild:        {Known: 0.3, Variant: 0.3, New: 0.4},
		},
	}
}

// MixFor returns the mix for the given surprise level, falling back to the
// default table when the level is missing from a persisted snapshot.
func (h Heuristics) MixFor(level SurpriseLevel) Mix {
	if m, ok := h.SurpriseMix[level]; ok {
		return m
	}
	return DefaultHeuristics().SurpriseMix[level]
}

// ApplyPlanRating returns a new Heuristics with the feedback weight adjusted
// for the given plan rating: love grows it by 5%, bad shrinks it by 5%,
// anything else leaves it unchanged. The weight is clamped so repeated
// extreme ratings cannot run it to zero or infinity.
func (h Heuristics) ApplyPlanRating(rating PlanRating) Heuristics {
	next := h.clone()
	switch rating {
	case RatingLove:
		next.FeedbackWeight *= 1.05
	case RatingBad:
		next.FeedbackWeight *= 0.95
	default:
		return next
	}
	if next.FeedbackWeight < MinFeedbackWeight {
		next.FeedbackWeight = MinFeedbackWeight
	}
	if next.FeedbackWeight > MaxFeedbackWeight {
		next.FeedbackWeight = MaxFeedbackWeight
	}
	return next
}

func (h Heuristics) clone() Heuristics {
	next := h
	next.SurpriseMix = make(map[SurpriseLevel]Mix, len(h.SurpriseMix))
	for level, mix := range h.SurpriseMix {
		next.SurpriseMix[level] = mix
	}
	return next
}
