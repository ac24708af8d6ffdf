package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHeuristics_Values(t *testing.T) {
	h := DefaultHeuristics()

	assert.Equal(t, 1.0, h.TagMatchWeight)
	assert.Equal(t, 0.7, h.IntensityMatchWeight)
	assert.Equal(t, 0.5, h.VarietyBonus)
	assert.Equal(t, 0.3, h.RecencyPenalty)
	assert.Equal(t, 1.2, h.FeedbackWeight)
	assert.Equal(t, 2, h.MinTransitionMin)
	assert.Equal(t, 5, h.MaxTransitionMin)
	assert.Len(t, h.SurpriseMix, 4)
}

func TestApplyPlanRating_LoveCompounds(t *testing.T) {
	h := DefaultHeuristics()
	for i := 0; i < 3; i++ {
		h = h.ApplyPlanRating(RatingLove)
	}
	assert.InDelta(t, 1.2*1.05*1.05*1.05, h.FeedbackWeight, 1e-9)
}

func TestApplyPlanRating_BadShrinks(t *testing.T) {
	h := DefaultHeuristics().ApplyPlanRating(RatingBad)
	assert.InDelta(t, 1.2*0.95, h.FeedbackWeight, 1e-9)
}

func TestApplyPlanRating_OkayUnchanged(t *testing.T) {
	h := DefaultHeuristics().ApplyPlanRating(RatingOkay)
	assert.Equal(t, 1.2, h.FeedbackWeight)
}

func TestApplyPlanRating_ClampsAtBounds(t *testing.T) {
	h := DefaultHeuristics()

	h.FeedbackWeight = MaxFeedbackWeight
	assert.Equal(t, MaxFeedbackWeight, h.ApplyPlanRating(RatingLove).FeedbackWeight)

	h.FeedbackWeight = MinFeedbackWeight
	assert.Equal(t, MinFeedbackWeight, h.ApplyPlanRating(RatingBad).FeedbackWeight)
}

func TestApplyPlanRating_DoesNotAliasSurpriseMix(t *testing.T) {
	original := DefaultHeuristics()
	next := original.ApplyPlanRating(RatingLove)

	next.SurpriseMix[SurpriseSafe] = Mix{Known: 0, Variant: 0, New: 1}

	assert.Equal(t, 0.9, original.SurpriseMix[SurpriseSafe].Known,
		"adapting must not mutate the source snapshot")
}

func TestMixFor_FallsBackToDefaults(t *testing.T) {
	h := Heuristics{SurpriseMix: map[SurpriseLevel]Mix{}}
	mix := h.MixFor(SurpriseWild)
	assert.Equal(t, DefaultHeuristics().SurpriseMix[SurpriseWild], mix)
}

func TestSurpriseLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		surprise int
		want     SurpriseLevel
	}{
		{0, SurpriseSafe},
		{24, SurpriseSafe},
		{25, SurpriseBalanced},
		{49, SurpriseBalanced},
		{50, SurpriseAdventurous},
		{74, SurpriseAdventurous},
		{75, SurpriseWild},
		{100, SurpriseWild},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SurpriseLevelFor(tc.surprise), "surprise=%d", tc.surprise)
	}
}
