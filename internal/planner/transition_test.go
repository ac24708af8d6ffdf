package planner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tandemlab/tandem/internal/domain"
	"github.com/tandemlab/tandem/internal/testutil"
)

func testRand() *rand.Rand {
	return testRandSeed(1)
}

func testRandSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestInsertTransitions_BetweenActivitiesOnly(t *testing.T) {
	selected := []selectedActivity{
		{Activity: testutil.NewTestActivity("a", "A"), DurationMin: 20},
		{Activity: testutil.NewTestActivity("b", "B"), DurationMin: 20},
		{Activity: testutil.NewTestActivity("c", "C"), DurationMin: 20},
	}

	items := InsertTransitions(selected, domain.DefaultHeuristics(), testRand())

	assert.Len(t, items, 5)
	assert.False(t, items[0].Transition, "a plan never opens with a transition")
	assert.False(t, items[len(items)-1].Transition, "a plan never closes with a transition")
	for i := 1; i < len(items); i++ {
		if items[i].Transition {
			assert.False(t, items[i-1].Transition, "transitions are never adjacent")
		}
	}
}

func TestInsertTransitions_ContiguousTimeline(t *testing.T) {
	selected := []selectedActivity{
		{Activity: testutil.NewTestActivity("a", "A"), DurationMin: 25},
		{Activity: testutil.NewTestActivity("b", "B"), DurationMin: 15},
		{Activity: testutil.NewTestActivity("c", "C"), DurationMin: 30},
	}

	items := InsertTransitions(selected, domain.DefaultHeuristics(), testRand())

	clock := 0
	for _, item := range items {
		assert.Equal(t, clock, item.StartMin, "item %q starts when the previous ends", item.Title)
		clock += item.DurationMin
	}
}

func TestInsertTransitions_LongOnLocationChange(t *testing.T) {
	selected := []selectedActivity{
		{Activity: testutil.NewTestActivity("adentro", "Adentro", testutil.WithTags("indoor")), DurationMin: 20},
		{Activity: testutil.NewTestActivity("afuera", "Afuera", testutil.WithTags("outdoor")), DurationMin: 20},
	}

	items := InsertTransitions(selected, domain.DefaultHeuristics(), testRand())

	assert.Len(t, items, 3)
	assert.True(t, items[1].Transition)
	assert.Equal(t, 5, items[1].DurationMin)
}

func TestInsertTransitions_LongOnIntensityJump(t *testing.T) {
	selected := []selectedActivity{
		{Activity: testutil.NewTestActivity("baile", "Baile", testutil.WithIntensity(domain.IntensityHigh)), DurationMin: 15},
		{Activity: testutil.NewTestActivity("lectura", "Lectura", testutil.WithIntensity(domain.IntensityLow)), DurationMin: 20},
	}

	items := InsertTransitions(selected, domain.DefaultHeuristics(), testRand())

	assert.Equal(t, 5, items[1].DurationMin)
}

func TestInsertTransitions_ShortBetweenSimilar(t *testing.T) {
	selected := []selectedActivity{
		{Activity: testutil.NewTestActivity("te", "Té", testutil.WithIntensity(domain.IntensityLow)), DurationMin: 20},
		{Activity: testutil.NewTestActivity("lectura", "Lectura", testutil.WithIntensity(domain.IntensityMedium)), DurationMin: 20},
	}

	items := InsertTransitions(selected, domain.DefaultHeuristics(), testRand())

	assert.Equal(t, 2, items[1].DurationMin)
}

func TestInsertTransitions_SingleActivity(t *testing.T) {
	selected := []selectedActivity{
		{Activity: testutil.NewTestActivity("a", "A"), DurationMin: 45},
	}

	items := InsertTransitions(selected, domain.DefaultHeuristics(), testRand())

	assert.Len(t, items, 1)
	assert.False(t, items[0].Transition)
}

func TestInsertTransitions_ZeroDurationSkipped(t *testing.T) {
	h := domain.DefaultHeuristics()
	h.MinTransitionMin = 0

	selected := []selectedActivity{
		{Activity: testutil.NewTestActivity("a", "A"), DurationMin: 20},
		{Activity: testutil.NewTestActivity("b", "B"), DurationMin: 20},
	}

	items := InsertTransitions(selected, h, testRand())

	assert.Len(t, items, 2)
	assert.Equal(t, 20, items[1].StartMin)
}
