package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tandemlab/tandem/internal/domain"
	"github.com/tandemlab/tandem/internal/testutil"
)

func channelItem() domain.ScheduledItem {
	return domain.ScheduledItem{
		ActivityID:  "video",
		Title:       "Ver un video de ${channel}",
		Description: "Un episodio de ${channel}, favorito de ${owner}.",
		Tags:        []string{domain.DynamicContentTag, "screen"},
		DurationMin: 20,
	}
}

func TestInjectDynamicContent_ResolvesFromHeavierProfile(t *testing.T) {
	items := []domain.ScheduledItem{channelItem()}
	profiles := []domain.WeightedProfile{
		{Profile: testutil.NewTestProfile("liviana", testutil.WithChannels(
			domain.Channel{Name: "Canal Liviana"},
		)), Weight: 0.3},
		{Profile: testutil.NewTestProfile("pesada", testutil.WithChannels(
			domain.Channel{Name: "Canal Pesada"},
		)), Weight: 0.7},
	}

	InjectDynamicContent(items, profiles, "", testRand())

	assert.Equal(t, "Ver un video de Canal Pesada", items[0].Title)
	assert.Contains(t, items[0].Description, "Canal Pesada")
	assert.Contains(t, items[0].Description, "pesada", "owner placeholder takes the display name")
	assert.NotContains(t, items[0].Description, "${")
}

func TestInjectDynamicContent_CalmMoodNarrowsChannels(t *testing.T) {
	profiles := []domain.WeightedProfile{
		{Profile: testutil.NewTestProfile("p", testutil.WithChannels(
			domain.Channel{Name: "Gritos", Tags: []string{"gaming", "loud"}},
			domain.Channel{Name: "Documentales", Tags: []string{"learning"}},
		)), Weight: 1},
	}

	// The single calm-tagged channel must win every draw.
	for seed := int64(0); seed < 10; seed++ {
		items := []domain.ScheduledItem{channelItem()}
		InjectDynamicContent(items, profiles, domain.MoodCalm, testRandSeed(seed))
		assert.Equal(t, "Ver un video de Documentales", items[0].Title, "seed %d", seed)
	}
}

func TestInjectDynamicContent_CalmFallsBackWhenNothingGentle(t *testing.T) {
	items := []domain.ScheduledItem{channelItem()}
	profiles := []domain.WeightedProfile{
		{Profile: testutil.NewTestProfile("p", testutil.WithChannels(
			domain.Channel{Name: "Gritos", Tags: []string{"gaming"}},
		)), Weight: 1},
	}

	InjectDynamicContent(items, profiles, domain.MoodTired, testRand())

	assert.Equal(t, "Ver un video de Gritos", items[0].Title)
}

func TestInjectDynamicContent_NoChannelsLeavesPlaceholders(t *testing.T) {
	items := []domain.ScheduledItem{channelItem()}
	profiles := []domain.WeightedProfile{
		{Profile: testutil.NewTestProfile("sin-canales"), Weight: 1},
	}

	InjectDynamicContent(items, profiles, "", testRand())

	assert.Contains(t, items[0].Title, "${channel}")
}

func TestInjectDynamicContent_IgnoresOrdinaryItems(t *testing.T) {
	items := []domain.ScheduledItem{
		{ActivityID: "te", Title: "Té y ${algo}", Tags: []string{"calm"}, DurationMin: 15},
		{Transition: true, Title: "Transición", Tags: []string{"transition"}, DurationMin: 2},
	}
	profiles := []domain.WeightedProfile{
		{Profile: testutil.NewTestProfile("p", testutil.WithChannels(
			domain.Channel{Name: "Canal"},
		)), Weight: 1},
	}

	InjectDynamicContent(items, profiles, "", testRand())

	assert.Equal(t, "Té y ${algo}", items[0].Title)
	assert.Equal(t, "Transición", items[1].Title)
}
