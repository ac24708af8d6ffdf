package planner

import (
	"math/rand"
	"strings"

	"github.com/tandemlab/tandem/internal/domain"
)

// calmChannelTags restrict channel choices when the mood calls for winding
// down.
var calmChannelTags = map[string]bool{
	"learning": true, "storytelling": true, "entertainment": true,
}

// contentResolver rewrites one scheduled item's placeholders.
type contentResolver func(item *domain.ScheduledItem, profiles []domain.WeightedProfile, mood domain.Mood, rng *rand.Rand)

// contentResolvers maps a capability tag to its resolver. Only external
// video content exists today; new capabilities register here.
var contentResolvers = map[string]contentResolver{
	domain.DynamicContentTag: resolveChannelContent,
}

// InjectDynamicContent resolves placeholder content on items that declare a
// dynamic-content capability. Items without a registered capability pass
// through unchanged.
func InjectDynamicContent(items []domain.ScheduledItem, profiles []domain.WeightedProfile, mood domain.Mood, rng *rand.Rand) {
	for i := range items {
		if items[i].Transition {
			continue
		}
		for _, tag := range items[i].Tags {
			if resolve, ok := contentResolvers[tag]; ok {
				resolve(&items[i], profiles, mood, rng)
				break
			}
		}
	}
}

// resolveChannelContent substitutes ${channel} and ${owner} with a channel
// drawn from the heavier partner's catalog. Calm and tired moods narrow the
// draw to gentler channel kinds.
func resolveChannelContent(item *domain.ScheduledItem, profiles []domain.WeightedProfile, mood domain.Mood, rng *rand.Rand) {
	target := heaviestProfile(profiles)
	if target == nil || len(target.Channels) == 0 {
		return
	}

	candidates := target.Channels
	if mood == domain.MoodCalm || mood == domain.MoodTired {
		if calm := calmChannels(target.Channels); len(calm) > 0 {
			candidates = calm
		}
	}

	channel := candidates[rng.Intn(len(candidates))]
	item.Title = strings.ReplaceAll(item.Title, "${channel}", channel.Name)
	item.Description = strings.ReplaceAll(item.Description, "${channel}", channel.Name)
	item.Description = strings.ReplaceAll(item.Description, "${owner}", target.DisplayName)
}

// heaviestProfile returns the profile with the larger weight; ties keep the
// caller's order.
func heaviestProfile(profiles []domain.WeightedProfile) *domain.Profile {
	var best *domain.Profile
	bestWeight := -1.0
	for i := range profiles {
		if profiles[i].Weight > bestWeight {
			best = &profiles[i].Profile
			bestWeight = profiles[i].Weight
		}
	}
	return best
}

func calmChannels(channels []domain.Channel) []domain.Channel {
	var out []domain.Channel
	for _, ch := range channels {
		for _, tag := range ch.Tags {
			if calmChannelTags[tag] {
				out = append(out, ch)
				break
			}
		}
	}
	return out
}
