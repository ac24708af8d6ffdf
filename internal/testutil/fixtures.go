package testutil

import (
	"github.com/tandemlab/tandem/internal/domain"
)

// Activity options
type ActivityOption func(*domain.Activity)

func WithTags(tags ...string) ActivityOption {
	return func(a *domain.Activity) {
		a.Tags = tags
	}
}

func WithIntensity(i domain.Intensity) ActivityOption {
	return func(a *domain.Activity) {
		a.Intensity = i
	}
}

func WithCost(c float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Cost = c
	}
}

func WithDurationRange(min, max int) ActivityOption {
	return func(a *domain.Activity) {
		a.MinDurationMin = min
		a.MaxDurationMin = max
	}
}

func WithParticipants(n int) ActivityOption {
	return func(a *domain.Activity) {
		a.Participants = &n
	}
}

func WithAssets(assets ...string) ActivityOption {
	return func(a *domain.Activity) {
		a.RequiredAssets = assets
	}
}

func WithTimeOfDay(times ...domain.TimeOfDay) ActivityOption {
	return func(a *domain.Activity) {
		a.TimeOfDay = times
	}
}

func WithSteps(steps ...string) ActivityOption {
	return func(a *domain.Activity) {
		a.Steps = steps
	}
}

func WithDescription(d string) ActivityOption {
	return func(a *domain.Activity) {
		a.Description = d
	}
}

// NewTestActivity builds a 15-30 minute indoor activity with sensible
// defaults; override via options.
func NewTestActivity(id, title string, opts ...ActivityOption) domain.Activity {
	a := domain.Activity{
		ID:             id,
		Title:          title,
		Description:    "actividad de prueba",
		Tags:           []string{"indoor"},
		Intensity:      domain.IntensityLow,
		Cost:           0,
		MinDurationMin: 15,
		MaxDurationMin: 30,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Profile options
type ProfileOption func(*domain.Profile)

func WithInferredTags(tags map[string]float64) ProfileOption {
	return func(p *domain.Profile) {
		p.InferredTags = tags
	}
}

func WithLikes(likes ...string) ProfileOption {
	return func(p *domain.Profile) {
		p.ExplicitLikes = likes
	}
}

func WithDislikes(dislikes ...string) ProfileOption {
	return func(p *domain.Profile) {
		p.ExplicitDislikes = dislikes
	}
}

func WithChannels(channels ...domain.Channel) ProfileOption {
	return func(p *domain.Profile) {
		p.Channels = channels
	}
}

func NewTestProfile(name string, opts ...ProfileOption) domain.Profile {
	p := domain.Profile{
		Name:         name,
		DisplayName:  name,
		InferredTags: map[string]float64{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestPair builds a pair from the given profiles, keyed by name.
func NewTestPair(profiles ...domain.Profile) domain.Pair {
	pair := domain.Pair{Profiles: make(map[string]domain.Profile, len(profiles))}
	for _, p := range profiles {
		pair.Profiles[p.Name] = p
	}
	return pair
}
