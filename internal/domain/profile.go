package domain

import "sort"

// Channel is one external video channel a partner follows, used only for
// dynamic content resolution.
type Channel struct {
	Name string
	Tags []string
}

// Profile holds one partner's preference data.
type Profile struct {
	Name             string
	DisplayName      string
	InferredTags     map[string]float64 // tag -> confidence in [0,1]
	ExplicitLikes    []string
	ExplicitDislikes []string
	Channels         []Channel
}

// WeightedProfile pairs a profile with its normalized weight in [0,1].
type WeightedProfile struct {
	Profile Profile
	Weight  float64
}

// Pair holds the two partner profiles, keyed by profile name.
type Pair struct {
	Profiles map[string]Profile
}

// Names returns the profile names in deterministic (sorted) order.
func (p Pair) Names() []string {
	names := make([]string, 0, len(p.Profiles))
	for name := range p.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
