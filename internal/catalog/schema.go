package catalog

// ActivityFile is the top-level JSON structure of the activity catalog.
type ActivityFile struct {
	Activities []ActivityEntry `json:"activities"`
}

// ActivityEntry defines one activity in the catalog file.
type ActivityEntry struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Tags           []string     `json:"tags"`
	Intensity      int          `json:"intensity"`
	Cost           float64      `json:"cost"`
	MinDurationMin int          `json:"min_duration_min"`
	MaxDurationMin int          `json:"max_duration_min"`
	Participants   *int         `json:"participants,omitempty"`
	RequiredAssets []string     `json:"required_assets,omitempty"`
	Suitability    *Suitability `json:"suitability,omitempty"`
	Steps          []string     `json:"steps,omitempty"`
}

// Suitability holds optional contextual fit data for an activity.
type Suitability struct {
	TimeOfDay []string `json:"time_of_day,omitempty"`
}

// PairFile is the top-level JSON structure of the partner profiles file.
type PairFile struct {
	Profiles map[string]ProfileEntry `json:"profiles"`
}

// ProfileEntry defines one partner's preference data.
type ProfileEntry struct {
	DisplayName      string             `json:"display_name"`
	InferredTags     map[string]float64 `json:"inferred_tags,omitempty"`
	ExplicitLikes    []string           `json:"explicit_likes,omitempty"`
	ExplicitDislikes []string           `json:"explicit_dislikes,omitempty"`
	YoutubeChannels  []ChannelEntry     `json:"youtube_channels,omitempty"`
}

// ChannelEntry defines one external channel a partner follows.
type ChannelEntry struct {
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}
