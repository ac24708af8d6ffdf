package domain

// DynamicContentTag marks activities whose title/description carry
// ${channel}/${owner} placeholders resolved at generation time.
const DynamicContentTag = "dynamic-content"

// Activity is an immutable catalog entry describing one candidate unit of
// shared time.
type Activity struct {
	ID             string
	Title          string
	Description    string
	Tags           []string
	Intensity      Intensity
	Cost           float64
	MinDurationMin int
	MaxDurationMin int
	Participants   *int
	RequiredAssets []string
	TimeOfDay      []TimeOfDay // empty = suitable any time
	Steps          []string
}

// HasTag reports whether the activity carries the exact tag.
func (a Activity) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SuitableAt reports whether the activity declares suitability for the given
// time of day. Activities with no suitability data match nothing here; the
// scorer treats that as a neutral signal.
func (a Activity) SuitableAt(tod TimeOfDay) bool {
	for _, t := range a.TimeOfDay {
		if t == tod {
			return true
		}
	}
	return false
}
