package catalog

import "fmt"

// pairSize is fixed: plans are always for two people.
const pairSize = 2

// ValidateActivityFile checks the activity catalog for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateActivityFile(file *ActivityFile) []error {
	var errs []error

	if len(file.Activities) == 0 {
		errs = append(errs, fmt.Errorf("activities: catalog is empty"))
	}

	seen := make(map[string]bool)
	for i, a := range file.Activities {
		prefix := fmt.Sprintf("activities[%d]", i)

		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		} else if seen[a.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, a.ID))
		} else {
			seen[a.ID] = true
		}

		if a.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", prefix))
		}
		if a.Intensity < 0 || a.Intensity > 2 {
			errs = append(errs, fmt.Errorf("%s: intensity %d out of range 0-2", prefix, a.Intensity))
		}
		if a.Cost < 0 {
			errs = append(errs, fmt.Errorf("%s: cost must not be negative", prefix))
		}
		if a.MinDurationMin <= 0 {
			errs = append(errs, fmt.Errorf("%s: min_duration_min must be > 0", prefix))
		}
		if a.MaxDurationMin < a.MinDurationMin {
			errs = append(errs, fmt.Errorf("%s: max_duration_min %d < min_duration_min %d", prefix, a.MaxDurationMin, a.MinDurationMin))
		}
		if a.Participants != nil && *a.Participants <= 0 {
			errs = append(errs, fmt.Errorf("%s: participants must be > 0", prefix))
		}
		if a.Suitability != nil {
			for _, tod := range a.Suitability.TimeOfDay {
				if !validTimesOfDay[tod] {
					errs = append(errs, fmt.Errorf("%s: suitability.time_of_day: invalid value %q", prefix, tod))
				}
			}
		}
	}

	return errs
}

// ValidatePairFile checks the partner profiles file.
func ValidatePairFile(file *PairFile) []error {
	var errs []error

	if len(file.Profiles) != pairSize {
		errs = append(errs, fmt.Errorf("profiles: expected exactly %d partner profiles, got %d", pairSize, len(file.Profiles)))
	}

	for name, p := range file.Profiles {
		prefix := fmt.Sprintf("profiles[%s]", name)
		if name == "" {
			errs = append(errs, fmt.Errorf("profiles: empty profile name"))
		}
		if p.DisplayName == "" {
			errs = append(errs, fmt.Errorf("%s: display_name is required", prefix))
		}
		for tag, confidence := range p.InferredTags {
			if confidence < 0 || confidence > 1 {
				errs = append(errs, fmt.Errorf("%s: inferred_tags[%s]: confidence %v out of range [0,1]", prefix, tag, confidence))
			}
		}
		for j, ch := range p.YoutubeChannels {
			if ch.Name == "" {
				errs = append(errs, fmt.Errorf("%s: youtube_channels[%d]: name is required", prefix, j))
			}
		}
	}

	return errs
}

var validTimesOfDay = map[string]bool{
	"morning": true, "afternoon": true, "evening": true, "night": true,
}
