package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tandemlab/tandem/internal/domain"
)

// LoadActivities reads, validates, and converts the activity catalog file.
func LoadActivities(path string) ([]domain.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading activity catalog: %w", err)
	}

	var file ActivityFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing activity catalog: %w", err)
	}

	if errs := ValidateActivityFile(&file); len(errs) > 0 {
		return nil, fmt.Errorf("invalid activity catalog: %w", errors.Join(errs...))
	}

	activities := make([]domain.Activity, 0, len(file.Activities))
	for _, entry := range file.Activities {
		activities = append(activities, convertActivity(entry))
	}
	return activities, nil
}

// LoadPair reads, validates, and converts the partner profiles file.
func LoadPair(path string) (domain.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Pair{}, fmt.Errorf("reading profiles: %w", err)
	}

	var file PairFile
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.Pair{}, fmt.Errorf("parsing profiles: %w", err)
	}

	if errs := ValidatePairFile(&file); len(errs) > 0 {
		return domain.Pair{}, fmt.Errorf("invalid profiles: %w", errors.Join(errs...))
	}

	pair := domain.Pair{Profiles: make(map[string]domain.Profile, len(file.Profiles))}
	for name, entry := range file.Profiles {
		pair.Profiles[name] = convertProfile(name, entry)
	}
	return pair, nil
}

func convertActivity(e ActivityEntry) domain.Activity {
	a := domain.Activity{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Tags:           e.Tags,
		Intensity:      domain.Intensity(e.Intensity),
		Cost:           e.Cost,
		MinDurationMin: e.MinDurationMin,
		MaxDurationMin: e.MaxDurationMin,
		Participants:   e.Participants,
		RequiredAssets: e.RequiredAssets,
		Steps:          e.Steps,
	}
	if e.Suitability != nil {
		for _, tod := range e.Suitability.TimeOfDay {
			a.TimeOfDay = append(a.TimeOfDay, domain.TimeOfDay(tod))
		}
	}
	return a
}

func convertProfile(name string, e ProfileEntry) domain.Profile {
	p := domain.Profile{
		Name:             name,
		DisplayName:      e.DisplayName,
		InferredTags:     e.InferredTags,
		ExplicitLikes:    e.ExplicitLikes,
		ExplicitDislikes: e.ExplicitDislikes,
	}
	if p.InferredTags == nil {
		p.InferredTags = map[string]float64{}
	}
	for _, ch := range e.YoutubeChannels {
		p.Channels = append(p.Channels, domain.Channel{Name: ch.Name, Tags: ch.Tags})
	}
	return p
}
