package planner

import (
	"fmt"
	"strings"

	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/domain"
)

// moodIntensity maps a mood to the preferred activity intensity.
var moodIntensity = map[domain.Mood]domain.Intensity{
	domain.MoodTired:     domain.IntensityLow,
	domain.MoodCalm:      domain.IntensityLow,
	domain.MoodFun:       domain.IntensityMedium,
	domain.MoodEnergetic: domain.IntensityHigh,
}

// moodTags lists tag fragments each mood gravitates toward.
var moodTags = map[domain.Mood][]string{
	domain.MoodTired:     {"relaxing", "passive", "low-energy", "calm", "peaceful", "quiet"},
	domain.MoodEnergetic: {"active", "high-energy", "dynamic", "exercise", "sport", "movement"},
	domain.MoodCalm:      {"peaceful", "quiet", "meditative", "relaxing", "gentle", "slow"},
	domain.MoodFun:       {"playful", "funny", "entertaining", "social", "comedy", "game"},
}

// commonTags carry no variety signal.
var commonTags = map[string]bool{
	"indoor": true, "outdoor": true, "free": true, "paid": true, "couple": true,
}

type scoreInput struct {
	Activity   domain.Activity
	Profiles   []domain.WeightedProfile
	Heuristics domain.Heuristics
	Context    Context
	Stats      domain.FeedbackStats
}

// Score computes the desirability of one activity as a weighted sum of six
// independent factors, clamped at zero. Each factor contributes a reason for
// the explain output.
func Score(a domain.Activity, profiles []domain.WeightedProfile, h domain.Heuristics, ctx Context, stats domain.FeedbackStats) (float64, []app.ScoreReason) {
	input := scoreInput{Activity: a, Profiles: profiles, Heuristics: h, Context: ctx, Stats: stats}

	var score float64
	var reasons []app.ScoreReason
	factors := []func(scoreInput) (float64, *app.ScoreReason){
		scoreTagMatch,
		scoreIntensityMatch,
		scoreMoodMatch,
		scoreTimeOfDay,
		scoreVariety,
		scoreFeedback,
	}
	for _, f := range factors {
		delta, reason := f(input)
		score += delta
		if reason != nil {
			reasons = append(reasons, *reason)
		}
	}

	if score < 0 {
		score = 0
	}
	return score, reasons
}

// scoreTagMatch sums per-profile affinity: inferred tag confidences scaled by
// 10, a flat +15 for an explicit like, -20 for an explicit dislike, all
// weighted by the profile's share of the decision.
func scoreTagMatch(in scoreInput) (float64, *app.ScoreReason) {
	var total float64
	for _, wp := range in.Profiles {
		var profileScore float64
		for _, tag := range in.Activity.Tags {
			profileScore += wp.Profile.InferredTags[tag] * 10
		}
		if anyTermMatchesTag(wp.Profile.ExplicitLikes, in.Activity.Tags) {
			profileScore += 15
		}
		if anyTermMatchesTag(wp.Profile.ExplicitDislikes, in.Activity.Tags) {
			profileScore -= 20
		}
		total += profileScore * wp.Weight
	}
	delta := total * in.Heuristics.TagMatchWeight
	if delta == 0 {
		return 0, nil
	}
	msg := "Matches their tag preferences"
	if delta < 0 {
		msg = "Clashes with their tag preferences"
	}
	return delta, &app.ScoreReason{
		Code:    app.ReasonTagMatch,
		Message: msg,
		Delta:   delta,
	}
}

func scoreIntensityMatch(in scoreInput) (float64, *app.ScoreReason) {
	preferred, ok := moodIntensity[in.Context.Mood]
	if !ok {
		return 0, nil
	}
	diff := int(in.Activity.Intensity) - int(preferred)
	if diff < 0 {
		diff = -diff
	}
	var base float64
	switch diff {
	case 0:
		base = 10
	case 1:
		base = 5
	default:
		return 0, nil
	}
	delta := base * in.Heuristics.IntensityMatchWeight
	return delta, &app.ScoreReason{
		Code:    app.ReasonIntensityMatch,
		Message: fmt.Sprintf("Intensity fits a %s mood", in.Context.Mood),
		Delta:   delta,
	}
}

// scoreMoodMatch rewards tags compatible with the current mood, unweighted.
func scoreMoodMatch(in scoreInput) (float64, *app.ScoreReason) {
	desired := moodTags[in.Context.Mood]
	if len(desired) == 0 {
		return 0, nil
	}
	matches := 0
	for _, tag := range in.Activity.Tags {
		for _, d := range desired {
			if strings.Contains(tag, d) {
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0, nil
	}
	delta := float64(matches) * 3
	return delta, &app.ScoreReason{
		Code:    app.ReasonMoodMatch,
		Message: fmt.Sprintf("%d tags suit the mood", matches),
		Delta:   delta,
	}
}

// scoreTimeOfDay contributes at half weight, and only when the caller
// supplied a time of day.
func scoreTimeOfDay(in scoreInput) (float64, *app.ScoreReason) {
	if in.Context.TimeOfDay == "" {
		return 0, nil
	}
	if !in.Activity.SuitableAt(in.Context.TimeOfDay) {
		return 0, nil
	}
	delta := 5 * 0.5
	return delta, &app.ScoreReason{
		Code:    app.ReasonTimeOfDay,
		Message: fmt.Sprintf("Suits the %s", in.Context.TimeOfDay),
		Delta:   delta,
	}
}

// scoreVariety rewards specific tags beyond the common set, capped at 5.
func scoreVariety(in scoreInput) (float64, *app.ScoreReason) {
	unique := 0
	for _, tag := range in.Activity.Tags {
		if !commonTags[tag] {
			unique++
		}
	}
	if unique > 5 {
		unique = 5
	}
	if unique == 0 {
		return 0, nil
	}
	delta := float64(unique) * in.Heuristics.VarietyBonus
	return delta, &app.ScoreReason{
		Code:    app.ReasonVariety,
		Message: "Adds variety",
		Delta:   delta,
	}
}

func scoreFeedback(in scoreInput) (float64, *app.ScoreReason) {
	net := in.Stats.Net()
	if net == 0 {
		return 0, nil
	}
	delta := net * in.Heuristics.FeedbackWeight
	msg := "They have enjoyed this before"
	if delta < 0 {
		msg = "Past feedback was negative"
	}
	return delta, &app.ScoreReason{
		Code:    app.ReasonFeedback,
		Message: msg,
		Delta:   delta,
	}
}

// anyTermMatchesTag reports whether any free-text term appears, lowercased,
// as a substring of any activity tag.
func anyTermMatchesTag(terms []string, tags []string) bool {
	for _, term := range terms {
		lower := strings.ToLower(term)
		for _, tag := range tags {
			if strings.Contains(tag, lower) {
				return true
			}
		}
	}
	return false
}
