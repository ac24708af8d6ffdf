package domain

type Mood string

const (
	MoodTired     Mood = "tired"
	MoodEnergetic Mood = "energetic"
	MoodCalm      Mood = "calm"
	MoodFun       Mood = "fun"
)

// ValidMoods is the canonical set of accepted mood strings.
var ValidMoods = map[string]bool{
	"tired": true, "energetic": true, "calm": true, "fun": true,
}

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// ValidTimesOfDay is the canonical set of accepted time-of-day strings.
var ValidTimesOfDay = map[string]bool{
	"morning": true, "afternoon": true, "evening": true, "night": true,
}

// Intensity is an ordinal activity energy level: 0 low, 1 medium, 2 high.
type Intensity int

const (
	IntensityLow    Intensity = 0
	IntensityMedium Intensity = 1
	IntensityHigh   Intensity = 2
)

type SurpriseLevel string

const (
	SurpriseSafe        SurpriseLevel = "safe"
	SurpriseBalanced    SurpriseLevel = "balanced"
	SurpriseAdventurous SurpriseLevel = "adventurous"
	SurpriseWild        SurpriseLevel = "wild"
)

// SurpriseLevelFor maps a 0-100 surprise dial onto a discrete level.
func SurpriseLevelFor(surprise int) SurpriseLevel {
	switch {
	case surprise < 25:
		return SurpriseSafe
	case surprise < 50:
		return SurpriseBalanced
	case surprise < 75:
		return SurpriseAdventurous
	default:
		return SurpriseWild
	}
}

type FeedbackType string

const (
	FeedbackThumbsUp   FeedbackType = "thumbs-up"
	FeedbackThumbsDown FeedbackType = "thumbs-down"
	FeedbackCompleted  FeedbackType = "completed"
	FeedbackSkipped    FeedbackType = "skipped"
)

// ValidFeedbackTypes is the canonical set of accepted feedback type strings.
var ValidFeedbackTypes = map[string]bool{
	"thumbs-up": true, "thumbs-down": true, "completed": true, "skipped": true,
}

type PlanRating string

const (
	RatingLove PlanRating = "love"
	RatingOkay PlanRating = "okay"
	RatingBad  PlanRating = "bad"
)

// ValidPlanRatings is the canonical set of accepted plan rating strings.
var ValidPlanRatings = map[string]bool{
	"love": true, "okay": true, "bad": true,
}

type LocationConstraint string

const (
	LocationIndoor  LocationConstraint = "indoor"
	LocationOutdoor LocationConstraint = "outdoor"
)

type CostConstraint string

const (
	CostFree CostConstraint = "free"
	CostPaid CostConstraint = "paid"
)
