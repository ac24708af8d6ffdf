package app

type ScoreReasonCode string

const (
	ReasonTagMatch       ScoreReasonCode = "TAG_MATCH"
	ReasonIntensityMatch ScoreReasonCode = "INTENSITY_MATCH"
	ReasonMoodMatch      ScoreReasonCode = "MOOD_MATCH"
	ReasonTimeOfDay      ScoreReasonCode = "TIME_OF_DAY"
	ReasonVariety        ScoreReasonCode = "VARIETY"
	ReasonFeedback       ScoreReasonCode = "FEEDBACK"
	ReasonRecency        ScoreReasonCode = "RECENCY_PENALTY"
)

// ScoreReason records one factor's contribution to an activity's score.
type ScoreReason struct {
	Code    ScoreReasonCode
	Message string
	Delta   float64
}
