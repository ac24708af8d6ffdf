package domain

// FeedbackStats aggregates per-activity feedback counters.
type FeedbackStats struct {
	ThumbsUp   int
	ThumbsDown int
	Completed  int
	Skipped    int
}

// Net computes the net feedback signal used by the scorer: praise and
// completions up, rejections and skips down.
func (s FeedbackStats) Net() float64 {
	return float64(s.ThumbsUp)*2 + float64(s.Completed)*1.5 -
		float64(s.ThumbsDown)*2 - float64(s.Skipped)*1
}
