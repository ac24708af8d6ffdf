package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/domain"
)

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 15m", FormatMinutes(75))
	assert.Equal(t, "2h", FormatMinutes(120))
}

func TestClockOffset(t *testing.T) {
	assert.Equal(t, "+0:00", ClockOffset(0))
	assert.Equal(t, "+0:35", ClockOffset(35))
	assert.Equal(t, "+1:05", ClockOffset(65))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "a81bc81b", TruncID("a81bc81b-dead-4e5d-abff-90865d1e13b1"))
	assert.Equal(t, "shortid", TruncID("shortid"))
	assert.Equal(t, "12345678", TruncID("123456789abc"))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-30*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Mar 10, 2026", HumanTimestamp(now.AddDate(0, 0, -4), now))
}

func samplePlan() *domain.Plan {
	return &domain.Plan{
		ID:        "a81bc81b-dead-4e5d-abff-90865d1e13b1",
		Title:     "Plan tranquilo",
		Reasoning: "Este plan es para 60 minutos.",
		Items: []domain.ScheduledItem{
			{ActivityID: "te", Title: "Té y preguntas", DurationMin: 30, StartMin: 0,
				Steps: []string{"preparar el té"}},
			{Transition: true, Title: "Transición", Description: "Hagan una pausa breve",
				DurationMin: 2, StartMin: 30},
			{ActivityID: "lectura", Title: "Lectura en voz alta", DurationMin: 28, StartMin: 32},
		},
		TotalDurationMin: 60,
		RequiredAssets:   []string{"té", "un libro"},
		Params:           domain.PlanParams{Mood: domain.MoodCalm, TargetMin: 60, Surprise: 30},
	}
}

func TestFormatPlan(t *testing.T) {
	out := FormatPlan(samplePlan())

	assert.Contains(t, out, "Plan tranquilo")
	assert.Contains(t, out, "Té y preguntas")
	assert.Contains(t, out, "+0:32")
	assert.Contains(t, out, "Necesitan: té, un libro")
	assert.Contains(t, out, "Plan a81bc81b")
	assert.Contains(t, out, "preparar el té")
}

func TestFormatPlan_Degraded(t *testing.T) {
	plan := &domain.Plan{
		ID:        "p1",
		Title:     "Su plan de hoy",
		Reasoning: "Los filtros fueron demasiado estrictos.",
	}

	out := FormatPlan(plan)

	assert.Contains(t, out, "No quedó ninguna actividad")
}

func TestFormatScores(t *testing.T) {
	out := FormatScores([]app.ActivityScore{
		{ActivityID: "te", Title: "Té", Score: 12.5, Reasons: []app.ScoreReason{
			{Code: app.ReasonTagMatch, Message: "Matches their tag preferences", Delta: 8},
		}},
	})

	assert.Contains(t, out, "Té")
	assert.Contains(t, out, "12.5")
	assert.Contains(t, out, "TAG_MATCH")
}

func TestFormatHeuristics(t *testing.T) {
	h := domain.DefaultHeuristics()
	out := FormatHeuristics(&h)

	assert.Contains(t, out, "Feedback weight:")
	assert.Contains(t, out, "1.20")
	assert.Contains(t, out, "safe")
	assert.Contains(t, out, "90%")
}

func TestFormatHistory(t *testing.T) {
	now := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	out := FormatHistory([]domain.PlanSummary{
		{ID: "a81bc81b-1", Title: "Plan energético", TotalDurationMin: 75,
			ActivityCount: 3, GeneratedAt: now.Add(-2 * time.Hour)},
	}, now)

	assert.Contains(t, out, "Plan energético")
	assert.Contains(t, out, "1h 15m")
	assert.Contains(t, out, "2h ago")
}

func TestFormatHistory_Empty(t *testing.T) {
	out := FormatHistory(nil, time.Now())
	assert.Contains(t, out, "No plans generated yet.")
}
