package formatter

import (
	"fmt"
	"strings"

	"github.com/tandemlab/tandem/internal/app"
	"github.com/tandemlab/tandem/internal/domain"
)

// FormatPlan renders a generated plan as a styled timeline box.
func FormatPlan(plan *domain.Plan) string {
	var b strings.Builder

	b.WriteString(Bold(plan.Title))
	b.WriteString("  ")
	b.WriteString(MoodBadge(plan.Params.Mood))
	b.WriteString("\n")
	b.WriteString(Dim(plan.Reasoning))
	b.WriteString("\n\n")

	if len(plan.Items) == 0 {
		b.WriteString(StyleYellow.Render("No quedó ninguna actividad con estos filtros."))
		b.WriteString("\n")
	}

	for _, item := range plan.Items {
		offset := StyleBlue.Render(ClockOffset(item.StartMin))
		duration := Dim(fmt.Sprintf("(%s)", FormatMinutes(item.DurationMin)))

		if item.Transition {
			b.WriteString(fmt.Sprintf("%s  %s %s\n", offset, Dim("· "+item.Description), duration))
			continue
		}

		b.WriteString(fmt.Sprintf("%s  %s %s  %s\n",
			offset,
			StyleFg.Render(item.Title),
			duration,
			IntensityIndicator(item.Intensity),
		))
		if item.Description != "" {
			b.WriteString(fmt.Sprintf("       %s\n", Dim(item.Description)))
		}
		for _, step := range item.Steps {
			b.WriteString(fmt.Sprintf("       %s %s\n", StylePurple.Render("–"), Dim(step)))
		}
	}

	b.WriteString("\n")
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Total: %s", FormatMinutes(plan.TotalDurationMin))))
	b.WriteString(Dim(fmt.Sprintf("  (pedido: %s)", FormatMinutes(plan.Params.TargetMin))))
	b.WriteString("\n")

	if len(plan.RequiredAssets) > 0 {
		b.WriteString(Dim("Necesitan: " + strings.Join(plan.RequiredAssets, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(Dim("Plan " + TruncID(plan.ID)))
	b.WriteString("\n")

	return RenderBox("Plan de hoy", b.String())
}

// FormatScores renders the --explain scoring breakdown.
func FormatScores(scores []app.ActivityScore) string {
	var b strings.Builder
	b.WriteString(Header("Scoring"))
	b.WriteString("\n")
	for _, s := range scores {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleFg.Render(s.Title), StyleBlue.Render(fmt.Sprintf("%.1f", s.Score))))
		for _, r := range s.Reasons {
			b.WriteString(fmt.Sprintf("   %s %s %s\n",
				StyleYellow.Render(string(r.Code)+":"),
				Dim(r.Message),
				Dim(fmt.Sprintf("%+.1f", r.Delta)),
			))
		}
	}
	return b.String()
}

// FormatHeuristics renders the current heuristics snapshot.
func FormatHeuristics(h *domain.Heuristics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Tag match weight:       %.2f\n", h.TagMatchWeight))
	b.WriteString(fmt.Sprintf("  Intensity match weight: %.2f\n", h.IntensityMatchWeight))
	b.WriteString(fmt.Sprintf("  Variety bonus:          %.2f\n", h.VarietyBonus))
	b.WriteString(fmt.Sprintf("  Recency penalty:        %.2f\n", h.RecencyPenalty))
	b.WriteString(fmt.Sprintf("  Feedback weight:        %.2f\n", h.FeedbackWeight))
	b.WriteString(fmt.Sprintf("  Transition minutes:     %d-%d\n", h.MinTransitionMin, h.MaxTransitionMin))

	headers := []string{"Surprise", "Known", "Variant", "New"}
	rows := make([][]string, 0, 4)
	for _, level := range []domain.SurpriseLevel{
		domain.SurpriseSafe, domain.SurpriseBalanced, domain.SurpriseAdventurous, domain.SurpriseWild,
	} {
		mix := h.MixFor(level)
		rows = append(rows, []string{
			string(level),
			fmt.Sprintf("%.0f%%", mix.Known*100),
			fmt.Sprintf("%.0f%%", mix.Variant*100),
			fmt.Sprintf("%.0f%%", mix.New*100),
		})
	}
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
