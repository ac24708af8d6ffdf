package formatter

import (
	"fmt"
	"time"

	"github.com/tandemlab/tandem/internal/domain"
)

// FormatHistory renders recent plan summaries as a table.
func FormatHistory(summaries []domain.PlanSummary, now time.Time) string {
	if len(summaries) == 0 {
		return Dim("No plans generated yet.") + "\n"
	}

	headers := []string{"Plan", "Title", "Duration", "Activities", "Generated"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			Dim(TruncID(s.ID)),
			StyleFg.Render(s.Title),
			FormatMinutes(s.TotalDurationMin),
			fmt.Sprintf("%d", s.ActivityCount),
			Dim(HumanTimestamp(s.GeneratedAt, now)),
		})
	}
	return RenderTable(headers, rows)
}
