package formatter

import (
	"fmt"
	"strings"

	"github.com/jmallek/compass/internal/scenario"
)

// FormatSuggestions renders engine output grouped by variant, with the
// impact triple and confidence for each suggestion.
func FormatSuggestions(suggestions []scenario.Suggestion) string {
	if len(suggestions) == 0 {
		return Dim("No suggestions.")
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Suggestions — %s", suggestions[0].Strategy)))
	b.WriteString("\n\n")

	headers := []string{"ID", "Title", "Timeline", "Budget", "Resources", "Confidence"}
	rows := make([][]string, 0, len(suggestions))
	for _, sg := range suggestions {
		rows = append(rows, []string{
			TruncID(sg.ID),
			sg.Title,
			SignedDelta(sg.Impact.TimelineMonths, "mo"),
			SignedDelta(sg.Impact.BudgetPct, "%"),
			SignedDelta(sg.Impact.ResourcesPct, "%"),
			fmt.Sprintf("%.2f", sg.Confidence),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if risks := suggestions[0].Risks; len(risks) > 0 {
		b.WriteString("\n" + StyleYellow.Render("Risks") + "\n")
		for _, r := range risks {
			b.WriteString("  " + Dim("•") + " " + r + "\n")
		}
	}

	return b.String()
}
