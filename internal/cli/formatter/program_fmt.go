package formatter

import (
	"fmt"
	"strings"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/service"
)

// FormatProgramList renders programs as an aligned table.
func FormatProgramList(programs []*domain.Program) string {
	headers := []string{"ID", "Name", "Start", "End", "Progress"}
	rows := make([][]string, 0, len(programs))
	for _, p := range programs {
		end := Dim("--")
		if p.EndDate != nil {
			end = p.EndDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			p.Name,
			p.StartDate.Format("2006-01-02"),
			end,
			RenderProgress(float64(p.Progress)/100, 8),
		})
	}
	return RenderTable(headers, rows)
}

// ProgramInspectData carries everything the inspect view renders.
type ProgramInspectData struct {
	Program *domain.Program
	Goals   []*domain.Goal
	Risks   *service.RiskSummary
}

// FormatProgramInspect renders a single program with its goals and risk
// posture in a bordered box.
func FormatProgramInspect(data ProgramInspectData) string {
	p := data.Program

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold(p.Name), TruncID(p.ID)))
	if p.Description != "" {
		b.WriteString(Dim(p.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Start     %s\n", p.StartDate.Format("2006-01-02")))
	if p.EndDate != nil {
		b.WriteString(fmt.Sprintf("End       %s\n", p.EndDate.Format("2006-01-02")))
	}
	b.WriteString(fmt.Sprintf("Progress  %s\n", RenderProgress(float64(p.Progress)/100, 12)))

	if len(data.Goals) > 0 {
		b.WriteString("\n" + Header("Goals") + "\n")
		for _, g := range data.Goals {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", TruncID(g.ID), g.Name, StatusPill(g.Status)))
		}
	}

	if data.Risks != nil && data.Risks.Open+data.Risks.Closed > 0 {
		b.WriteString("\n" + Header("Risks") + "\n")
		b.WriteString(fmt.Sprintf("  Open %d  Closed %d  Exposure %s\n",
			data.Risks.Open, data.Risks.Closed,
			ExposureStyle(data.Risks.TotalExposure).Render(fmt.Sprintf("%.1f", data.Risks.TotalExposure))))
		if data.Risks.Highest != nil {
			b.WriteString(fmt.Sprintf("  Highest: %s\n", data.Risks.Highest.Description))
		}
	}

	return RenderBox("", b.String())
}
