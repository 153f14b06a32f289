package formatter

import (
	"fmt"
	"strings"

	"github.com/jmallek/compass/internal/roadmap"
)

// FormatRoadmap renders the assembled hierarchy as an indented tree.
// Collapsed programs and goals show a child count instead of their
// subtree; pass nil to render everything expanded.
func FormatRoadmap(tree *roadmap.Tree, expanded *roadmap.ExpandState) string {
	if tree == nil || len(tree.Programs) == 0 {
		return Dim("No programs yet.")
	}

	var items []TreeItem
	for _, pn := range tree.Programs {
		title := Bold(pn.Program.Name)
		open := expanded == nil || expanded.IsExpanded(roadmap.NodeProgram, pn.Program.ID)
		if !open {
			title += " " + Dim(fmt.Sprintf("▸ (%d goals)", len(pn.Goals)))
		}
		items = append(items, TreeItem{
			Title:  title,
			Level:  0,
			Detail: RenderProgress(float64(pn.Program.Progress)/100, 8),
		})
		if !open {
			continue
		}

		for gi, gn := range pn.Goals {
			goalOpen := expanded == nil || expanded.IsExpanded(roadmap.NodeGoal, gn.Goal.ID)
			goalTitle := gn.Goal.Name
			if !goalOpen {
				goalTitle += " " + Dim(fmt.Sprintf("▸ (%d milestones)", len(gn.Milestones)))
			}
			items = append(items, TreeItem{
				Title:  goalTitle,
				Level:  1,
				IsLast: gi == len(pn.Goals)-1,
				Status: string(gn.Goal.Status),
			})
			if !goalOpen {
				continue
			}

			for mi, ms := range gn.Milestones {
				detail := ""
				if ms.DueDate != nil {
					detail = RelativeDate(*ms.DueDate)
				}
				items = append(items, TreeItem{
					Title:  ms.Title,
					Level:  2,
					IsLast: mi == len(gn.Milestones)-1,
					Status: string(ms.Status),
					Detail: detail,
				})
			}
		}
	}

	return RenderTree(items)
}

// FormatOrphans lists nodes whose parent is missing from the store.
func FormatOrphans(orphans []roadmap.Orphan) string {
	if len(orphans) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("%d orphaned node(s):", len(orphans))))
	b.WriteString("\n")
	for _, o := range orphans {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim(string(o.Kind)), o.ID, Dim("missing parent "+o.MissingParentID)))
	}
	return b.String()
}
