package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmallek/compass/internal/cli/formatter"
	"github.com/jmallek/compass/internal/roadmap"
)

// roadmapRow is one navigable line of the browser: a program or a goal.
// Milestones render under their goal but are not separately navigable.
type roadmapRow struct {
	kind roadmap.NodeKind
	id   string
}

// roadmapModel is the interactive collapsible tree view behind
// `roadmap --interactive`.
type roadmapModel struct {
	tree     *roadmap.Tree
	orphans  []roadmap.Orphan
	expanded *roadmap.ExpandState
	cursor   int
	quitting bool
}

func newRoadmapModel(tree *roadmap.Tree, orphans []roadmap.Orphan) *roadmapModel {
	state := roadmap.NewExpandState()
	state.ExpandAll(tree)
	return &roadmapModel{tree: tree, orphans: orphans, expanded: state}
}

func (m *roadmapModel) Init() tea.Cmd { return nil }

// visibleRows flattens the tree into the rows the cursor can reach,
// honoring the current expand state.
func (m *roadmapModel) visibleRows() []roadmapRow {
	var rows []roadmapRow
	for _, pn := range m.tree.Programs {
		rows = append(rows, roadmapRow{kind: roadmap.NodeProgram, id: pn.Program.ID})
		if !m.expanded.IsExpanded(roadmap.NodeProgram, pn.Program.ID) {
			continue
		}
		for _, gn := range pn.Goals {
			rows = append(rows, roadmapRow{kind: roadmap.NodeGoal, id: gn.Goal.ID})
		}
	}
	return rows
}

func (m *roadmapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rows := m.visibleRows()

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.cursor < len(rows) {
			row := rows[m.cursor]
			m.expanded.Toggle(row.kind, row.id)
			// Collapsing can shrink the list out from under the cursor.
			if remaining := len(m.visibleRows()); m.cursor >= remaining {
				m.cursor = remaining - 1
			}
		}
	}
	return m, nil
}

func (m *roadmapModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Roadmap") + "\n\n")

	i := 0
	for _, pn := range m.tree.Programs {
		b.WriteString(m.renderLine(i, pn.Program.Name, 0,
			m.expanded.IsExpanded(roadmap.NodeProgram, pn.Program.ID), len(pn.Goals), "goals"))
		i++
		if !m.expanded.IsExpanded(roadmap.NodeProgram, pn.Program.ID) {
			continue
		}
		for _, gn := range pn.Goals {
			open := m.expanded.IsExpanded(roadmap.NodeGoal, gn.Goal.ID)
			b.WriteString(m.renderLine(i, gn.Goal.Name, 1, open, len(gn.Milestones), "milestones"))
			i++
			if !open {
				continue
			}
			for _, ms := range gn.Milestones {
				line := "      " + formatter.StatusPill(ms.Status) + " " + ms.Title
				if ms.DueDate != nil {
					line += " " + formatter.Dim(formatter.RelativeDate(*ms.DueDate))
				}
				b.WriteString(line + "\n")
			}
		}
	}

	if out := formatter.FormatOrphans(m.orphans); out != "" {
		b.WriteString("\n" + out)
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ move · enter toggle · q quit") + "\n")
	return b.String()
}

func (m *roadmapModel) renderLine(idx int, title string, depth int, open bool, children int, noun string) string {
	cursor := "  "
	if idx == m.cursor {
		cursor = formatter.StyleGreen.Render("▸ ")
	}

	indicator := "▾ "
	if !open {
		indicator = fmt.Sprintf("▸ (%d %s) ", children, noun)
	}

	indent := strings.Repeat("  ", depth)
	styled := title
	if depth == 0 {
		styled = formatter.Bold(title)
	}
	return cursor + indent + formatter.Dim(indicator) + styled + "\n"
}

// runRoadmapBrowser blocks until the user quits the tree view.
func runRoadmapBrowser(tree *roadmap.Tree, orphans []roadmap.Orphan) error {
	p := tea.NewProgram(newRoadmapModel(tree, orphans))
	_, err := p.Run()
	return err
}
