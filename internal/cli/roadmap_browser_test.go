package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/roadmap"
)

func browserTree() *roadmap.Tree {
	due := time.Now().AddDate(0, 2, 0)
	tree, _ := roadmap.BuildHierarchy(
		[]*domain.Program{{ID: "p1", Name: "Rollout", Progress: 25}},
		[]*domain.Goal{
			{ID: "g1", ProgramID: "p1", Name: "Pilot region", Status: domain.StatusInProgress},
			{ID: "g2", ProgramID: "p1", Name: "Full region", Status: domain.StatusNotStarted},
		},
		[]*domain.Milestone{
			{ID: "m1", GoalID: "g1", Title: "Site survey", Status: domain.StatusCompleted, DueDate: &due},
		},
	)
	return tree
}

func keyPress(m tea.Model, key tea.KeyType) tea.Model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next
}

func TestRoadmapModel_StartsFullyExpanded(t *testing.T) {
	m := newRoadmapModel(browserTree(), nil)

	rows := m.visibleRows()
	require.Len(t, rows, 3) // program + two goals

	view := m.View()
	assert.Contains(t, view, "Rollout")
	assert.Contains(t, view, "Pilot region")
	assert.Contains(t, view, "Site survey")
}

func TestRoadmapModel_ToggleCollapsesProgram(t *testing.T) {
	m := newRoadmapModel(browserTree(), nil)

	next := keyPress(m, tea.KeyEnter)
	model := next.(*roadmapModel)

	assert.Len(t, model.visibleRows(), 1)
	view := model.View()
	assert.Contains(t, view, "2 goals")
	assert.NotContains(t, view, "Pilot region")
}

func TestRoadmapModel_ToggleTwiceRestores(t *testing.T) {
	m := newRoadmapModel(browserTree(), nil)

	next := keyPress(m, tea.KeyEnter)
	next = keyPress(next, tea.KeyEnter)
	model := next.(*roadmapModel)

	assert.Len(t, model.visibleRows(), 3)
	assert.Contains(t, model.View(), "Pilot region")
}

func TestRoadmapModel_CollapseGoalKeepsSibling(t *testing.T) {
	m := newRoadmapModel(browserTree(), nil)

	next := keyPress(m, tea.KeyDown) // onto first goal
	next = keyPress(next, tea.KeyEnter)
	model := next.(*roadmapModel)

	view := model.View()
	assert.Contains(t, view, "1 milestones")
	assert.NotContains(t, view, "Site survey")
	assert.Contains(t, view, "Full region")
}

func TestRoadmapModel_CursorClampsAfterCollapse(t *testing.T) {
	m := newRoadmapModel(browserTree(), nil)

	// Move to the last goal, then collapse the program from the top.
	next := keyPress(m, tea.KeyDown)
	next = keyPress(next, tea.KeyDown)
	model := next.(*roadmapModel)
	assert.Equal(t, 2, model.cursor)

	model.cursor = 0
	next = keyPress(model, tea.KeyEnter)
	model = next.(*roadmapModel)
	assert.Equal(t, 0, model.cursor)
	assert.Len(t, model.visibleRows(), 1)
}

func TestRoadmapModel_QuitClearsView(t *testing.T) {
	m := newRoadmapModel(browserTree(), nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model := next.(*roadmapModel)

	assert.True(t, model.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, model.View())
}

func TestRoadmapModel_ShowsOrphans(t *testing.T) {
	orphans := []roadmap.Orphan{{Kind: roadmap.OrphanMilestone, ID: "m9", MissingParentID: "g9"}}
	m := newRoadmapModel(browserTree(), orphans)

	assert.Contains(t, m.View(), "m9")
}
