package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/roadmap"
)

func sampleTree() *roadmap.Tree {
	due := time.Now().AddDate(0, 1, 0)
	programs := []*domain.Program{
		{ID: "p1", Name: "Platform Rebuild", Progress: 40, StartDate: time.Now()},
	}
	goals := []*domain.Goal{
		{ID: "g1", ProgramID: "p1", Name: "Migrate storage", Status: domain.StatusInProgress},
		{ID: "g2", ProgramID: "p1", Name: "Cut over traffic", Status: domain.StatusNotStarted},
	}
	milestones := []*domain.Milestone{
		{ID: "m1", GoalID: "g1", Title: "Schema frozen", Status: domain.StatusCompleted, DueDate: &due},
		{ID: "m2", GoalID: "g1", Title: "Dual writes live", Status: domain.StatusInProgress},
	}
	tree, orphans := roadmap.BuildHierarchy(programs, goals, milestones)
	if len(orphans) != 0 {
		panic("sample tree must not produce orphans")
	}
	return tree
}

func TestFormatRoadmap_FullyExpanded(t *testing.T) {
	out := FormatRoadmap(sampleTree(), nil)

	assert.Contains(t, out, "Platform Rebuild")
	assert.Contains(t, out, "Migrate storage")
	assert.Contains(t, out, "Schema frozen")
	assert.Contains(t, out, "Dual writes live")
	assert.Contains(t, out, treeCorner)
}

func TestFormatRoadmap_CollapsedProgramHidesSubtree(t *testing.T) {
	state := roadmap.NewExpandState()
	// Everything starts collapsed; only expand nothing.
	out := FormatRoadmap(sampleTree(), state)

	assert.Contains(t, out, "Platform Rebuild")
	assert.Contains(t, out, "2 goals")
	assert.NotContains(t, out, "Migrate storage")
}

func TestFormatRoadmap_CollapsedGoalShowsCount(t *testing.T) {
	tree := sampleTree()
	state := roadmap.NewExpandState()
	state.Toggle(roadmap.NodeProgram, "p1")

	out := FormatRoadmap(tree, state)
	require.Contains(t, out, "Migrate storage")
	assert.Contains(t, out, "2 milestones")
	assert.NotContains(t, out, "Schema frozen")
}

func TestFormatRoadmap_Empty(t *testing.T) {
	out := FormatRoadmap(&roadmap.Tree{}, nil)
	assert.Contains(t, out, "No programs")
}

func TestFormatOrphans(t *testing.T) {
	out := FormatOrphans([]roadmap.Orphan{
		{Kind: roadmap.OrphanGoal, ID: "g9", MissingParentID: "p9"},
	})
	assert.Contains(t, out, "g9")
	assert.Contains(t, out, "p9")
	assert.True(t, strings.Contains(out, "orphaned"))
}

func TestFormatOrphans_EmptyIsSilent(t *testing.T) {
	assert.Empty(t, FormatOrphans(nil))
}
