package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
)

func TestConvertImportSchema_LinksRefs(t *testing.T) {
	result := ConvertImportSchema(validSchema(), "org-7")

	require.NotNil(t, result.Program)
	assert.NotEmpty(t, result.Program.ID)
	assert.Equal(t, "org-7", result.Program.OrganizationID)
	require.NotNil(t, result.Program.EndDate)

	require.Len(t, result.Goals, 2)
	require.Len(t, result.Milestones, 3)
	require.Len(t, result.Tasks, 1)
	require.Len(t, result.Dependencies, 2)

	for _, g := range result.Goals {
		assert.Equal(t, result.Program.ID, g.ProgramID)
	}

	// Milestone goal_ref resolution: the first two milestones share a goal.
	assert.Equal(t, result.Milestones[0].GoalID, result.Milestones[1].GoalID)
	assert.NotEqual(t, result.Milestones[0].GoalID, result.Milestones[2].GoalID)

	// Dependencies resolve to milestone IDs, in file order.
	assert.Equal(t, result.Milestones[0].ID, result.Dependencies[0].PredecessorID)
	assert.Equal(t, result.Milestones[1].ID, result.Dependencies[0].SuccessorID)
}

func TestConvertImportSchema_Defaults(t *testing.T) {
	result := ConvertImportSchema(validSchema(), "")

	assert.Equal(t, domain.StatusNotStarted, result.Goals[0].Status)
	assert.Equal(t, domain.StatusNotStarted, result.Milestones[1].Status)
	assert.Equal(t, domain.StatusCompleted, result.Tasks[0].Status)
	assert.Equal(t, result.Program.StartDate, result.Goals[0].StartDate)
}

func TestConvertImportSchema_DueDateParsed(t *testing.T) {
	result := ConvertImportSchema(validSchema(), "")

	require.NotNil(t, result.Milestones[0].DueDate)
	assert.Equal(t, "2026-06-15", result.Milestones[0].DueDate.Format("2006-01-02"))
}
