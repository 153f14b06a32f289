package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/testutil"
)

const importFixture = `{
  "program": {
    "name": "Fiber Rollout",
    "start_date": "2026-02-01",
    "end_date": "2026-11-30"
  },
  "goals": [
    {"ref": "g-north", "name": "North district"},
    {"ref": "g-south", "name": "South district"}
  ],
  "milestones": [
    {"ref": "m-trench", "goal_ref": "g-north", "title": "Trenching done", "due_date": "2026-05-01"},
    {"ref": "m-splice", "goal_ref": "g-north", "title": "Splicing done"},
    {"ref": "m-south-live", "goal_ref": "g-south", "title": "South live"}
  ],
  "tasks": [
    {"ref": "t-permits", "milestone_ref": "m-trench", "title": "City permits"}
  ],
  "dependencies": [
    {"predecessor_ref": "m-trench", "successor_ref": "m-splice"}
  ]
}`

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportService_ImportProgram(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(conn), "org-import")
	ctx := context.Background()

	result, err := svc.ImportProgram(ctx, writeImportFile(t, importFixture))
	require.NoError(t, err)

	assert.Equal(t, "Fiber Rollout", result.Program.Name)
	assert.Equal(t, 2, result.GoalCount)
	assert.Equal(t, 3, result.MilestoneCount)
	assert.Equal(t, 1, result.TaskCount)
	assert.Equal(t, 1, result.DependencyCount)

	programs := repository.NewSQLiteProgramRepo(conn)
	stored, err := programs.GetByID(ctx, result.Program.ID)
	require.NoError(t, err)
	assert.Equal(t, "org-import", stored.OrganizationID)

	goals := repository.NewSQLiteGoalRepo(conn)
	storedGoals, err := goals.ListByProgram(ctx, result.Program.ID)
	require.NoError(t, err)
	assert.Len(t, storedGoals, 2)
}

func TestImportService_ValidationFailureWritesNothing(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(conn), "")
	ctx := context.Background()

	bad := `{"program": {"name": "", "start_date": ""}, "goals": [], "milestones": []}`
	_, err := svc.ImportProgram(ctx, writeImportFile(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import file invalid")

	programs := repository.NewSQLiteProgramRepo(conn)
	all, err := programs.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportService_WriteFailureRollsBack(t *testing.T) {
	conn := testutil.NewTestDB(t)
	ctx := context.Background()

	// Exec 1 writes the program; exec 2 (first goal) fails, so the
	// program insert must roll back with it.
	uow := &testutil.FailOnNthExecUoW{DB: conn, FailOn: 2}
	svc := NewImportService(uow, "")

	_, err := svc.ImportProgram(ctx, writeImportFile(t, importFixture))
	require.Error(t, err)

	programs := repository.NewSQLiteProgramRepo(conn)
	all, err := programs.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all, "partial import rolled back")
}

func TestImportService_MissingFile(t *testing.T) {
	svc := NewImportService(testutil.NewTestUoW(testutil.NewTestDB(t)), "")
	_, err := svc.ImportProgram(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
