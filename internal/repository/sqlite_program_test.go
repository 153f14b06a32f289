package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/testutil"
)

func TestProgramRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	end := time.Now().UTC().AddDate(0, 6, 0)
	prog := testutil.NewTestProgram("Apollo", testutil.WithEndDate(end))
	require.NoError(t, repo.Create(ctx, prog))

	fetched, err := repo.GetByID(ctx, prog.ID)
	require.NoError(t, err)
	assert.Equal(t, prog.ID, fetched.ID)
	assert.Equal(t, "Apollo", fetched.Name)
	assert.Equal(t, "org-test", fetched.OrganizationID)
	require.NotNil(t, fetched.EndDate)
	assert.Equal(t, end.Format("2006-01-02"), fetched.EndDate.Format("2006-01-02"))
}

func TestProgramRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProgramRepo_List_FiltersByOrganization(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	p1 := testutil.NewTestProgram("Alpha", testutil.WithOrganization("org-a"))
	p2 := testutil.NewTestProgram("Beta", testutil.WithOrganization("org-a"))
	p3 := testutil.NewTestProgram("Gamma", testutil.WithOrganization("org-b"))
	require.NoError(t, repo.Create(ctx, p1))
	require.NoError(t, repo.Create(ctx, p2))
	require.NoError(t, repo.Create(ctx, p3))

	list, err := repo.List(ctx, "org-a")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProgramRepo_Create_ClampsProgress(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Overdone", testutil.WithProgramProgress(150))
	require.NoError(t, repo.Create(ctx, prog))

	fetched, err := repo.GetByID(ctx, prog.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, fetched.Progress)
}

func TestProgramRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(db)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Draft")
	require.NoError(t, repo.Create(ctx, prog))

	prog.Name = "Renamed"
	prog.Progress = 40
	prog.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, prog))

	fetched, err := repo.GetByID(ctx, prog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fetched.Name)
	assert.Equal(t, 40, fetched.Progress)
}

func TestProgramRepo_Delete_CascadesToChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	programs := NewSQLiteProgramRepo(db)
	goals := NewSQLiteGoalRepo(db)
	milestones := NewSQLiteMilestoneRepo(db)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Doomed")
	require.NoError(t, programs.Create(ctx, prog))
	goal := testutil.NewTestGoal(prog.ID, "Launch")
	require.NoError(t, goals.Create(ctx, goal))
	ms := testutil.NewTestMilestone(goal.ID, "Beta")
	require.NoError(t, milestones.Create(ctx, ms))

	require.NoError(t, programs.Delete(ctx, prog.ID))

	_, err := goals.GetByID(ctx, goal.ID)
	assert.Error(t, err)
	_, err = milestones.GetByID(ctx, ms.ID)
	assert.Error(t, err)
}
