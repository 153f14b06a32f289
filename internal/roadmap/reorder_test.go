package roadmap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/testutil"
)

func TestMover_Commits(t *testing.T) {
	db := testutil.NewTestDB(t)
	programs := repository.NewSQLiteProgramRepo(db)
	goals := repository.NewSQLiteGoalRepo(db)
	milestones := repository.NewSQLiteMilestoneRepo(db)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Host")
	require.NoError(t, programs.Create(ctx, prog))
	src := testutil.NewTestGoal(prog.ID, "Source")
	dst := testutil.NewTestGoal(prog.ID, "Destination")
	require.NoError(t, goals.Create(ctx, src))
	require.NoError(t, goals.Create(ctx, dst))
	ms := testutil.NewTestMilestone(src.ID, "Mover")
	require.NoError(t, milestones.Create(ctx, ms))

	mover := NewMover(goals, milestones)
	state, err := mover.Move(ctx, ms, dst.ID)
	require.NoError(t, err)
	assert.Equal(t, MoveCommitted, state)
	assert.Equal(t, dst.ID, ms.GoalID)

	persisted, err := milestones.GetByID(ctx, ms.ID)
	require.NoError(t, err)
	assert.Equal(t, dst.ID, persisted.GoalID)
}

func TestMover_RejectsNoOpAndUnknownTarget(t *testing.T) {
	db := testutil.NewTestDB(t)
	programs := repository.NewSQLiteProgramRepo(db)
	goals := repository.NewSQLiteGoalRepo(db)
	milestones := repository.NewSQLiteMilestoneRepo(db)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Host")
	require.NoError(t, programs.Create(ctx, prog))
	goal := testutil.NewTestGoal(prog.ID, "Only")
	require.NoError(t, goals.Create(ctx, goal))
	ms := testutil.NewTestMilestone(goal.ID, "Anchored")
	require.NoError(t, milestones.Create(ctx, ms))

	mover := NewMover(goals, milestones)

	state, err := mover.Move(ctx, ms, goal.ID)
	assert.Error(t, err)
	assert.Equal(t, MovePending, state)

	state, err = mover.Move(ctx, ms, "no-such-goal")
	assert.Error(t, err)
	assert.Equal(t, MovePending, state)
	assert.Equal(t, goal.ID, ms.GoalID)
}

func TestMover_RollsBackOnPersistFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	programs := repository.NewSQLiteProgramRepo(db)
	goals := repository.NewSQLiteGoalRepo(db)
	milestones := repository.NewSQLiteMilestoneRepo(db)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Host")
	require.NoError(t, programs.Create(ctx, prog))
	src := testutil.NewTestGoal(prog.ID, "Source")
	dst := testutil.NewTestGoal(prog.ID, "Destination")
	require.NoError(t, goals.Create(ctx, src))
	require.NoError(t, goals.Create(ctx, dst))

	// Milestone was never persisted, so UpdateGoal affects zero rows
	// and the repository reports failure.
	ghost := testutil.NewTestMilestone(src.ID, "Ghost")

	mover := NewMover(goals, milestones)
	state, err := mover.Move(ctx, ghost, dst.ID)
	assert.Error(t, err)
	assert.Equal(t, MoveRolledBack, state)
	assert.Equal(t, src.ID, ghost.GoalID, "in-memory goal restored after failed persist")
}
