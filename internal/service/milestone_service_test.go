package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/roadmap"
	"github.com/jmallek/compass/internal/testutil"
)

type milestoneFixture struct {
	svc        MilestoneService
	goal       *domain.Goal
	otherGoal  *domain.Goal
	milestones []*domain.Milestone
}

func newMilestoneFixture(t *testing.T, conn *sql.DB, n int) *milestoneFixture {
	t.Helper()
	ctx := context.Background()
	programs := repository.NewSQLiteProgramRepo(conn)
	goals := repository.NewSQLiteGoalRepo(conn)
	milestones := repository.NewSQLiteMilestoneRepo(conn)
	deps := repository.NewSQLiteDependencyRepo(conn)
	uow := testutil.NewTestUoW(conn)

	prog := testutil.NewTestProgram("Host")
	require.NoError(t, programs.Create(ctx, prog))
	goal := testutil.NewTestGoal(prog.ID, "Primary")
	other := testutil.NewTestGoal(prog.ID, "Secondary")
	require.NoError(t, goals.Create(ctx, goal))
	require.NoError(t, goals.Create(ctx, other))

	fx := &milestoneFixture{
		svc:       NewMilestoneService(milestones, goals, deps, uow),
		goal:      goal,
		otherGoal: other,
	}
	for i := 0; i < n; i++ {
		ms := testutil.NewTestMilestone(goal.ID, "M")
		require.NoError(t, milestones.Create(ctx, ms))
		fx.milestones = append(fx.milestones, ms)
	}
	return fx
}

func TestMilestoneService_SetDependencies(t *testing.T) {
	fx := newMilestoneFixture(t, testutil.NewTestDB(t), 3)
	ctx := context.Background()

	target := fx.milestones[2]
	err := fx.svc.SetDependencies(ctx, target.ID, []string{fx.milestones[0].ID, fx.milestones[1].ID})
	require.NoError(t, err)

	preds, err := fx.svc.ListDependencies(ctx, target.ID)
	require.NoError(t, err)
	assert.Len(t, preds, 2)
}

func TestMilestoneService_SetDependencies_RejectsSelfBeforeWrite(t *testing.T) {
	fx := newMilestoneFixture(t, testutil.NewTestDB(t), 2)
	ctx := context.Background()

	target := fx.milestones[0]
	err := fx.svc.SetDependencies(ctx, target.ID, []string{fx.milestones[1].ID, target.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "itself")

	// Nothing was written: the valid edge in the same request is also absent.
	preds, derr := fx.svc.ListDependencies(ctx, target.ID)
	require.NoError(t, derr)
	assert.Empty(t, preds)
}

func TestMilestoneService_SetDependencies_UnknownPredecessor(t *testing.T) {
	fx := newMilestoneFixture(t, testutil.NewTestDB(t), 1)
	err := fx.svc.SetDependencies(context.Background(), fx.milestones[0].ID, []string{"ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestMilestoneService_SetDependencies_PartialFailureRollsBack(t *testing.T) {
	conn := testutil.NewTestDB(t)
	ctx := context.Background()
	programs := repository.NewSQLiteProgramRepo(conn)
	goals := repository.NewSQLiteGoalRepo(conn)
	milestones := repository.NewSQLiteMilestoneRepo(conn)
	deps := repository.NewSQLiteDependencyRepo(conn)

	prog := testutil.NewTestProgram("Host")
	require.NoError(t, programs.Create(ctx, prog))
	goal := testutil.NewTestGoal(prog.ID, "Primary")
	require.NoError(t, goals.Create(ctx, goal))
	var ids []string
	var target *domain.Milestone
	for i := 0; i < 3; i++ {
		ms := testutil.NewTestMilestone(goal.ID, "M")
		require.NoError(t, milestones.Create(ctx, ms))
		ids = append(ids, ms.ID)
		target = ms
	}

	// Exec 1 clears the old set, exec 2 inserts the first edge, exec 3
	// fails, so the whole transaction must roll back.
	uow := &testutil.FailOnNthExecUoW{DB: conn, FailOn: 3}
	svc := NewMilestoneService(milestones, goals, deps, uow)

	err := svc.SetDependencies(ctx, target.ID, []string{ids[0], ids[1]})
	require.Error(t, err)

	preds, derr := deps.ListPredecessors(ctx, target.ID)
	require.NoError(t, derr)
	assert.Empty(t, preds, "partial edge set rolled back")
}

func TestMilestoneService_Move(t *testing.T) {
	fx := newMilestoneFixture(t, testutil.NewTestDB(t), 1)
	ctx := context.Background()

	state, err := fx.svc.Move(ctx, fx.milestones[0].ID, fx.otherGoal.ID)
	require.NoError(t, err)
	assert.Equal(t, roadmap.MoveCommitted, state)

	moved, err := fx.svc.GetByID(ctx, fx.milestones[0].ID)
	require.NoError(t, err)
	assert.Equal(t, fx.otherGoal.ID, moved.GoalID)
}

func TestMilestoneService_AssignResources(t *testing.T) {
	fx := newMilestoneFixture(t, testutil.NewTestDB(t), 1)
	ctx := context.Background()

	ms := fx.milestones[0]
	require.NoError(t, fx.svc.AssignResources(ctx, ms.ID, []string{"u1", "u2"}))
	require.NoError(t, fx.svc.AssignResources(ctx, ms.ID, []string{"u3"}))

	got, err := fx.svc.ListResources(ctx, ms.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u3"}, got)
}
