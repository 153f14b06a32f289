package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/scenario"
	"github.com/jmallek/compass/internal/testutil"
)

func newScenarioService(t *testing.T) (ScenarioService, *domain.Program) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	programs := repository.NewSQLiteProgramRepo(conn)
	goals := repository.NewSQLiteGoalRepo(conn)
	milestones := repository.NewSQLiteMilestoneRepo(conn)
	risks := repository.NewSQLiteRiskRepo(conn)
	scenarios := repository.NewSQLiteScenarioRepo(conn)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Atlas")
	require.NoError(t, programs.Create(ctx, prog))
	risk := testutil.NewTestRisk(prog.ID, "Key vendor churn")
	require.NoError(t, risks.Create(ctx, risk))

	engine := scenario.NewEngine(nil, nil)
	return NewScenarioService(scenarios, programs, risks, goals, milestones, engine), prog
}

func TestScenarioService_Suggest(t *testing.T) {
	svc, prog := newScenarioService(t)

	out, err := svc.Suggest(context.Background(), prog.ID, "we need to go faster")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, scenario.StrategyAcceleration, out[0].Strategy)
	// One open risk exists, so confidence drops below the 0.7 base.
	assert.InDelta(t, 0.6, out[0].Confidence, 1e-9)
}

func TestScenarioService_Suggest_UnknownProgram(t *testing.T) {
	svc, _ := newScenarioService(t)
	_, err := svc.Suggest(context.Background(), "ghost", "anything")
	assert.Error(t, err)
}

func TestScenarioService_CreateAndList(t *testing.T) {
	svc, prog := newScenarioService(t)
	ctx := context.Background()

	sc := &domain.Scenario{
		ProgramID:   prog.ID,
		Title:       "Cut timeline by a quarter",
		Description: "What if we ship one quarter early?",
		Changes:     domain.ImpactDelta{TimelineMonths: -3},
		Predicted:   domain.ImpactDelta{TimelineMonths: -2, BudgetPct: 12, ResourcesPct: 15},
	}
	require.NoError(t, svc.Create(ctx, sc))
	assert.NotEmpty(t, sc.ID)

	list, err := svc.ListByProgram(ctx, prog.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, -3, list[0].Changes.TimelineMonths, 1e-9)
}

func TestRoadmapService_Build(t *testing.T) {
	conn := testutil.NewTestDB(t)
	programs := repository.NewSQLiteProgramRepo(conn)
	goals := repository.NewSQLiteGoalRepo(conn)
	milestones := repository.NewSQLiteMilestoneRepo(conn)
	ctx := context.Background()

	prog := testutil.NewTestProgram("Atlas")
	require.NoError(t, programs.Create(ctx, prog))
	g1 := testutil.NewTestGoal(prog.ID, "G1")
	g2 := testutil.NewTestGoal(prog.ID, "G2")
	require.NoError(t, goals.Create(ctx, g1))
	require.NoError(t, goals.Create(ctx, g2))
	m1 := testutil.NewTestMilestone(g1.ID, "M1")
	m2 := testutil.NewTestMilestone(g1.ID, "M2")
	require.NoError(t, milestones.Create(ctx, m1))
	require.NoError(t, milestones.Create(ctx, m2))

	svc := NewRoadmapService(programs, goals, milestones)
	tree, orphans, err := svc.Build(ctx, "org-test")
	require.NoError(t, err)
	assert.Empty(t, orphans)
	require.Len(t, tree.Programs, 1)
	require.Len(t, tree.Programs[0].Goals, 2)
	assert.Len(t, tree.Programs[0].Goals[0].Milestones, 2)
	assert.Empty(t, tree.Programs[0].Goals[1].Milestones)
}

func TestChatService_SendWithoutClient(t *testing.T) {
	conn := testutil.NewTestDB(t)
	messages := repository.NewSQLiteChatRepo(conn)
	svc := NewChatService(messages, nil)
	ctx := context.Background()

	reply, err := svc.Send(ctx, nil, "what is at risk?")
	require.NoError(t, err)
	assert.Equal(t, domain.ChatAssistant, reply.Role)
	assert.NotEmpty(t, reply.Content)

	recent, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, domain.ChatUser, recent[0].Role)
	assert.Equal(t, domain.ChatAssistant, recent[1].Role)
}

func TestChatService_RejectsEmptyMessage(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewChatService(repository.NewSQLiteChatRepo(conn), nil)
	_, err := svc.Send(context.Background(), nil, "")
	assert.Error(t, err)
}
