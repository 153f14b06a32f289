package service

import (
	"context"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/roadmap"
	"github.com/jmallek/compass/internal/scenario"
)

type ProgramService interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context, organizationID string) ([]*domain.Program, error)
	Update(ctx context.Context, p *domain.Program) error
	Delete(ctx context.Context, id string) error
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type MilestoneService interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id string) error

	// SetDependencies replaces the milestone's predecessor set after
	// validating every edge. Self-dependencies are rejected before any
	// write happens.
	SetDependencies(ctx context.Context, milestoneID string, predecessorIDs []string) error
	ListDependencies(ctx context.Context, milestoneID string) ([]domain.Dependency, error)

	// AssignResources replaces the milestone's resource set.
	AssignResources(ctx context.Context, milestoneID string, userIDs []string) error
	ListResources(ctx context.Context, milestoneID string) ([]string, error)

	// Move re-parents a milestone under a different goal.
	Move(ctx context.Context, milestoneID, targetGoalID string) (roadmap.MoveState, error)
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

// RiskSummary aggregates a program's risks for display.
type RiskSummary struct {
	Open          int
	Closed        int
	TotalExposure float64
	Highest       *domain.Risk
}

type RiskService interface {
	Create(ctx context.Context, r *domain.Risk) error
	GetByID(ctx context.Context, id string) (*domain.Risk, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Risk, error)
	Update(ctx context.Context, r *domain.Risk) error
	Close(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context, programID string) (*RiskSummary, error)
}

type ScenarioService interface {
	// Suggest runs the suggestion engine against a program's current
	// numbers. Engine and provider failures never surface here; only
	// repository errors do.
	Suggest(ctx context.Context, programID, query string) ([]scenario.Suggestion, error)

	Create(ctx context.Context, s *domain.Scenario) error
	GetByID(ctx context.Context, id string) (*domain.Scenario, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Scenario, error)
	Update(ctx context.Context, s *domain.Scenario) error
	Delete(ctx context.Context, id string) error
}

type InvoiceService interface {
	// Record writes the invoice and its paired cost row. The pair is
	// written sequentially, with a compensating invoice delete when the
	// cost write fails.
	Record(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
	Costs(ctx context.Context, programID string) ([]*domain.Cost, error)
}

type ChatService interface {
	// Send persists the user message, obtains a reply, and persists it.
	Send(ctx context.Context, programID *string, text string) (*domain.ChatMessage, error)
	History(ctx context.Context, programID string) ([]*domain.ChatMessage, error)
	Recent(ctx context.Context, limit int) ([]*domain.ChatMessage, error)
}

// AdminAction names a user-administration operation.
type AdminAction string

const (
	AdminApprove AdminAction = "approve"
	AdminReject  AdminAction = "reject"
	AdminDelete  AdminAction = "delete"
)

type AdminService interface {
	// Act applies an admin action on behalf of actor. Non-admin actors
	// are rejected.
	Act(ctx context.Context, actor *domain.User, action AdminAction, userID string) error
	Authenticate(ctx context.Context, apiToken string) (*domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) error
	ListUsers(ctx context.Context, organizationID string) ([]*domain.User, error)
}

// ImportResult reports what a successful program import created.
type ImportResult struct {
	Program         *domain.Program
	GoalCount       int
	MilestoneCount  int
	TaskCount       int
	DependencyCount int
}

type ImportService interface {
	// ImportProgram loads a program tree from a JSON file and writes
	// it in one transaction. A validation or write failure leaves the
	// store untouched.
	ImportProgram(ctx context.Context, path string) (*ImportResult, error)
}

type RoadmapService interface {
	// Build assembles the full tree for an organization.
	Build(ctx context.Context, organizationID string) (*roadmap.Tree, []roadmap.Orphan, error)
}
