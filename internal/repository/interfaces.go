package repository

import (
	"context"

	"github.com/jmallek/compass/internal/domain"
)

type ProgramRepo interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	// List returns programs for one organization, in insertion order.
	// An empty organization ID returns all programs.
	List(ctx context.Context, organizationID string) ([]*domain.Program, error)
	Update(ctx context.Context, p *domain.Program) error
	Delete(ctx context.Context, id string) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Goal, error)
	// ListByOrganization returns every goal under the organization's
	// programs, in insertion order. Used for hierarchy assembly.
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Milestone, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	// UpdateGoal re-parents a milestone under a different goal.
	UpdateGoal(ctx context.Context, milestoneID, newGoalID string) error
	Delete(ctx context.Context, id string) error

	ListResources(ctx context.Context, milestoneID string) ([]string, error)
	ReplaceResources(ctx context.Context, milestoneID string, userIDs []string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d *domain.Dependency) error
	Delete(ctx context.Context, predecessorID, successorID string) error
	ListPredecessors(ctx context.Context, milestoneID string) ([]domain.Dependency, error)
	ListSuccessors(ctx context.Context, milestoneID string) ([]domain.Dependency, error)
	// ReplaceForSuccessor swaps the full predecessor set of a milestone.
	ReplaceForSuccessor(ctx context.Context, successorID string, predecessorIDs []string) error
}

type RiskRepo interface {
	Create(ctx context.Context, r *domain.Risk) error
	GetByID(ctx context.Context, id string) (*domain.Risk, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Risk, error)
	Update(ctx context.Context, r *domain.Risk) error
	Delete(ctx context.Context, id string) error
}

type ScenarioRepo interface {
	Create(ctx context.Context, s *domain.Scenario) error
	GetByID(ctx context.Context, id string) (*domain.Scenario, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Scenario, error)
	Update(ctx context.Context, s *domain.Scenario) error
	Delete(ctx context.Context, id string) error
}

type InvoiceRepo interface {
	Create(ctx context.Context, i *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type CostRepo interface {
	Create(ctx context.Context, c *domain.Cost) error
	ListByProgram(ctx context.Context, programID string) ([]*domain.Cost, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.Cost, error)
	Delete(ctx context.Context, id string) error
}

type ChatRepo interface {
	Create(ctx context.Context, m *domain.ChatMessage) error
	ListByProgram(ctx context.Context, programID string) ([]*domain.ChatMessage, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ChatMessage, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByAPIToken(ctx context.Context, token string) (*domain.User, error)
	List(ctx context.Context, organizationID string) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}
