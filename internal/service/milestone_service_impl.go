package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/db"
	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/roadmap"
)

type milestoneService struct {
	milestones repository.MilestoneRepo
	goals      repository.GoalRepo
	deps       repository.DependencyRepo
	uow        db.UnitOfWork
}

func NewMilestoneService(
	milestones repository.MilestoneRepo,
	goals repository.GoalRepo,
	deps repository.DependencyRepo,
	uow db.UnitOfWork,
) MilestoneService {
	return &milestoneService{milestones: milestones, goals: goals, deps: deps, uow: uow}
}

func (s *milestoneService) Create(ctx context.Context, m *domain.Milestone) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Status == "" {
		m.Status = domain.StatusNotStarted
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := m.Validate(); err != nil {
		return err
	}
	if _, err := s.goals.GetByID(ctx, m.GoalID); err != nil {
		return err
	}
	return s.milestones.Create(ctx, m)
}

func (s *milestoneService) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	return s.milestones.GetByID(ctx, id)
}

func (s *milestoneService) ListByGoal(ctx context.Context, goalID string) ([]*domain.Milestone, error) {
	return s.milestones.ListByGoal(ctx, goalID)
}

func (s *milestoneService) Update(ctx context.Context, m *domain.Milestone) error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.UpdatedAt = time.Now().UTC()
	return s.milestones.Update(ctx, m)
}

func (s *milestoneService) Delete(ctx context.Context, id string) error {
	return s.milestones.Delete(ctx, id)
}

// SetDependencies validates every edge before touching the store: the
// milestone must exist, no predecessor may equal the milestone itself,
// and every predecessor must exist. The swap runs in one transaction.
func (s *milestoneService) SetDependencies(ctx context.Context, milestoneID string, predecessorIDs []string) error {
	m, err := s.milestones.GetByID(ctx, milestoneID)
	if err != nil {
		return err
	}
	if err := m.ValidateDependencies(predecessorIDs); err != nil {
		return err
	}
	for _, predID := range predecessorIDs {
		if _, err := s.milestones.GetByID(ctx, predID); err != nil {
			return fmt.Errorf("predecessor %s: %w", predID, err)
		}
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteDependencyRepo(tx).ReplaceForSuccessor(ctx, milestoneID, predecessorIDs)
	})
}

func (s *milestoneService) ListDependencies(ctx context.Context, milestoneID string) ([]domain.Dependency, error) {
	return s.deps.ListPredecessors(ctx, milestoneID)
}

func (s *milestoneService) AssignResources(ctx context.Context, milestoneID string, userIDs []string) error {
	if _, err := s.milestones.GetByID(ctx, milestoneID); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteMilestoneRepo(tx).ReplaceResources(ctx, milestoneID, userIDs)
	})
}

func (s *milestoneService) ListResources(ctx context.Context, milestoneID string) ([]string, error) {
	return s.milestones.ListResources(ctx, milestoneID)
}

func (s *milestoneService) Move(ctx context.Context, milestoneID, targetGoalID string) (roadmap.MoveState, error) {
	m, err := s.milestones.GetByID(ctx, milestoneID)
	if err != nil {
		return roadmap.MovePending, err
	}
	return roadmap.NewMover(s.goals, s.milestones).Move(ctx, m, targetGoalID)
}
