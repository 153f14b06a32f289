package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
)

type goalService struct {
	goals    repository.GoalRepo
	programs repository.ProgramRepo
}

func NewGoalService(goals repository.GoalRepo, programs repository.ProgramRepo) GoalService {
	return &goalService{goals: goals, programs: programs}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Status == "" {
		g.Status = domain.StatusNotStarted
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	if err := g.Validate(); err != nil {
		return err
	}
	if _, err := s.programs.GetByID(ctx, g.ProgramID); err != nil {
		return err
	}
	return s.goals.Create(ctx, g)
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) ListByProgram(ctx context.Context, programID string) ([]*domain.Goal, error) {
	return s.goals.ListByProgram(ctx, programID)
}

func (s *goalService) Update(ctx context.Context, g *domain.Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	g.UpdatedAt = time.Now().UTC()
	return s.goals.Update(ctx, g)
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}
