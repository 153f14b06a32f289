package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
)

type taskService struct {
	tasks      repository.TaskRepo
	milestones repository.MilestoneRepo
}

func NewTaskService(tasks repository.TaskRepo, milestones repository.MilestoneRepo) TaskService {
	return &taskService{tasks: tasks, milestones: milestones}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.StatusNotStarted
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.milestones.GetByID(ctx, t.MilestoneID); err != nil {
		return err
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByMilestone(ctx context.Context, milestoneID string) ([]*domain.Task, error) {
	return s.tasks.ListByMilestone(ctx, milestoneID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
