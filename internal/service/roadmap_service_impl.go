package service

import (
	"context"

	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/roadmap"
)

type roadmapService struct {
	programs   repository.ProgramRepo
	goals      repository.GoalRepo
	milestones repository.MilestoneRepo
}

func NewRoadmapService(
	programs repository.ProgramRepo,
	goals repository.GoalRepo,
	milestones repository.MilestoneRepo,
) RoadmapService {
	return &roadmapService{programs: programs, goals: goals, milestones: milestones}
}

func (s *roadmapService) Build(ctx context.Context, organizationID string) (*roadmap.Tree, []roadmap.Orphan, error) {
	programs, err := s.programs.List(ctx, organizationID)
	if err != nil {
		return nil, nil, err
	}
	goals, err := s.goals.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, nil, err
	}
	milestones, err := s.milestones.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, nil, err
	}

	tree, orphans := roadmap.BuildHierarchy(programs, goals, milestones)
	return tree, orphans, nil
}
