package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
	"github.com/jmallek/compass/internal/scenario"
)

type scenarioService struct {
	scenarios  repository.ScenarioRepo
	programs   repository.ProgramRepo
	risks      repository.RiskRepo
	goals      repository.GoalRepo
	milestones repository.MilestoneRepo
	engine     *scenario.Engine
}

func NewScenarioService(
	scenarios repository.ScenarioRepo,
	programs repository.ProgramRepo,
	risks repository.RiskRepo,
	goals repository.GoalRepo,
	milestones repository.MilestoneRepo,
	engine *scenario.Engine,
) ScenarioService {
	return &scenarioService{
		scenarios:  scenarios,
		programs:   programs,
		risks:      risks,
		goals:      goals,
		milestones: milestones,
		engine:     engine,
	}
}

// Suggest assembles the program's numeric context from the store and
// hands it to the engine. The engine owns provider fallback, so the
// only errors here are repository reads.
func (s *scenarioService) Suggest(ctx context.Context, programID, query string) ([]scenario.Suggestion, error) {
	prog, err := s.programs.GetByID(ctx, programID)
	if err != nil {
		return nil, err
	}
	risks, err := s.risks.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	pctx := scenario.Context{
		TimelineMonths: programTimelineMonths(prog),
		Risks:          openRisks(risks),
	}
	pctx.Resources, err = s.assignedResources(ctx, programID)
	if err != nil {
		return nil, err
	}

	return s.engine.GenerateSuggestions(ctx, query, pctx), nil
}

func (s *scenarioService) assignedResources(ctx context.Context, programID string) ([]string, error) {
	goals, err := s.goals.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var resources []string
	for _, g := range goals {
		milestones, err := s.milestones.ListByGoal(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		for _, m := range milestones {
			userIDs, err := s.milestones.ListResources(ctx, m.ID)
			if err != nil {
				return nil, err
			}
			for _, id := range userIDs {
				if !seen[id] {
					seen[id] = true
					resources = append(resources, id)
				}
			}
		}
	}
	return resources, nil
}

func (s *scenarioService) Create(ctx context.Context, sc *domain.Scenario) error {
	if sc.ID == "" {
		sc.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sc.CreatedAt = now
	sc.UpdatedAt = now
	if err := sc.Validate(); err != nil {
		return err
	}
	return s.scenarios.Create(ctx, sc)
}

func (s *scenarioService) GetByID(ctx context.Context, id string) (*domain.Scenario, error) {
	return s.scenarios.GetByID(ctx, id)
}

func (s *scenarioService) ListByProgram(ctx context.Context, programID string) ([]*domain.Scenario, error) {
	return s.scenarios.ListByProgram(ctx, programID)
}

func (s *scenarioService) Update(ctx context.Context, sc *domain.Scenario) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	sc.UpdatedAt = time.Now().UTC()
	return s.scenarios.Update(ctx, sc)
}

func (s *scenarioService) Delete(ctx context.Context, id string) error {
	return s.scenarios.Delete(ctx, id)
}

func programTimelineMonths(p *domain.Program) float64 {
	if p.EndDate == nil {
		return 0
	}
	return p.EndDate.Sub(p.StartDate).Hours() / (24 * 30)
}

func openRisks(risks []*domain.Risk) []*domain.Risk {
	var open []*domain.Risk
	for _, r := range risks {
		if r.Status == domain.RiskOpen {
			open = append(open, r)
		}
	}
	return open
}
