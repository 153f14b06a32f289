package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
)

type riskService struct {
	risks repository.RiskRepo
}

func NewRiskService(risks repository.RiskRepo) RiskService {
	return &riskService{risks: risks}
}

func (s *riskService) Create(ctx context.Context, r *domain.Risk) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Status == "" {
		r.Status = domain.RiskOpen
	}
	r.Probability = domain.ClampProbability(r.Probability)
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := r.Validate(); err != nil {
		return err
	}
	return s.risks.Create(ctx, r)
}

func (s *riskService) GetByID(ctx context.Context, id string) (*domain.Risk, error) {
	return s.risks.GetByID(ctx, id)
}

func (s *riskService) ListByProgram(ctx context.Context, programID string) ([]*domain.Risk, error) {
	return s.risks.ListByProgram(ctx, programID)
}

func (s *riskService) Update(ctx context.Context, r *domain.Risk) error {
	r.Probability = domain.ClampProbability(r.Probability)
	if err := r.Validate(); err != nil {
		return err
	}
	r.UpdatedAt = time.Now().UTC()
	return s.risks.Update(ctx, r)
}

func (s *riskService) Close(ctx context.Context, id string) error {
	r, err := s.risks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	r.Status = domain.RiskClosed
	r.UpdatedAt = time.Now().UTC()
	return s.risks.Update(ctx, r)
}

func (s *riskService) Delete(ctx context.Context, id string) error {
	return s.risks.Delete(ctx, id)
}

// Summarize totals exposure over open risks and picks the single
// highest-exposure open risk.
func (s *riskService) Summarize(ctx context.Context, programID string) (*RiskSummary, error) {
	risks, err := s.risks.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	summary := &RiskSummary{}
	for _, r := range risks {
		if r.Status == domain.RiskClosed {
			summary.Closed++
			continue
		}
		summary.Open++
		summary.TotalExposure += r.Exposure()
		if summary.Highest == nil || r.Exposure() > summary.Highest.Exposure() {
			summary.Highest = r
		}
	}
	return summary, nil
}
