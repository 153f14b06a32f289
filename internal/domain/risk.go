package domain

import (
	"fmt"
	"time"
)

type Risk struct {
	ID          string
	ProgramID   string
	MilestoneID *string // optional association
	Description string
	Probability float64 // 0.0-1.0
	Impact      float64 // numeric scale, typically 1-10
	Mitigation  string
	UpdateLog   string
	UpdateDate  *time.Time
	Status      RiskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *Risk) Validate() error {
	if r.ProgramID == "" {
		return fmt.Errorf("risk must belong to a program")
	}
	if r.Description == "" {
		return fmt.Errorf("risk description is required")
	}
	if r.Probability < 0 || r.Probability > 1 {
		return fmt.Errorf("risk probability %.2f out of range [0,1]", r.Probability)
	}
	if r.Status != "" && r.Status != RiskOpen && r.Status != RiskClosed {
		return fmt.Errorf("invalid risk status %q", r.Status)
	}
	return nil
}

// Exposure is the probability-weighted impact of the risk.
func (r *Risk) Exposure() float64 {
	return r.Probability * r.Impact
}
