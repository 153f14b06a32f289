package domain

import (
	"fmt"
	"time"
)

// ImpactDelta is a signed change triple: timeline in months, budget and
// resources in percent.
type ImpactDelta struct {
	TimelineMonths float64
	BudgetPct      float64
	ResourcesPct   float64
}

// Scale multiplies each component of the delta by f.
func (d ImpactDelta) Scale(f float64) ImpactDelta {
	return ImpactDelta{
		TimelineMonths: d.TimelineMonths * f,
		BudgetPct:      d.BudgetPct * f,
		ResourcesPct:   d.ResourcesPct * f,
	}
}

// Scenario is a what-if record attached to a program: the parameter
// changes the user proposes and the outcome the engine predicts.
type Scenario struct {
	ID          string
	ProgramID   string
	Title       string
	Description string
	Changes     ImpactDelta
	Predicted   ImpactDelta
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *Scenario) Validate() error {
	if s.ProgramID == "" {
		return fmt.Errorf("scenario must belong to a program")
	}
	if s.Title == "" {
		return fmt.Errorf("scenario title is required")
	}
	return nil
}
