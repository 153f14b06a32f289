package domain

import (
	"fmt"
	"time"
)

type Program struct {
	ID             string
	Name           string
	Description    string
	StartDate      time.Time
	EndDate        *time.Time
	Progress       int // 0-100
	OrganizationID string
	UserID         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks required fields and date ordering.
func (p *Program) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("program name is required")
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("program end date %s is before start date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	return nil
}

// DisplayID returns a short identifier for list output.
func (p *Program) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// ClampProgress bounds a progress percentage to [0, 100].
func ClampProgress(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ClampProbability bounds a probability to [0.0, 1.0].
func ClampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
