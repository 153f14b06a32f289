package domain

import (
	"fmt"
	"time"
)

type Goal struct {
	ID          string
	ProgramID   string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Status      Status
	Progress    int // 0-100
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (g *Goal) Validate() error {
	if g.ProgramID == "" {
		return fmt.Errorf("goal must belong to a program")
	}
	if g.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if g.Status != "" && !ValidStatuses[g.Status] {
		return fmt.Errorf("invalid goal status %q", g.Status)
	}
	return nil
}
