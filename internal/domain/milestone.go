package domain

import (
	"fmt"
	"time"
)

type Milestone struct {
	ID          string
	GoalID      string
	Title       string
	Description string
	DueDate     *time.Time
	Status      Status
	Progress    int // 0-100
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m *Milestone) Validate() error {
	if m.GoalID == "" {
		return fmt.Errorf("milestone must belong to a goal")
	}
	if m.Title == "" {
		return fmt.Errorf("milestone title is required")
	}
	if m.Status != "" && !ValidStatuses[m.Status] {
		return fmt.Errorf("invalid milestone status %q", m.Status)
	}
	return nil
}

// ValidateDependencies rejects a dependency set that references the
// milestone itself. Called before any write is attempted.
func (m *Milestone) ValidateDependencies(predecessorIDs []string) error {
	for _, id := range predecessorIDs {
		if id == m.ID {
			return fmt.Errorf("milestone %s cannot depend on itself", m.ID)
		}
	}
	return nil
}

// Dependency is a directed edge between two milestones: the predecessor
// must be considered before the successor.
type Dependency struct {
	PredecessorID string
	SuccessorID   string
}

// ResourceAssignment links a user to a milestone as an allocated resource.
type ResourceAssignment struct {
	MilestoneID string
	UserID      string
}
