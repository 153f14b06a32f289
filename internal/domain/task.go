package domain

import (
	"fmt"
	"time"
)

type Task struct {
	ID          string
	MilestoneID string
	Title       string
	Description string
	Status      Status
	DueDate     *time.Time
	Assignee    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Task) Validate() error {
	if t.MilestoneID == "" {
		return fmt.Errorf("task must belong to a milestone")
	}
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.Status != "" && !ValidStatuses[t.Status] {
		return fmt.Errorf("invalid task status %q", t.Status)
	}
	return nil
}
