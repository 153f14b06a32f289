package roadmap

import (
	"context"
	"fmt"

	"github.com/jmallek/compass/internal/domain"
	"github.com/jmallek/compass/internal/repository"
)

// MoveState is the outcome of a re-parent attempt. A move starts
// Pending, and ends Committed on successful persist or RolledBack when
// the persist failed and the in-memory change was reverted.
type MoveState int

const (
	MovePending MoveState = iota
	MoveCommitted
	MoveRolledBack
)

func (s MoveState) String() string {
	switch s {
	case MoveCommitted:
		return "committed"
	case MoveRolledBack:
		return "rolled_back"
	default:
		return "pending"
	}
}

// Mover re-parents milestones across goals with an explicit
// apply-then-persist protocol: the new goal is applied to the
// in-memory milestone first, then written through the repository; a
// failed write restores the previous goal so callers never hold a
// milestone that disagrees with the store.
type Mover struct {
	goals      repository.GoalRepo
	milestones repository.MilestoneRepo
}

func NewMover(goals repository.GoalRepo, milestones repository.MilestoneRepo) *Mover {
	return &Mover{goals: goals, milestones: milestones}
}

// Move re-parents m under targetGoalID. No-op moves and unknown target
// goals are rejected before anything is touched.
func (mv *Mover) Move(ctx context.Context, m *domain.Milestone, targetGoalID string) (MoveState, error) {
	if targetGoalID == "" {
		return MovePending, fmt.Errorf("target goal id is required")
	}
	if m.GoalID == targetGoalID {
		return MovePending, fmt.Errorf("milestone already belongs to goal %s", targetGoalID)
	}
	if _, err := mv.goals.GetByID(ctx, targetGoalID); err != nil {
		return MovePending, fmt.Errorf("resolving target goal: %w", err)
	}

	previous := m.GoalID
	m.GoalID = targetGoalID

	if err := mv.milestones.UpdateGoal(ctx, m.ID, targetGoalID); err != nil {
		m.GoalID = previous
		return MoveRolledBack, fmt.Errorf("persisting move: %w", err)
	}
	return MoveCommitted, nil
}
