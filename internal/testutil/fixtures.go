package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/domain"
)

// Program options
type ProgramOption func(*domain.Program)

func WithEndDate(d time.Time) ProgramOption {
	return func(p *domain.Program) {
		p.EndDate = &d
	}
}

func WithOrganization(orgID string) ProgramOption {
	return func(p *domain.Program) {
		p.OrganizationID = orgID
	}
}

func WithProgramProgress(pct int) ProgramOption {
	return func(p *domain.Program) {
		p.Progress = pct
	}
}

func NewTestProgram(name string, opts ...ProgramOption) *domain.Program {
	now := time.Now().UTC()
	p := &domain.Program{
		ID:             uuid.New().String(),
		Name:           name,
		StartDate:      now.AddDate(0, -1, 0),
		OrganizationID: "org-test",
		UserID:         "user-test",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalStatus(s domain.Status) GoalOption {
	return func(g *domain.Goal) {
		g.Status = s
	}
}

func NewTestGoal(programID, name string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:        uuid.New().String(),
		ProgramID: programID,
		Name:      name,
		StartDate: now.AddDate(0, -1, 0),
		Status:    domain.StatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Milestone options
type MilestoneOption func(*domain.Milestone)

func WithDueDate(d time.Time) MilestoneOption {
	return func(m *domain.Milestone) {
		m.DueDate = &d
	}
}

func WithMilestoneStatus(s domain.Status) MilestoneOption {
	return func(m *domain.Milestone) {
		m.Status = s
	}
}

func NewTestMilestone(goalID, title string, opts ...MilestoneOption) *domain.Milestone {
	now := time.Now().UTC()
	m := &domain.Milestone{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Title:     title,
		Status:    domain.StatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func NewTestTask(milestoneID, title string) *domain.Task {
	now := time.Now().UTC()
	return &domain.Task{
		ID:          uuid.New().String(),
		MilestoneID: milestoneID,
		Title:       title,
		Status:      domain.StatusNotStarted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Risk options
type RiskOption func(*domain.Risk)

func WithProbability(p float64) RiskOption {
	return func(r *domain.Risk) {
		r.Probability = p
	}
}

func WithImpact(i float64) RiskOption {
	return func(r *domain.Risk) {
		r.Impact = i
	}
}

func NewTestRisk(programID, description string, opts ...RiskOption) *domain.Risk {
	now := time.Now().UTC()
	r := &domain.Risk{
		ID:          uuid.New().String(),
		ProgramID:   programID,
		Description: description,
		Probability: 0.3,
		Impact:      5,
		Status:      domain.RiskOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewTestUser(email string, role domain.UserRole) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:             uuid.New().String(),
		Email:          email,
		Name:           "Test User",
		OrganizationID: "org-test",
		Role:           role,
		Status:         domain.UserApproved,
		APIToken:       uuid.New().String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func NewTestInvoice(programID string, kind domain.InvoiceKind, amount float64) *domain.Invoice {
	now := time.Now().UTC()
	return &domain.Invoice{
		ID:         uuid.New().String(),
		ProgramID:  programID,
		Kind:       kind,
		Vendor:     "Acme Supply",
		Amount:     amount,
		IssuedDate: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
