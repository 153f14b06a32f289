package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmallek/compass/internal/domain"
)

// ConvertResult holds the entities built from an import schema, ready
// to be written in one transaction.
type ConvertResult struct {
	Program      *domain.Program
	Goals        []*domain.Goal
	Milestones   []*domain.Milestone
	Tasks        []*domain.Task
	Dependencies []*domain.Dependency
}

// ConvertImportSchema turns a validated schema into domain entities.
// File-local refs become fresh UUIDs; parent refs resolve through the
// mapping. Call ValidateImportSchema first — unknown refs are dropped
// here, not reported.
func ConvertImportSchema(schema *ImportSchema, organizationID string) *ConvertResult {
	now := time.Now().UTC()

	startDate, _ := time.Parse("2006-01-02", schema.Program.StartDate)
	program := &domain.Program{
		ID:             uuid.New().String(),
		Name:           schema.Program.Name,
		Description:    schema.Program.Description,
		StartDate:      startDate,
		OrganizationID: organizationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if schema.Program.EndDate != nil {
		if end, err := time.Parse("2006-01-02", *schema.Program.EndDate); err == nil {
			program.EndDate = &end
		}
	}

	result := &ConvertResult{Program: program}

	goalIDs := make(map[string]string)
	for _, gi := range schema.Goals {
		g := &domain.Goal{
			ID:          uuid.New().String(),
			ProgramID:   program.ID,
			Name:        gi.Name,
			Description: gi.Description,
			Owner:       gi.Owner,
			StartDate:   startDate,
			Status:      domain.StatusNotStarted,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if gi.StartDate != nil {
			if d, err := time.Parse("2006-01-02", *gi.StartDate); err == nil {
				g.StartDate = d
			}
		}
		if gi.EndDate != nil {
			if d, err := time.Parse("2006-01-02", *gi.EndDate); err == nil {
				g.EndDate = &d
			}
		}
		goalIDs[gi.Ref] = g.ID
		result.Goals = append(result.Goals, g)
	}

	milestoneIDs := make(map[string]string)
	for _, mi := range schema.Milestones {
		goalID, ok := goalIDs[mi.GoalRef]
		if !ok {
			continue
		}
		m := &domain.Milestone{
			ID:          uuid.New().String(),
			GoalID:      goalID,
			Title:       mi.Title,
			Description: mi.Description,
			Owner:       mi.Owner,
			Status:      domain.StatusNotStarted,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if mi.Status != "" {
			m.Status = domain.Status(mi.Status)
		}
		if mi.DueDate != nil {
			if d, err := time.Parse("2006-01-02", *mi.DueDate); err == nil {
				m.DueDate = &d
			}
		}
		milestoneIDs[mi.Ref] = m.ID
		result.Milestones = append(result.Milestones, m)
	}

	for _, ti := range schema.Tasks {
		milestoneID, ok := milestoneIDs[ti.MilestoneRef]
		if !ok {
			continue
		}
		t := &domain.Task{
			ID:          uuid.New().String(),
			MilestoneID: milestoneID,
			Title:       ti.Title,
			Description: ti.Description,
			Assignee:    ti.Assignee,
			Status:      domain.StatusNotStarted,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if ti.Status != "" {
			t.Status = domain.Status(ti.Status)
		}
		if ti.DueDate != nil {
			if d, err := time.Parse("2006-01-02", *ti.DueDate); err == nil {
				t.DueDate = &d
			}
		}
		result.Tasks = append(result.Tasks, t)
	}

	for _, di := range schema.Dependencies {
		pred, okPred := milestoneIDs[di.PredecessorRef]
		succ, okSucc := milestoneIDs[di.SuccessorRef]
		if !okPred || !okSucc || pred == succ {
			continue
		}
		result.Dependencies = append(result.Dependencies, &domain.Dependency{
			PredecessorID: pred,
			SuccessorID:   succ,
		})
	}

	return result
}
