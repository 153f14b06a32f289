package importer

import (
	"fmt"
	"time"

	"github.com/jmallek/compass/internal/domain"
)

// ValidateImportSchema checks the import schema before conversion.
// Returns every validation error found, not just the first.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProgram(&schema.Program)...)

	goalRefs := make(map[string]bool)
	errs = append(errs, validateGoals(schema.Goals, goalRefs)...)

	milestoneRefs := make(map[string]bool)
	errs = append(errs, validateMilestones(schema.Milestones, goalRefs, milestoneRefs)...)

	errs = append(errs, validateTasks(schema.Tasks, milestoneRefs)...)
	errs = append(errs, validateDependencies(schema.Dependencies, milestoneRefs)...)

	return errs
}

func validateProgram(p *ProgramImport) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("program.name is required"))
	}
	if p.StartDate == "" {
		errs = append(errs, fmt.Errorf("program.start_date is required"))
	} else if _, err := time.Parse("2006-01-02", p.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("program.start_date: invalid date format %q (expected YYYY-MM-DD)", p.StartDate))
	}
	if p.EndDate != nil {
		if _, err := time.Parse("2006-01-02", *p.EndDate); err != nil {
			errs = append(errs, fmt.Errorf("program.end_date: invalid date format %q (expected YYYY-MM-DD)", *p.EndDate))
		} else if p.StartDate != "" {
			start, startErr := time.Parse("2006-01-02", p.StartDate)
			end, endErr := time.Parse("2006-01-02", *p.EndDate)
			if startErr == nil && endErr == nil && end.Before(start) {
				errs = append(errs, fmt.Errorf("program.end_date %q must not be before start_date %q", *p.EndDate, p.StartDate))
			}
		}
	}

	return errs
}

func validateGoals(goals []GoalImport, goalRefs map[string]bool) []error {
	var errs []error

	for i, g := range goals {
		prefix := fmt.Sprintf("goals[%d]", i)

		if g.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if goalRefs[g.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, g.Ref))
		} else {
			goalRefs[g.Ref] = true
		}

		if g.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		errs = append(errs, validateOptionalDate(prefix+".start_date", g.StartDate)...)
		errs = append(errs, validateOptionalDate(prefix+".end_date", g.EndDate)...)
	}

	return errs
}

func validateMilestones(milestones []MilestoneImport, goalRefs, milestoneRefs map[string]bool) []error {
	var errs []error

	for i, m := range milestones {
		prefix := fmt.Sprintf("milestones[%d]", i)

		if m.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if milestoneRefs[m.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, m.Ref))
		} else {
			milestoneRefs[m.Ref] = true
		}

		if m.GoalRef == "" {
			errs = append(errs, fmt.Errorf("%s.goal_ref is required", prefix))
		} else if !goalRefs[m.GoalRef] {
			errs = append(errs, fmt.Errorf("%s.goal_ref: ref %q not found in goals", prefix, m.GoalRef))
		}

		if m.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if m.Status != "" && !domain.ValidStatuses[domain.Status(m.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, m.Status))
		}

		errs = append(errs, validateOptionalDate(prefix+".due_date", m.DueDate)...)
	}

	return errs
}

func validateTasks(tasks []TaskImport, milestoneRefs map[string]bool) []error {
	var errs []error

	taskRefs := make(map[string]bool)
	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if taskRefs[t.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, t.Ref))
		} else {
			taskRefs[t.Ref] = true
		}

		if t.MilestoneRef == "" {
			errs = append(errs, fmt.Errorf("%s.milestone_ref is required", prefix))
		} else if !milestoneRefs[t.MilestoneRef] {
			errs = append(errs, fmt.Errorf("%s.milestone_ref: ref %q not found in milestones", prefix, t.MilestoneRef))
		}

		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.Status != "" && !domain.ValidStatuses[domain.Status(t.Status)] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}

		errs = append(errs, validateOptionalDate(prefix+".due_date", t.DueDate)...)
	}

	return errs
}

func validateDependencies(deps []DependencyImport, milestoneRefs map[string]bool) []error {
	var errs []error

	for i, d := range deps {
		prefix := fmt.Sprintf("dependencies[%d]", i)

		if d.PredecessorRef == "" {
			errs = append(errs, fmt.Errorf("%s.predecessor_ref is required", prefix))
		} else if !milestoneRefs[d.PredecessorRef] {
			errs = append(errs, fmt.Errorf("%s.predecessor_ref: ref %q not found in milestones", prefix, d.PredecessorRef))
		}

		if d.SuccessorRef == "" {
			errs = append(errs, fmt.Errorf("%s.successor_ref is required", prefix))
		} else if !milestoneRefs[d.SuccessorRef] {
			errs = append(errs, fmt.Errorf("%s.successor_ref: ref %q not found in milestones", prefix, d.SuccessorRef))
		}

		if d.PredecessorRef != "" && d.SuccessorRef != "" && d.PredecessorRef == d.SuccessorRef {
			errs = append(errs, fmt.Errorf("%s: self-dependency (predecessor_ref == successor_ref == %q)", prefix, d.PredecessorRef))
		}
	}

	if len(deps) > 1 {
		errs = append(errs, detectCycles(deps)...)
	}

	return errs
}

// detectCycles runs a DFS over the dependency edges and reports the
// first cycle found per connected component.
func detectCycles(deps []DependencyImport) []error {
	graph := make(map[string][]string)
	nodes := make(map[string]bool)
	for _, d := range deps {
		if d.PredecessorRef != "" && d.SuccessorRef != "" && d.PredecessorRef != d.SuccessorRef {
			graph[d.PredecessorRef] = append(graph[d.PredecessorRef], d.SuccessorRef)
			nodes[d.PredecessorRef] = true
			nodes[d.SuccessorRef] = true
		}
	}

	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

	color := make(map[string]int)
	var errs []error

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		for _, neighbor := range graph[node] {
			if color[neighbor] == gray {
				errs = append(errs, fmt.Errorf("circular dependency detected involving %q and %q", node, neighbor))
				return true
			}
			if color[neighbor] == white {
				if visit(neighbor) {
					return true
				}
			}
		}
		color[node] = black
		return false
	}

	for node := range nodes {
		if color[node] == white {
			visit(node)
		}
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}
