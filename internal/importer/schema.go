// Package importer loads a whole program tree from a JSON file: the
// program, its goals, milestones, tasks, and cross-milestone
// dependencies, linked by file-local refs instead of database IDs.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for program import.
type ImportSchema struct {
	Program      ProgramImport      `json:"program"`
	Goals        []GoalImport       `json:"goals"`
	Milestones   []MilestoneImport  `json:"milestones"`
	Tasks        []TaskImport       `json:"tasks,omitempty"`
	Dependencies []DependencyImport `json:"dependencies,omitempty"`
}

// ProgramImport defines the program-level fields in the import file.
type ProgramImport struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
}

// GoalImport defines a goal in the import file.
type GoalImport struct {
	Ref         string  `json:"ref"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Owner       string  `json:"owner,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// MilestoneImport defines a milestone in the import file.
type MilestoneImport struct {
	Ref         string  `json:"ref"`
	GoalRef     string  `json:"goal_ref"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Owner       string  `json:"owner,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// TaskImport defines a task in the import file.
type TaskImport struct {
	Ref          string  `json:"ref"`
	MilestoneRef string  `json:"milestone_ref"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Status       string  `json:"status,omitempty"`
	Assignee     string  `json:"assignee,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
}

// DependencyImport defines a dependency between two milestones.
type DependencyImport struct {
	PredecessorRef string `json:"predecessor_ref"`
	SuccessorRef   string `json:"successor_ref"`
}

// LoadImportSchema reads and parses a program import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
