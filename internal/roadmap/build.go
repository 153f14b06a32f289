// Package roadmap assembles the Program > Goal > Milestone hierarchy
// for display and handles milestone re-parenting.
package roadmap

import (
	"github.com/jmallek/compass/internal/domain"
)

// Tree is the assembled roadmap. Children appear in the same order the
// inputs were given; nothing is sorted here.
type Tree struct {
	Programs []*ProgramNode
}

type ProgramNode struct {
	Program *domain.Program
	Goals   []*GoalNode
}

type GoalNode struct {
	Goal       *domain.Goal
	Milestones []*domain.Milestone
}

type OrphanKind string

const (
	OrphanGoal      OrphanKind = "goal"
	OrphanMilestone OrphanKind = "milestone"
)

// Orphan records a node whose parent was absent from the input set.
// Orphans never appear in the tree; callers decide how to surface them.
type Orphan struct {
	Kind            OrphanKind
	ID              string
	MissingParentID string
}

// BuildHierarchy groups goals under their programs and milestones under
// their goals. A goal or milestone whose parent is not in the input is
// returned as an Orphan rather than silently dropped.
func BuildHierarchy(programs []*domain.Program, goals []*domain.Goal, milestones []*domain.Milestone) (*Tree, []Orphan) {
	tree := &Tree{Programs: make([]*ProgramNode, 0, len(programs))}
	programNodes := make(map[string]*ProgramNode, len(programs))
	for _, p := range programs {
		node := &ProgramNode{Program: p}
		programNodes[p.ID] = node
		tree.Programs = append(tree.Programs, node)
	}

	var orphans []Orphan

	goalNodes := make(map[string]*GoalNode, len(goals))
	for _, g := range goals {
		parent, ok := programNodes[g.ProgramID]
		if !ok {
			orphans = append(orphans, Orphan{Kind: OrphanGoal, ID: g.ID, MissingParentID: g.ProgramID})
			continue
		}
		node := &GoalNode{Goal: g}
		goalNodes[g.ID] = node
		parent.Goals = append(parent.Goals, node)
	}

	for _, m := range milestones {
		parent, ok := goalNodes[m.GoalID]
		if !ok {
			orphans = append(orphans, Orphan{Kind: OrphanMilestone, ID: m.ID, MissingParentID: m.GoalID})
			continue
		}
		parent.Milestones = append(parent.Milestones, m)
	}

	return tree, orphans
}
