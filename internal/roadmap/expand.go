package roadmap

// NodeKind distinguishes the two collapsible levels of the tree.
type NodeKind int

const (
	NodeProgram NodeKind = iota
	NodeGoal
)

// ExpandState tracks which tree nodes are expanded. It is view state
// only and is never persisted.
type ExpandState struct {
	programs map[string]bool
	goals    map[string]bool
}

func NewExpandState() *ExpandState {
	return &ExpandState{
		programs: make(map[string]bool),
		goals:    make(map[string]bool),
	}
}

// Toggle flips the expanded flag for a node. Toggling twice restores
// the prior state.
func (s *ExpandState) Toggle(kind NodeKind, id string) {
	set := s.set(kind)
	if set[id] {
		delete(set, id)
	} else {
		set[id] = true
	}
}

func (s *ExpandState) IsExpanded(kind NodeKind, id string) bool {
	return s.set(kind)[id]
}

// ExpandAll marks every program and goal in the tree expanded.
func (s *ExpandState) ExpandAll(tree *Tree) {
	for _, p := range tree.Programs {
		s.programs[p.Program.ID] = true
		for _, g := range p.Goals {
			s.goals[g.Goal.ID] = true
		}
	}
}

func (s *ExpandState) set(kind NodeKind) map[string]bool {
	if kind == NodeProgram {
		return s.programs
	}
	return s.goals
}
