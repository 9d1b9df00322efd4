package routing

// Snapshot exposes the state of a search after one step.
type Snapshot[ID comparable] struct {
	Step    int     `json:"step"`
	Current ID      `json:"current"`
	Open    []ID    `json:"open"`
	Closed  []ID    `json:"closed"`
	Done    bool    `json:"done"`
	Found   bool    `json:"found"`
	Path    []ID    `json:"path,omitempty"`
	Cost    float64 `json:"cost"`
}

// Stepper advances a search one node expansion at a time. It is not safe for
// concurrent use.
type Stepper[ID comparable] struct {
	s      *search[ID]
	steps  int
	closed []ID
	err    error
}

// NewStepper prepares a search from start to goal without expanding anything.
func NewStepper[ID comparable](pf *PathFinder[ID], start, goal ID) (*Stepper[ID], error) {
	s, err := pf.newSearch(start, goal)
	if err != nil {
		return nil, err
	}
	return &Stepper[ID]{s: s}, nil
}

// Step expands the next node. After the search ends every call returns the
// terminal snapshot; after an error every call returns that error.
func (st *Stepper[ID]) Step() (Snapshot[ID], error) {
	if st.err != nil {
		return st.snapshot(), st.err
	}
	if st.s.state != Searching {
		return st.snapshot(), nil
	}

	st.steps++
	before := st.s.expanded
	if err := st.s.step(); err != nil {
		st.err = err
		return st.snapshot(), err
	}
	if st.s.expanded > before {
		st.closed = append(st.closed, st.s.current)
	}
	return st.snapshot(), nil
}

// State reports whether the search is still running.
func (st *Stepper[ID]) State() State { return st.s.state }

func (st *Stepper[ID]) snapshot() Snapshot[ID] {
	snap := Snapshot[ID]{
		Step:    st.steps,
		Current: st.s.current,
		Open:    st.openNodes(),
		Closed:  append([]ID(nil), st.closed...),
		Done:    st.s.state != Searching || st.err != nil,
		Found:   st.s.state == Found,
	}
	if snap.Found {
		snap.Path = st.s.path()
		snap.Cost = st.s.gScore[st.s.goal]
	}
	return snap
}

// openNodes lists nodes that still have a live frontier entry.
func (st *Stepper[ID]) openNodes() []ID {
	seen := make(map[ID]bool, st.s.open.Len())
	nodes := make([]ID, 0, st.s.open.Len())
	for _, item := range st.s.open.items {
		if seen[item.node] || item.g > st.s.gScore[item.node] {
			continue
		}
		seen[item.node] = true
		nodes = append(nodes, item.node)
	}
	return nodes
}
