package routing

import (
	"context"
	"math"
	"slices"
)

// contextCheckInterval is how many expansions run between context checks.
const contextCheckInterval = 256

// Route is a successful search result.
type Route[ID comparable] struct {
	Path     []ID    `json:"path"` // start first, goal last
	Cost     float64 `json:"cost"`
	Expanded int     `json:"expanded"`
}

// State is the phase of a search.
type State int

const (
	Searching State = iota
	Found
	Exhausted
)

func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// PathFinder runs A* searches over a Graph.
type PathFinder[ID comparable] struct {
	graph         Graph[ID]
	heuristic     Heuristic
	weight        float64
	maxExpansions int
}

// NewPathFinder creates a PathFinder reading graph.
func NewPathFinder[ID comparable](graph Graph[ID], options ...Option) (*PathFinder[ID], error) {
	opts := defaultOptions()
	for _, option := range options {
		option(&opts)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	heuristic := opts.Heuristic
	if heuristic == nil {
		heuristic = TravelTime(opts.AverageSpeed)
	}
	return &PathFinder[ID]{
		graph:         graph,
		heuristic:     heuristic,
		weight:        opts.HeuristicWeight,
		maxExpansions: opts.MaxExpansions,
	}, nil
}

// Search finds the cheapest path from start to goal. found is false when goal
// is unreachable; err is reserved for unknown nodes, invalid edge costs and
// the expansion limit.
func (pf *PathFinder[ID]) Search(start, goal ID) (route Route[ID], found bool, err error) {
	return pf.SearchContext(context.Background(), start, goal)
}

// SearchContext is Search with cancellation checked between expansions.
func (pf *PathFinder[ID]) SearchContext(ctx context.Context, start, goal ID) (Route[ID], bool, error) {
	s, err := pf.newSearch(start, goal)
	if err != nil {
		return Route[ID]{}, false, err
	}

	for s.state == Searching {
		if s.expanded%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Route[ID]{}, false, err
			}
		}
		if err := s.step(); err != nil {
			return Route[ID]{}, false, err
		}
	}

	if s.state == Exhausted {
		return Route[ID]{Expanded: s.expanded}, false, nil
	}
	return Route[ID]{
		Path:     s.path(),
		Cost:     s.gScore[goal],
		Expanded: s.expanded,
	}, true, nil
}

func (pf *PathFinder[ID]) estimate(from, to Coordinate) float64 {
	return pf.weight * pf.heuristic(from, to)
}

// search holds the state of one invocation. Nothing in it outlives the call.
type search[ID comparable] struct {
	pf        *PathFinder[ID]
	start     ID
	goal      ID
	goalCoord Coordinate

	open     frontier[ID]
	gScore   map[ID]float64
	cameFrom map[ID]ID

	state    State
	current  ID
	expanded int
}

func (pf *PathFinder[ID]) newSearch(start, goal ID) (*search[ID], error) {
	startCoord, ok := pf.graph.Coordinate(start)
	if !ok {
		return nil, &UnknownNodeError[ID]{ID: start, Role: "start"}
	}
	goalCoord, ok := pf.graph.Coordinate(goal)
	if !ok {
		return nil, &UnknownNodeError[ID]{ID: goal, Role: "goal"}
	}

	s := &search[ID]{
		pf:        pf,
		start:     start,
		goal:      goal,
		goalCoord: goalCoord,
		gScore:    map[ID]float64{start: 0},
		cameFrom:  make(map[ID]ID),
	}
	s.open.push(start, 0, pf.estimate(startCoord, goalCoord))
	return s, nil
}

// step pops frontier entries until it either expands one node or reaches a
// terminal state.
func (s *search[ID]) step() error {
	for s.open.Len() > 0 {
		item := s.open.pop()
		if item.g > s.gScore[item.node] {
			// superseded by a cheaper entry
			continue
		}
		s.current = item.node

		if item.node == s.goal {
			s.state = Found
			return nil
		}

		if s.pf.maxExpansions > 0 && s.expanded >= s.pf.maxExpansions {
			return ErrExpansionLimit
		}
		s.expanded++

		for _, edge := range s.pf.graph.Neighbors(item.node) {
			if edge.Cost < 0 || math.IsNaN(edge.Cost) || math.IsInf(edge.Cost, 0) {
				return &EdgeCostError[ID]{From: item.node, To: edge.To, Cost: edge.Cost}
			}
			candidate := item.g + edge.Cost
			if best, seen := s.gScore[edge.To]; seen && candidate >= best {
				continue
			}
			coord, ok := s.pf.graph.Coordinate(edge.To)
			if !ok {
				return &UnknownNodeError[ID]{ID: edge.To, Role: "neighbor"}
			}
			s.gScore[edge.To] = candidate
			s.cameFrom[edge.To] = item.node
			s.open.push(edge.To, candidate, candidate+s.pf.estimate(coord, s.goalCoord))
		}
		return nil
	}

	s.state = Exhausted
	return nil
}

// path follows predecessors back from the goal. Only valid once Found.
func (s *search[ID]) path() []ID {
	path := []ID{s.goal}
	for current := s.goal; current != s.start; {
		previous, ok := s.cameFrom[current]
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}
	slices.Reverse(path)
	return path
}
