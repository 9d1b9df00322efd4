package routing

import "math"

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Edge represents a directed connection to a neighboring node
type Edge[ID comparable] struct {
	To   ID      `json:"to"`
	Cost float64 `json:"cost"` // travel time, never negative
}

// Graph is the read-only view of a network that the search consumes.
//
// Coordinate reports whether the node exists. Neighbors returns the outgoing
// edges of a node in a stable order; the slice must not be modified.
type Graph[ID comparable] interface {
	Coordinate(id ID) (Coordinate, bool)
	Neighbors(id ID) []Edge[ID]
}

// Node represents a vertex of a Network
type Node[ID comparable] struct {
	ID    ID
	Coord Coordinate
	Edges []Edge[ID]
}

// Network is an immutable directed graph produced by a Builder. It is safe for
// concurrent searches.
type Network[ID comparable] struct {
	nodes     map[ID]*Node[ID]
	order     []ID
	edgeCount int
}

// Coordinate implements Graph.
func (n *Network[ID]) Coordinate(id ID) (Coordinate, bool) {
	node, ok := n.nodes[id]
	if !ok {
		return Coordinate{}, false
	}
	return node.Coord, true
}

// Neighbors implements Graph.
func (n *Network[ID]) Neighbors(id ID) []Edge[ID] {
	if node, ok := n.nodes[id]; ok {
		return node.Edges
	}
	return nil
}

// Node returns a copy of the node record.
func (n *Network[ID]) Node(id ID) (Node[ID], bool) {
	node, ok := n.nodes[id]
	if !ok {
		return Node[ID]{}, false
	}
	edges := make([]Edge[ID], len(node.Edges))
	copy(edges, node.Edges)
	return Node[ID]{ID: node.ID, Coord: node.Coord, Edges: edges}, true
}

// IDs lists node ids in the order they were added.
func (n *Network[ID]) IDs() []ID {
	ids := make([]ID, len(n.order))
	copy(ids, n.order)
	return ids
}

func (n *Network[ID]) NodeCount() int { return len(n.nodes) }
func (n *Network[ID]) EdgeCount() int { return n.edgeCount }

// Builder accumulates nodes and edges for a Network.
type Builder[ID comparable] struct {
	nodes map[ID]*Node[ID]
	order []ID
	// edgeIndex[from][to] is the position of the edge in nodes[from].Edges
	edgeIndex map[ID]map[ID]int
	edgeCount int
}

func NewBuilder[ID comparable]() *Builder[ID] {
	return &Builder[ID]{
		nodes:     make(map[ID]*Node[ID]),
		edgeIndex: make(map[ID]map[ID]int),
	}
}

// AddNode adds a node or moves an existing one to a new coordinate.
func (b *Builder[ID]) AddNode(id ID, coord Coordinate) {
	if node, ok := b.nodes[id]; ok {
		node.Coord = coord
		return
	}
	b.nodes[id] = &Node[ID]{ID: id, Coord: coord}
	b.order = append(b.order, id)
}

// AddEdge adds the directed edge from -> to. Adding an edge that already exists
// replaces its cost. Both endpoints must have been added first.
func (b *Builder[ID]) AddEdge(from, to ID, cost float64) error {
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return &EdgeCostError[ID]{From: from, To: to, Cost: cost}
	}
	src, ok := b.nodes[from]
	if !ok {
		return &UnknownNodeError[ID]{ID: from, Role: "source"}
	}
	if _, ok := b.nodes[to]; !ok {
		return &UnknownNodeError[ID]{ID: to, Role: "target"}
	}

	index, ok := b.edgeIndex[from]
	if !ok {
		index = make(map[ID]int)
		b.edgeIndex[from] = index
	}
	if i, exists := index[to]; exists {
		src.Edges[i].Cost = cost
		return nil
	}
	index[to] = len(src.Edges)
	src.Edges = append(src.Edges, Edge[ID]{To: to, Cost: cost})
	b.edgeCount++
	return nil
}

// HasNode reports whether id has been added.
func (b *Builder[ID]) HasNode(id ID) bool {
	_, ok := b.nodes[id]
	return ok
}

// Build returns the Network and resets the builder.
func (b *Builder[ID]) Build() *Network[ID] {
	network := &Network[ID]{
		nodes:     b.nodes,
		order:     b.order,
		edgeCount: b.edgeCount,
	}
	*b = *NewBuilder[ID]()
	return network
}
