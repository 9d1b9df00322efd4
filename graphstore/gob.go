package graphstore

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/mohamedthameursassi/transit-astar/routing"
)

// snapshot is the gob layout. Nodes keep their insertion order so a round trip
// preserves neighbor order and therefore tie-breaking.
type snapshot struct {
	Nodes []snapshotNode
}

type snapshotNode struct {
	ID    string
	Lat   float64
	Lon   float64
	Edges []snapshotEdge
}

type snapshotEdge struct {
	To   string
	Cost float64
}

// SaveGob writes g as a gob snapshot.
func SaveGob(w io.Writer, g *routing.Network[string]) error {
	var snap snapshot
	for _, id := range g.IDs() {
		node, _ := g.Node(id)
		sn := snapshotNode{ID: id, Lat: node.Coord.Lat, Lon: node.Coord.Lon}
		for _, e := range node.Edges {
			sn.Edges = append(sn.Edges, snapshotEdge{To: e.To, Cost: e.Cost})
		}
		snap.Nodes = append(snap.Nodes, sn)
	}
	if err := gob.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}
	return nil
}

// LoadGob reads a snapshot written by SaveGob.
func LoadGob(r io.Reader) (*routing.Network[string], error) {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode graph: %w", err)
	}

	builder := routing.NewBuilder[string]()
	for _, n := range snap.Nodes {
		builder.AddNode(n.ID, routing.Coordinate{Lat: n.Lat, Lon: n.Lon})
	}
	for _, n := range snap.Nodes {
		for _, e := range n.Edges {
			if err := builder.AddEdge(n.ID, e.To, e.Cost); err != nil {
				return nil, err
			}
		}
	}
	return builder.Build(), nil
}
