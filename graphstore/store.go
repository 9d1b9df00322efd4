package graphstore

import (
	"context"

	"github.com/mohamedthameursassi/transit-astar/routing"
)

// Store persists graph snapshots in a database.
type Store interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, g *routing.Network[string]) error
	Load(ctx context.Context) (*routing.Network[string], error)
	Close() error
}

type nodeRow struct {
	id       string
	lat, lon float64
}

type edgeRow struct {
	source, target string
	cost           float64
}

func networkFromRows(nodes []nodeRow, edges []edgeRow) (*routing.Network[string], error) {
	builder := routing.NewBuilder[string]()
	for _, n := range nodes {
		builder.AddNode(n.id, routing.Coordinate{Lat: n.lat, Lon: n.lon})
	}
	for _, e := range edges {
		if err := builder.AddEdge(e.source, e.target, e.cost); err != nil {
			return nil, err
		}
	}
	return builder.Build(), nil
}

// rowsFromNetwork flattens g in insertion order.
func rowsFromNetwork(g *routing.Network[string]) ([]nodeRow, []edgeRow) {
	ids := g.IDs()
	nodes := make([]nodeRow, 0, len(ids))
	edges := make([]edgeRow, 0, g.EdgeCount())
	for _, id := range ids {
		node, _ := g.Node(id)
		nodes = append(nodes, nodeRow{id: id, lat: node.Coord.Lat, lon: node.Coord.Lon})
		for _, e := range node.Edges {
			edges = append(edges, edgeRow{source: id, target: e.To, cost: e.Cost})
		}
	}
	return nodes, edges
}
