package graphstore

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mohamedthameursassi/transit-astar/routing"
)

// nodeLinkGraph is networkx node-link data. Both the "edges" and the older
// "links" key are accepted, as are lat/lon and OSMnx-style y/x coordinates.
type nodeLinkGraph struct {
	Directed *bool          `json:"directed"`
	Nodes    []nodeLinkNode `json:"nodes"`
	Edges    []nodeLinkEdge `json:"edges"`
	Links    []nodeLinkEdge `json:"links"`
}

type nodeLinkNode struct {
	ID  interface{} `json:"id"` // string or number
	Lat *float64    `json:"lat"`
	Lon *float64    `json:"lon"`
	Y   *float64    `json:"y"`
	X   *float64    `json:"x"`
}

type nodeLinkEdge struct {
	Source     interface{} `json:"source"`
	Target     interface{} `json:"target"`
	Weight     *float64    `json:"weight"`
	TravelTime *float64    `json:"travel_time"`
}

func convertID(id interface{}) (string, error) {
	switch v := id.(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("empty node id")
		}
		return v, nil
	case json.Number:
		return v.String(), nil
	case nil:
		return "", fmt.Errorf("missing node id")
	default:
		return "", fmt.Errorf("unsupported id type: %T", id)
	}
}

func (n nodeLinkNode) coordinate() (routing.Coordinate, bool) {
	switch {
	case n.Lat != nil && n.Lon != nil:
		return routing.Coordinate{Lat: *n.Lat, Lon: *n.Lon}, true
	case n.Y != nil && n.X != nil:
		return routing.Coordinate{Lat: *n.Y, Lon: *n.X}, true
	default:
		return routing.Coordinate{}, false
	}
}

func (e nodeLinkEdge) cost() (float64, bool) {
	switch {
	case e.Weight != nil:
		return *e.Weight, true
	case e.TravelTime != nil:
		return *e.TravelTime, true
	default:
		return 0, false
	}
}

// LoadJSON reads a graph in node-link format. Graphs marked "directed": false
// get an edge in each direction; parallel edges keep the cheapest cost.
func LoadJSON(r io.Reader) (*routing.Network[string], error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var data nodeLinkGraph
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse graph JSON: %w", err)
	}

	builder := routing.NewBuilder[string]()
	for i, n := range data.Nodes {
		id, err := convertID(n.ID)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		coord, ok := n.coordinate()
		if !ok {
			return nil, fmt.Errorf("node %s has no coordinates", id)
		}
		builder.AddNode(id, coord)
	}

	directed := data.Directed == nil || *data.Directed
	edges := data.Edges
	if len(edges) == 0 {
		edges = data.Links
	}

	type pair struct{ from, to string }
	costs := make(map[pair]float64, len(edges))
	order := make([]pair, 0, len(edges))
	addCost := func(p pair, cost float64) {
		existing, ok := costs[p]
		if !ok {
			order = append(order, p)
		}
		if !ok || cost < existing {
			costs[p] = cost
		}
	}

	for i, e := range edges {
		from, err := convertID(e.Source)
		if err != nil {
			return nil, fmt.Errorf("edge %d source: %w", i, err)
		}
		to, err := convertID(e.Target)
		if err != nil {
			return nil, fmt.Errorf("edge %d target: %w", i, err)
		}
		cost, ok := e.cost()
		if !ok {
			return nil, fmt.Errorf("edge %s -> %s has no weight", from, to)
		}
		addCost(pair{from, to}, cost)
		if !directed {
			addCost(pair{to, from}, cost)
		}
	}

	for _, p := range order {
		if err := builder.AddEdge(p.from, p.to, costs[p]); err != nil {
			return nil, err
		}
	}
	return builder.Build(), nil
}

// isJSON reports whether name looks like a node-link file.
func isJSON(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".json")
}
