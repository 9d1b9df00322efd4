package graphstore

import (
	"errors"
	"strings"
	"testing"

	"github.com/mohamedthameursassi/transit-astar/routing"
)

const subwayJSON = `{
  "directed": true,
  "multigraph": false,
  "graph": {},
  "nodes": [
    {"name": "Court Sq", "lat": 40.747023, "lon": -73.945264, "id": "G22"},
    {"name": "21 St", "lat": 40.744065, "lon": -73.949724, "id": "G24"},
    {"name": "Greenpoint Av", "lat": 40.731352, "lon": -73.954449, "id": "G26"}
  ],
  "edges": [
    {"weight": 90, "route_id": "G", "source": "G22", "target": "G24"},
    {"weight": 120, "route_id": "G", "source": "G24", "target": "G26"},
    {"weight": 180, "transfer": true, "source": "G26", "target": "G22"}
  ]
}`

func TestLoadJSONDirected(t *testing.T) {
	g, err := LoadJSON(strings.NewReader(subwayJSON))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Fatalf("expected 3 nodes and 3 edges, got %d and %d", g.NodeCount(), g.EdgeCount())
	}
	c, ok := g.Coordinate("G24")
	if !ok || c.Lat != 40.744065 || c.Lon != -73.949724 {
		t.Errorf("unexpected coordinate for G24: %v %v", c, ok)
	}
	edges := g.Neighbors("G24")
	if len(edges) != 1 || edges[0].To != "G26" || edges[0].Cost != 120 {
		t.Errorf("unexpected edges for G24: %v", edges)
	}
}

func TestLoadJSONUndirectedLinksWithNumericIDs(t *testing.T) {
	data := `{
	  "directed": false,
	  "nodes": [
	    {"id": 42431099, "y": 45.5017, "x": -73.5673},
	    {"id": 42431100, "y": 45.5020, "x": -73.5660}
	  ],
	  "links": [
	    {"source": 42431099, "target": 42431100, "travel_time": 12.5}
	  ]
	}`
	g, err := LoadJSON(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if _, ok := g.Coordinate("42431099"); !ok {
		t.Fatal("numeric ids must be kept as their decimal string")
	}
	for _, pair := range [][2]string{{"42431099", "42431100"}, {"42431100", "42431099"}} {
		edges := g.Neighbors(pair[0])
		if len(edges) != 1 || edges[0].To != pair[1] || edges[0].Cost != 12.5 {
			t.Errorf("expected %s -> %s cost 12.5, got %v", pair[0], pair[1], edges)
		}
	}
}

func TestLoadJSONParallelEdgesKeepCheapest(t *testing.T) {
	data := `{
	  "nodes": [{"id": "A", "lat": 0, "lon": 0}, {"id": "B", "lat": 0, "lon": 1}],
	  "edges": [
	    {"source": "A", "target": "B", "weight": 30},
	    {"source": "A", "target": "B", "weight": 10},
	    {"source": "A", "target": "B", "weight": 20}
	  ]
	}`
	g, err := LoadJSON(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	edges := g.Neighbors("A")
	if len(edges) != 1 || edges[0].Cost != 10 {
		t.Errorf("expected single edge with cost 10, got %v", edges)
	}
}

func TestLoadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{
			name: "malformed",
			data: `{"nodes": [`,
		},
		{
			name: "node without coordinates",
			data: `{"nodes": [{"id": "A"}], "edges": []}`,
		},
		{
			name: "edge without weight",
			data: `{"nodes": [{"id": "A", "lat": 0, "lon": 0}, {"id": "B", "lat": 0, "lon": 1}],
			        "edges": [{"source": "A", "target": "B"}]}`,
		},
		{
			name: "edge to unknown node",
			data: `{"nodes": [{"id": "A", "lat": 0, "lon": 0}],
			        "edges": [{"source": "A", "target": "Z", "weight": 1}]}`,
			is: routing.ErrUnknownNode,
		},
		{
			name: "negative weight",
			data: `{"nodes": [{"id": "A", "lat": 0, "lon": 0}, {"id": "B", "lat": 0, "lon": 1}],
			        "edges": [{"source": "A", "target": "B", "weight": -4}]}`,
			is: routing.ErrInvalidEdgeCost,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON(strings.NewReader(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("expected %v, got %v", tt.is, err)
			}
		})
	}
}
