// Command step-viewer serves a search one node expansion at a time so a
// front end can animate the frontier on a map.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/mohamedthameursassi/transit-astar/graphstore"
	"github.com/mohamedthameursassi/transit-astar/internal/config"
	"github.com/mohamedthameursassi/transit-astar/routing"
)

func main() {
	cfg := config.Load()
	addr := flag.String("addr", ":"+cfg.Port, "listen address")
	source := flag.String("graph", cfg.GraphSource, "graph source")
	flag.Parse()

	graph, err := graphstore.Open(context.Background(), *source)
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}
	finder, err := routing.NewPathFinder[string](graph,
		routing.WithAverageSpeed(cfg.AverageSpeed),
		routing.WithHeuristicWeight(cfg.HeuristicWeight),
	)
	if err != nil {
		log.Fatalf("Invalid search configuration: %v", err)
	}

	v := newViewer(graph, finder)
	log.Printf("Step viewer running on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, v.routes()))
}
