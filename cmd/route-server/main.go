package main

import (
	"context"
	"log"

	"github.com/mohamedthameursassi/transit-astar/graphstore"
	"github.com/mohamedthameursassi/transit-astar/handlers"
	"github.com/mohamedthameursassi/transit-astar/internal/config"
	"github.com/mohamedthameursassi/transit-astar/routing"
)

func main() {
	cfg := config.Load()

	log.Println("Loading pre-built graph...")
	graph, err := graphstore.Open(context.Background(), cfg.GraphSource)
	if err != nil {
		log.Fatalf("Failed to load required graph data: %v", err)
	}

	finder, err := routing.NewPathFinder[string](graph,
		routing.WithAverageSpeed(cfg.AverageSpeed),
		routing.WithHeuristicWeight(cfg.HeuristicWeight),
		routing.WithMaxExpansions(cfg.MaxExpansions),
	)
	if err != nil {
		log.Fatalf("Invalid search configuration: %v", err)
	}
	if cfg.HeuristicWeight > 1 {
		log.Printf("Weighted A* enabled (w=%.2f), routes may exceed the optimum", cfg.HeuristicWeight)
	}

	h := handlers.NewRouteHandler(graph, finder, handlers.Settings{
		SearchTimeout: cfg.SearchTimeout,
		BatchWorkers:  cfg.BatchWorkers,
		MaxBatchSize:  cfg.MaxBatchSize,
	})
	r := handlers.NewRouter(h, handlers.RouterConfig{
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	log.Printf("Route server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
