package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GRAPH_SOURCE", "AVERAGE_SPEED", "HEURISTIC_WEIGHT", "SEARCH_TIMEOUT", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.AverageSpeed != 8 || cfg.HeuristicWeight != 1 {
		t.Errorf("unexpected search defaults: speed %v weight %v", cfg.AverageSpeed, cfg.HeuristicWeight)
	}
	if cfg.SearchTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.SearchTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS, got %v", cfg.CORSOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GRAPH_SOURCE", "postgres://routing@localhost/graphs")
	t.Setenv("AVERAGE_SPEED", "15.5")
	t.Setenv("MAX_EXPANSIONS", "5000")
	t.Setenv("SEARCH_TIMEOUT", "250ms")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://maps.example.org")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg := Load()

	if cfg.Port != "9090" || cfg.GraphSource != "postgres://routing@localhost/graphs" {
		t.Errorf("unexpected server config %+v", cfg)
	}
	if cfg.AverageSpeed != 15.5 || cfg.MaxExpansions != 5000 {
		t.Errorf("unexpected search config %+v", cfg)
	}
	if cfg.SearchTimeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.SearchTimeout)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://maps.example.org" {
		t.Errorf("unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.RateLimitBurst != 100 {
		t.Errorf("invalid value must fall back to default, got %d", cfg.RateLimitBurst)
	}
}
