package config

import (
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the routing binaries
type Config struct {
	// Server
	Port        string
	CORSOrigins []string

	// Graph
	GraphSource string

	// Search
	AverageSpeed    float64
	HeuristicWeight float64
	MaxExpansions   int
	SearchTimeout   time.Duration
	BatchWorkers    int
	MaxBatchSize    int

	// Rate limiting, per client IP
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads an optional .env file, then environment variables with defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),

		GraphSource: getEnv("GRAPH_SOURCE", "data/graph.json"),

		AverageSpeed:    getEnvFloat("AVERAGE_SPEED", 8),
		HeuristicWeight: getEnvFloat("HEURISTIC_WEIGHT", 1),
		MaxExpansions:   getEnvInt("MAX_EXPANSIONS", 0),
		SearchTimeout:   getEnvDuration("SEARCH_TIMEOUT", 5*time.Second),
		BatchWorkers:    getEnvInt("BATCH_WORKERS", runtime.NumCPU()),
		MaxBatchSize:    getEnvInt("MAX_BATCH_SIZE", 100),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
		log.Printf("Warning: invalid %s=%q, using %v", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
