package graphstore

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mohamedthameursassi/transit-astar/routing"
)

// Open loads a graph from source: a postgres:// URL, a SQLite file (.db,
// .sqlite), a gob snapshot (.gob) or a node-link JSON file (.json).
func Open(ctx context.Context, source string) (*routing.Network[string], error) {
	if isPostgresURL(source) {
		store, err := OpenPostgres(ctx, source)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return loadFromStore(ctx, "postgres", store)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".db", ".sqlite", ".sqlite3":
		if _, err := os.Stat(source); err != nil {
			return nil, fmt.Errorf("could not open graph database: %w", err)
		}
		store, err := OpenSQLite(source)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return loadFromStore(ctx, source, store)
	default:
		return LoadFile(source)
	}
}

func loadFromStore(ctx context.Context, source string, store Store) (*routing.Network[string], error) {
	g, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	logLoaded(source, g)
	return g, nil
}

// OpenStore opens a writable store for destination, creating its schema.
func OpenStore(ctx context.Context, destination string) (Store, error) {
	var (
		store Store
		err   error
	)
	if isPostgresURL(destination) {
		store, err = OpenPostgres(ctx, destination)
	} else {
		store, err = OpenSQLite(destination)
	}
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func isPostgresURL(source string) bool {
	return strings.HasPrefix(source, "postgres://") || strings.HasPrefix(source, "postgresql://")
}

// LoadFile reads a .json or .gob graph file.
func LoadFile(path string) (*routing.Network[string], error) {
	log.Printf("Loading graph from: %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open graph file: %w", err)
	}
	defer file.Close()

	var g *routing.Network[string]
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		g, err = LoadJSON(file)
	case ".gob":
		g, err = LoadGob(file)
	default:
		return nil, fmt.Errorf("unsupported graph file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	logLoaded(path, g)
	return g, nil
}

// LoadDirectory loads every node-link JSON file under folder, keyed by file
// name without extension.
func LoadDirectory(folder string) (map[string]*routing.Network[string], error) {
	graphs := make(map[string]*routing.Network[string])

	err := filepath.Walk(folder, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && isJSON(info.Name()) {
			graph, err := LoadFile(path)
			if err != nil {
				return fmt.Errorf("error loading graph from %s: %w", path, err)
			}
			key := strings.TrimSuffix(info.Name(), filepath.Ext(info.Name()))
			graphs[key] = graph
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return graphs, nil
}

func logLoaded(source string, g *routing.Network[string]) {
	log.Printf("Loaded graph from %s: %d nodes, %d edges", source, g.NodeCount(), g.EdgeCount())
}
