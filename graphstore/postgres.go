package graphstore

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mohamedthameursassi/transit-astar/routing"
)

//go:embed schema_postgres.sql
var postgresSchema string

// PostgresStore keeps a graph snapshot in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Connected to PostgreSQL graph store")
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save replaces the stored snapshot with g, bulk loading through COPY.
func (s *PostgresStore) Save(ctx context.Context, g *routing.Network[string]) error {
	nodes, edges := rowsFromNetwork(g)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE edges, nodes RESTART IDENTITY"); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"nodes"}, []string{"id", "lat", "lon"},
		pgx.CopyFromSlice(len(nodes), func(i int) ([]any, error) {
			return []any{nodes[i].id, nodes[i].lat, nodes[i].lon}, nil
		}))
	if err != nil {
		return fmt.Errorf("failed to copy nodes: %w", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"edges"}, []string{"source", "target", "cost"},
		pgx.CopyFromSlice(len(edges), func(i int) ([]any, error) {
			return []any{edges[i].source, edges[i].target, edges[i].cost}, nil
		}))
	if err != nil {
		return fmt.Errorf("failed to copy edges: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*routing.Network[string], error) {
	rows, err := s.pool.Query(ctx, "SELECT id, lat, lon FROM nodes ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	nodes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (nodeRow, error) {
		var n nodeRow
		err := row.Scan(&n.id, &n.lat, &n.lon)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read nodes: %w", err)
	}

	rows, err = s.pool.Query(ctx, "SELECT source, target, cost FROM edges ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	edges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (edgeRow, error) {
		var e edgeRow
		err := row.Scan(&e.source, &e.target, &e.cost)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read edges: %w", err)
	}

	return networkFromRows(nodes, edges)
}
