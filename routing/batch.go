package routing

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Query is one origin/destination pair of a batch.
type Query[ID comparable] struct {
	From ID `json:"from"`
	To   ID `json:"to"`
}

// BatchResult is the outcome of one Query.
type BatchResult[ID comparable] struct {
	Query Query[ID]
	Route Route[ID]
	Found bool
	Err   error
}

// SearchMany runs the queries concurrently on at most workers goroutines and
// returns results in query order. A failing query does not stop the others.
func (pf *PathFinder[ID]) SearchMany(ctx context.Context, queries []Query[ID], workers int) []BatchResult[ID] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]BatchResult[ID], len(queries))

	var group errgroup.Group
	group.SetLimit(workers)
	for i, query := range queries {
		i, query := i, query
		group.Go(func() error {
			route, found, err := pf.SearchContext(ctx, query.From, query.To)
			results[i] = BatchResult[ID]{Query: query, Route: route, Found: found, Err: err}
			return nil
		})
	}
	_ = group.Wait()
	return results
}
