// Package routing computes shortest-time routes over geographic graphs with A*.
//
// A PathFinder reads a Graph whose nodes carry coordinates and directed,
// non-negative edge costs. The frontier is ordered by f = g + h where h is the
// great-circle distance to the goal divided by an average speed. Every search
// owns its frontier, g-scores and predecessors, so one PathFinder may serve
// many goroutines as long as the graph is not mutated.
//
// Entry points:
//
//   - PathFinder.Search: run a search to completion.
//   - PathFinder.SearchMany: run independent searches on a bounded worker pool.
//   - Stepper: advance a search one expansion at a time for debugging tools.
package routing
