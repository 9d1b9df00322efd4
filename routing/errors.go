package routing

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownNode     = errors.New("unknown node")
	ErrInvalidEdgeCost = errors.New("negative or non-finite edge cost")
	ErrExpansionLimit  = errors.New("expansion limit reached")
	ErrInvalidOption   = errors.New("invalid option")
)

// UnknownNodeError names a node id that is absent from the graph and the role
// it was used in (start, goal, neighbor, source, target).
type UnknownNodeError[ID comparable] struct {
	ID   ID
	Role string
}

func (e *UnknownNodeError[ID]) Error() string {
	return fmt.Sprintf("%s node %v not found in graph", e.Role, e.ID)
}

func (e *UnknownNodeError[ID]) Unwrap() error { return ErrUnknownNode }

// EdgeCostError reports an edge whose cost would break optimality.
type EdgeCostError[ID comparable] struct {
	From ID
	To   ID
	Cost float64
}

func (e *EdgeCostError[ID]) Error() string {
	return fmt.Sprintf("edge %v -> %v has invalid cost %v", e.From, e.To, e.Cost)
}

func (e *EdgeCostError[ID]) Unwrap() error { return ErrInvalidEdgeCost }
