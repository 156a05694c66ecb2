package astar

import (
	"errors"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGraph indicates that a nil *gridgraph.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrInternal indicates a broken open-list invariant (overflow or
	// underflow). It never occurs under correct use.
	ErrInternal = errors.New("astar: internal invariant violated")
)

// Result contains the outcome of a search.
type Result struct {
	// Path lists the cells from the resolved start to the resolved goal,
	// inclusive. Empty (non-nil) when Found is false.
	Path []gridgraph.Coord
	// Cost is the accumulated Euclidean cost recorded for the goal.
	Cost float64
	// Expanded counts the nodes extracted from the open list.
	Expanded int
	// Found reports whether the goal was reached.
	Found bool
}
