package astar

import (
	"fmt"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/pqueue"
)

// noParent marks a node that has not been discovered yet.
const noParent gridgraph.NodeID = -1

// FindPath returns the cells from start to goal, both inclusive, after
// resolving each endpoint to its nearest graph node. When start and goal
// resolve to the same node the path has one element. When the goal cannot be
// reached the path is empty and err is nil.
func FindPath(g *gridgraph.Graph, start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	res, err := Search(g, start, goal)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs the A* search and returns the path with diagnostics.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one node (wrapped gridgraph.ErrEmptyGraph).
func Search(g *gridgraph.Graph, start, goal gridgraph.Coord) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	from, err := g.NearestNode(start)
	if err != nil {
		return Result{}, fmt.Errorf("astar: resolve start: %w", err)
	}
	to, err := g.NearestNode(goal)
	if err != nil {
		return Result{}, fmt.Errorf("astar: resolve goal: %w", err)
	}

	r := newRunner(g, from, to)
	return r.run()
}

// runner holds the mutable state of one search. Nothing here is shared with
// the graph, which stays read-only.
type runner struct {
	g      *gridgraph.Graph
	start  gridgraph.NodeID
	goal   gridgraph.NodeID
	goalAt gridgraph.Coord

	cost      []float64          // accumulated cost per node, fixed at discovery
	heuristic []float64          // Euclidean estimate to the goal per node
	parent    []gridgraph.NodeID // closed mapping: predecessor, or noParent
	open      *pqueue.Queue[gridgraph.NodeID]
}

func newRunner(g *gridgraph.Graph, start, goal gridgraph.NodeID) *runner {
	n := g.Len()
	r := &runner{
		g:         g,
		start:     start,
		goal:      goal,
		goalAt:    g.Coord(goal),
		cost:      make([]float64, n),
		heuristic: make([]float64, n),
		parent:    make([]gridgraph.NodeID, n),
		open:      pqueue.New[gridgraph.NodeID](n),
	}
	for i := range r.parent {
		r.parent[i] = noParent
	}

	return r
}

// run is the main loop: extract the cheapest open node, stop at the goal,
// otherwise discover its unclosed neighbours.
func (r *runner) run() (Result, error) {
	// The start has no predecessor, so a neighbour may rediscover it and
	// queue it again. It is always popped before that happens, which keeps
	// at most g.Len() entries queued.
	if err := r.open.Insert(r.start, 0); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	expanded := 0
	for r.open.Len() > 0 {
		current, _, err := r.open.ExtractMin()
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		expanded++

		if current == r.goal {
			return Result{
				Path:     r.rebuild(),
				Cost:     r.cost[current],
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		if err := r.discover(current); err != nil {
			return Result{}, err
		}
	}

	return Result{Path: []gridgraph.Coord{}, Expanded: expanded}, nil
}

// discover scores and enqueues every neighbour of current that is not closed
// yet, closing it immediately with current as predecessor.
func (r *runner) discover(current gridgraph.NodeID) error {
	at := r.g.Coord(current)
	for _, next := range r.g.Neighbours(current) {
		if r.parent[next] != noParent {
			continue
		}
		nextAt := r.g.Coord(next)
		r.cost[next] = r.cost[current] + at.Distance(nextAt)
		r.heuristic[next] = nextAt.Distance(r.goalAt)
		if err := r.open.Insert(next, r.cost[next]+r.heuristic[next]); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		r.parent[next] = current
	}

	return nil
}

// rebuild walks predecessors from the goal back to the start and returns the
// path in start-to-goal order.
func (r *runner) rebuild() []gridgraph.Coord {
	path := []gridgraph.Coord{r.g.Coord(r.goal)}
	for at := r.goal; at != r.start; {
		at = r.parent[at]
		path = append(path, r.g.Coord(at))
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
