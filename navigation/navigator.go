package navigation

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/gridgraph"
)

// ErrNotBuilt indicates a graph query before Rebuild or Restore succeeded.
var ErrNotBuilt = errors.New("navigation: graph not built")

// Source is the tile data a Navigator builds from. *tilemap.Tilemap
// satisfies it.
type Source interface {
	// WalkableCells enumerates walkable cells in a stable order.
	WalkableCells() []gridgraph.Coord
	// InBounds reports whether c lies inside the source rectangle.
	InBounds(c gridgraph.Coord) bool
	// Layout is the cell topology of the source.
	Layout() gridgraph.Topology
}

// Navigator pairs a tile Source with the graph derived from it.
type Navigator struct {
	src  Source
	opts Options
	log  *zap.Logger

	mu    sync.RWMutex
	graph *gridgraph.Graph
}

// New returns a Navigator over src. No graph exists until Rebuild or Restore.
// Panics if src is nil.
func New(src Source, opts ...Option) *Navigator {
	if src == nil {
		panic("navigation: New(nil source)")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Navigator{
		src:  src,
		opts: o,
		log:  o.Logger,
	}
}

// Rebuild derives a fresh graph from the source and swaps it in. On error the
// previous graph stays in place.
func (n *Navigator) Rebuild() error {
	began := time.Now()
	g, err := gridgraph.Build(n.src.WalkableCells(), n.opts.Mode, n.src.Layout())
	if err != nil {
		return fmt.Errorf("navigation: rebuild: %w", err)
	}

	n.mu.Lock()
	n.graph = g
	n.mu.Unlock()

	n.log.Debug("graph rebuilt", graphFields(g,
		zap.Int("nodes", g.Len()),
		zap.Duration("took", time.Since(began)))...)

	return nil
}

// Restore replaces the graph with one loaded from a persisted snapshot, as
// written by Save. The snapshot's own mode and topology are kept.
func (n *Navigator) Restore(r io.Reader) error {
	g, err := gridgraph.Load(r)
	if err != nil {
		return fmt.Errorf("navigation: restore: %w", err)
	}

	n.mu.Lock()
	n.graph = g
	n.mu.Unlock()

	n.log.Debug("graph restored", graphFields(g, zap.Int("nodes", g.Len()))...)

	return nil
}

// Save persists the current graph.
func (n *Navigator) Save(w io.Writer) error {
	g, err := n.Graph()
	if err != nil {
		return err
	}
	return g.Save(w)
}

// Graph returns the current graph, or ErrNotBuilt.
func (n *Navigator) Graph() (*gridgraph.Graph, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.graph == nil {
		return nil, ErrNotBuilt
	}
	return n.graph, nil
}

// Len returns the node count of the current graph, 0 before the first build.
func (n *Navigator) Len() int {
	g, err := n.Graph()
	if err != nil {
		return 0
	}
	return g.Len()
}

// InBounds reports whether c lies inside the source rectangle, whether or not
// it is walkable.
func (n *Navigator) InBounds(c gridgraph.Coord) bool {
	return n.src.InBounds(c)
}

// OnGraph reports whether c is a node of the current graph. False before the
// first build.
func (n *Navigator) OnGraph(c gridgraph.Coord) bool {
	g, err := n.Graph()
	if err != nil {
		return false
	}
	return g.Contains(c)
}

// FindPath searches the current graph from the node nearest start to the node
// nearest goal. An empty, non-nil path means no route exists.
func (n *Navigator) FindPath(start, goal gridgraph.Coord) ([]gridgraph.Coord, error) {
	g, err := n.Graph()
	if err != nil {
		return nil, err
	}

	res, err := astar.Search(g, start, goal)
	if err != nil {
		return nil, fmt.Errorf("navigation: find path %s -> %s: %w", start, goal, err)
	}

	fields := graphFields(g,
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Int("expanded", res.Expanded),
	)
	if !res.Found {
		n.log.Info("no path", fields...)
		return res.Path, nil
	}
	n.log.Debug("path found", append(fields, zap.Int("length", len(res.Path)), zap.Float64("cost", res.Cost))...)

	return res.Path, nil
}

// graphFields prepends the settings of the searched graph to fields. They are
// read per event because Restore may install a graph built with other settings.
func graphFields(g *gridgraph.Graph, fields ...zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.Stringer("mode", g.Mode()),
		zap.Stringer("topology", g.Topology()),
	}, fields...)
}
