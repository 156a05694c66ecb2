package tilemap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/gridgraph"
)

var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("tilemap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("tilemap: all rows must have the same length")
	// ErrOutOfBounds indicates a Set outside the map bounds.
	ErrOutOfBounds = errors.New("tilemap: cell outside map bounds")
	// ErrBadGlyph indicates an ASCII map character with no meaning.
	ErrBadGlyph = errors.New("tilemap: unknown map glyph")
)

// Tilemap is a Width×Height block of cells anchored at Origin.
// Cell (Origin.X+x, Origin.Y+y) is stored at walkable[y*Width+x].
type Tilemap struct {
	Origin        gridgraph.Coord
	Width, Height int
	layout        gridgraph.Topology
	walkable      []bool
}

// New returns a Tilemap with every cell blocked. Panics on non-positive
// dimensions, which are programmer errors.
func New(origin gridgraph.Coord, width, height int, layout gridgraph.Topology) *Tilemap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tilemap: New(%d×%d): dimensions must be positive", width, height))
	}

	return &Tilemap{
		Origin:   origin,
		Width:    width,
		Height:   height,
		layout:   layout,
		walkable: make([]bool, width*height),
	}
}

// From2D builds a Tilemap anchored at (0,0) from a non-empty rectangular 2D
// slice; values[y][x] ≥ threshold marks cell (x,y) walkable.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(values [][]int, threshold int, layout gridgraph.Topology) (*Tilemap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	tm := New(gridgraph.Coord{}, w, h, layout)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tm.walkable[tm.index(x, y)] = values[y][x] >= threshold
		}
	}

	return tm, nil
}

// Layout returns the cell layout the map was created with.
func (tm *Tilemap) Layout() gridgraph.Topology { return tm.layout }

// index maps local (x,y) to a row-major index: y*Width + x.
func (tm *Tilemap) index(x, y int) int {
	return y*tm.Width + x
}

// local converts c to map-local coordinates and reports whether it is inside.
func (tm *Tilemap) local(c gridgraph.Coord) (x, y int, ok bool) {
	x, y = c.X-tm.Origin.X, c.Y-tm.Origin.Y
	return x, y, x >= 0 && x < tm.Width && y >= 0 && y < tm.Height
}

// InBounds reports whether c lies inside the map rectangle, walkable or not.
// Complexity: O(1).
func (tm *Tilemap) InBounds(c gridgraph.Coord) bool {
	_, _, ok := tm.local(c)
	return ok
}

// HasTile reports whether c is inside the map and walkable.
func (tm *Tilemap) HasTile(c gridgraph.Coord) bool {
	x, y, ok := tm.local(c)
	return ok && tm.walkable[tm.index(x, y)]
}

// Set marks c walkable or blocked. Returns ErrOutOfBounds outside the map.
func (tm *Tilemap) Set(c gridgraph.Coord, walkable bool) error {
	x, y, ok := tm.local(c)
	if !ok {
		return fmt.Errorf("Set(%s): %w", c, ErrOutOfBounds)
	}
	tm.walkable[tm.index(x, y)] = walkable

	return nil
}

// WalkableCells enumerates walkable cells column by column (x outer, y
// inner) starting at Origin. This order becomes the node insertion order of
// gridgraph.Build and therefore decides nearest-node ties.
func (tm *Tilemap) WalkableCells() []gridgraph.Coord {
	var cells []gridgraph.Coord
	for x := 0; x < tm.Width; x++ {
		for y := 0; y < tm.Height; y++ {
			if tm.walkable[tm.index(x, y)] {
				cells = append(cells, gridgraph.Coord{X: tm.Origin.X + x, Y: tm.Origin.Y + y})
			}
		}
	}
	return cells
}

// Count returns the number of walkable cells.
func (tm *Tilemap) Count() int {
	n := 0
	for _, w := range tm.walkable {
		if w {
			n++
		}
	}
	return n
}

// Build derives a navigation graph from the walkable cells using the map's
// layout and the given direction mode.
func (tm *Tilemap) Build(mode gridgraph.DirectionMode) (*gridgraph.Graph, error) {
	return gridgraph.Build(tm.WalkableCells(), mode, tm.layout)
}
