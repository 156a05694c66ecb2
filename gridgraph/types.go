// Package gridgraph defines coordinates, adjacency modes, cell topologies and
// node handles for the gridgraph subpackage of github.com/katalvlaran/tilepath.
package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coord identifies a single grid cell. It is a comparable value type and is
// used directly as a map key.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Add returns the component-wise sum c + d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// Distance returns the Euclidean distance between c and d.
func (c Coord) Distance(d Coord) float64 {
	return math.Hypot(float64(c.X-d.X), float64(c.Y-d.Y))
}

// String formats c as "x,y", the same scheme the flag parser accepts.
func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// ParseCoord parses the "x,y" form produced by String.
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("ParseCoord(%q): %w", s, ErrBadCoord)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Coord{}, fmt.Errorf("ParseCoord(%q): %w", s, ErrBadCoord)
	}

	return Coord{X: x, Y: y}, nil
}

// DirectionMode selects which offsets count as valid neighbours.
type DirectionMode uint8

const (
	// Omnidirectional connects all eight surrounding cells.
	Omnidirectional DirectionMode = iota
	// OrthogonalOnly connects N, E, S, W.
	OrthogonalOnly
	// DiagonalOnly connects NE, SE, SW, NW.
	DiagonalOnly
	// SmartOrthogonal always connects diagonals; an orthogonal move is allowed
	// only when both diagonals flanking it are in the graph.
	SmartOrthogonal
	// SmartDiagonal always connects orthogonals; a diagonal move is allowed
	// only when both of its orthogonal components are in the graph.
	SmartDiagonal
)

var modeNames = [...]string{
	Omnidirectional: "omnidirectional",
	OrthogonalOnly:  "orthogonal",
	DiagonalOnly:    "diagonal",
	SmartOrthogonal: "smart-orthogonal",
	SmartDiagonal:   "smart-diagonal",
}

// Valid reports whether m is one of the declared modes.
func (m DirectionMode) Valid() bool { return int(m) < len(modeNames) }

func (m DirectionMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("DirectionMode(%d)", uint8(m))
	}
	return modeNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m DirectionMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%s: %w", m, ErrUnknownMode)
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DirectionMode) UnmarshalText(text []byte) error {
	parsed, err := ParseDirectionMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// ParseDirectionMode maps a mode name ("smart-orthogonal", …) to its value.
func ParseDirectionMode(s string) (DirectionMode, error) {
	for i, name := range modeNames {
		if name == s {
			return DirectionMode(i), nil
		}
	}

	return 0, fmt.Errorf("ParseDirectionMode(%q): %w", s, ErrUnknownMode)
}

// Topology describes the cell layout of the tile grid.
type Topology uint8

const (
	// Rectangle is a plain square-cell grid.
	Rectangle Topology = iota
	// Hexagon is an offset-row hex grid; it ignores DirectionMode.
	Hexagon
	// Isometric is a diamond-projected square grid; adjacency matches Rectangle.
	Isometric
)

var topologyNames = [...]string{
	Rectangle: "rectangle",
	Hexagon:   "hexagon",
	Isometric: "isometric",
}

// Valid reports whether t is one of the declared topologies.
func (t Topology) Valid() bool { return int(t) < len(topologyNames) }

func (t Topology) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
	return topologyNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%s: %w", t, ErrUnknownTopology)
	}
	return []byte(topologyNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(text []byte) error {
	parsed, err := ParseTopology(string(text))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// ParseTopology maps a topology name ("hexagon", …) to its value.
func ParseTopology(s string) (Topology, error) {
	for i, name := range topologyNames {
		if name == s {
			return Topology(i), nil
		}
	}

	return 0, fmt.Errorf("ParseTopology(%q): %w", s, ErrUnknownTopology)
}

// NodeID is a stable handle to a node of one built Graph. Handles are dense
// indices in insertion order and are meaningless across graphs.
type NodeID int32

// node is an arena entry. Neighbour links are handles, never pointers.
type node struct {
	coord      Coord
	neighbours []NodeID
}

// Graph is the navigation graph derived from a walkable-cell set.
// It is immutable once returned by Build or FromSnapshot; a rebuild produces
// a new Graph. Safe for concurrent readers.
type Graph struct {
	mode     DirectionMode
	topology Topology
	nodes    []node // arena in insertion order
	index    map[Coord]NodeID
}
