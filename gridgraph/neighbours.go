package gridgraph

// Offset tables in grid-local coordinates. The iteration order is part of the
// contract: neighbour lists are emitted in table order so builds are
// reproducible.
var (
	orthogonalOffsets = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalOffsets   = [4]Coord{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}
)

// adjacencyRule appends the neighbours of c admitted by one DirectionMode.
type adjacencyRule func(dst []Coord, c Coord, has func(Coord) bool) []Coord

// adjacencyRules is the closed strategy table keyed by DirectionMode.
// Adding a mode means adding a name in types.go and a rule here.
var adjacencyRules = [...]adjacencyRule{
	Omnidirectional: func(dst []Coord, c Coord, has func(Coord) bool) []Coord {
		dst = appendPresent(dst, c, orthogonalOffsets[:], has)
		return appendPresent(dst, c, diagonalOffsets[:], has)
	},
	OrthogonalOnly: func(dst []Coord, c Coord, has func(Coord) bool) []Coord {
		return appendPresent(dst, c, orthogonalOffsets[:], has)
	},
	DiagonalOnly: func(dst []Coord, c Coord, has func(Coord) bool) []Coord {
		return appendPresent(dst, c, diagonalOffsets[:], has)
	},
	SmartOrthogonal: func(dst []Coord, c Coord, has func(Coord) bool) []Coord {
		dst = appendPresent(dst, c, diagonalOffsets[:], has)
		return appendSmartOrthogonal(dst, c, has)
	},
	SmartDiagonal: func(dst []Coord, c Coord, has func(Coord) bool) []Coord {
		dst = appendPresent(dst, c, orthogonalOffsets[:], has)
		return appendSmartDiagonal(dst, c, has)
	},
}

// Neighbours returns the neighbour coordinates of c under the given topology
// and direction mode. has reports whether a coordinate is in the graph.
//
// Rules:
//
//   - Hexagon ignores mode: in-graph orthogonals plus two diagonals picked by
//     row parity (even |y|: (-1,+1),(-1,-1); odd |y|: (+1,+1),(+1,-1)).
//   - Rectangle and Isometric dispatch through the per-mode rule table.
//
// The result is deterministic and duplicate-free. An unknown topology or mode
// yields nil; Build validates both before calling.
// Complexity: O(1) calls to has (at most 16).
func Neighbours(c Coord, has func(Coord) bool, topo Topology, mode DirectionMode) []Coord {
	if topo == Hexagon {
		return hexagonNeighbours(make([]Coord, 0, 6), c, has)
	}
	if !topo.Valid() || !mode.Valid() {
		return nil
	}

	return adjacencyRules[mode](make([]Coord, 0, 8), c, has)
}

// appendPresent appends c+off for every offset whose target is in the graph.
func appendPresent(dst []Coord, c Coord, offsets []Coord, has func(Coord) bool) []Coord {
	for _, off := range offsets {
		if p := c.Add(off); has(p) {
			dst = append(dst, p)
		}
	}
	return dst
}

// appendSmartOrthogonal admits an orthogonal step only when both diagonals
// flanking it are present: (dx,±1) for a horizontal step, (±1,dy) for a
// vertical one.
func appendSmartOrthogonal(dst []Coord, c Coord, has func(Coord) bool) []Coord {
	for _, off := range orthogonalOffsets {
		var flankA, flankB Coord
		if off.X != 0 {
			flankA, flankB = Coord{off.X, 1}, Coord{off.X, -1}
		} else {
			flankA, flankB = Coord{1, off.Y}, Coord{-1, off.Y}
		}
		p := c.Add(off)
		if has(c.Add(flankA)) && has(c.Add(flankB)) && has(p) {
			dst = append(dst, p)
		}
	}
	return dst
}

// appendSmartDiagonal admits a diagonal step only when both orthogonal
// components (dx,0) and (0,dy) are present.
func appendSmartDiagonal(dst []Coord, c Coord, has func(Coord) bool) []Coord {
	for _, off := range diagonalOffsets {
		p := c.Add(off)
		if has(c.Add(Coord{off.X, 0})) && has(c.Add(Coord{0, off.Y})) && has(p) {
			dst = append(dst, p)
		}
	}
	return dst
}

// hexagonNeighbours implements the offset-row hex rule.
func hexagonNeighbours(dst []Coord, c Coord, has func(Coord) bool) []Coord {
	dst = appendPresent(dst, c, orthogonalOffsets[:], has)
	y := c.Y
	if y < 0 {
		y = -y
	}
	first := y % 2 * 2

	return appendPresent(dst, c, diagonalOffsets[first:first+2], has)
}
