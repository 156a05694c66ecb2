package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// setOf turns coordinates into a membership predicate.
func setOf(cells ...gridgraph.Coord) func(gridgraph.Coord) bool {
	m := make(map[gridgraph.Coord]struct{}, len(cells))
	for _, c := range cells {
		m[c] = struct{}{}
	}
	return func(c gridgraph.Coord) bool {
		_, ok := m[c]
		return ok
	}
}

// rect returns every cell of a w×h rectangle anchored at (0,0), x outer.
func rect(w, h int) []gridgraph.Coord {
	cells := make([]gridgraph.Coord, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			cells = append(cells, gridgraph.Coord{X: x, Y: y})
		}
	}
	return cells
}

func isDiagonalStep(a, b gridgraph.Coord) bool {
	return a.X != b.X && a.Y != b.Y
}

func TestNeighbours_FullBlockOrder(t *testing.T) {
	has := setOf(rect(3, 3)...)
	c := gridgraph.Coord{X: 1, Y: 1}

	cases := []struct {
		name string
		mode gridgraph.DirectionMode
		want []gridgraph.Coord
	}{
		{"Omnidirectional", gridgraph.Omnidirectional, []gridgraph.Coord{
			{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0},
			{X: 0, Y: 2}, {X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0},
		}},
		{"OrthogonalOnly", gridgraph.OrthogonalOnly, []gridgraph.Coord{
			{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0},
		}},
		{"DiagonalOnly", gridgraph.DiagonalOnly, []gridgraph.Coord{
			{X: 0, Y: 2}, {X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0},
		}},
		{"SmartOrthogonal", gridgraph.SmartOrthogonal, []gridgraph.Coord{
			{X: 0, Y: 2}, {X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0},
			{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0},
		}},
		{"SmartDiagonal", gridgraph.SmartDiagonal, []gridgraph.Coord{
			{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0},
			{X: 0, Y: 2}, {X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gridgraph.Neighbours(c, has, gridgraph.Rectangle, tc.mode)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestNeighbours_SingleTableModes checks over random masks that OrthogonalOnly
// never yields a diagonal and DiagonalOnly never yields an orthogonal.
func TestNeighbours_SingleTableModes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		var cells []gridgraph.Coord
		for _, c := range rect(5, 5) {
			if rng.Intn(3) > 0 {
				cells = append(cells, c)
			}
		}
		has := setOf(cells...)
		for _, topo := range []gridgraph.Topology{gridgraph.Rectangle, gridgraph.Isometric} {
			for _, c := range cells {
				for _, n := range gridgraph.Neighbours(c, has, topo, gridgraph.OrthogonalOnly) {
					assert.False(t, isDiagonalStep(c, n), "orthogonal mode: %s -> %s", c, n)
					assert.True(t, has(n))
				}
				for _, n := range gridgraph.Neighbours(c, has, topo, gridgraph.DiagonalOnly) {
					assert.True(t, isDiagonalStep(c, n), "diagonal mode: %s -> %s", c, n)
					assert.True(t, has(n))
				}
			}
		}
	}
}

func TestNeighbours_SmartOrthogonalNeedsBothFlanks(t *testing.T) {
	// (1,-1) missing: only one diagonal flanks the +x step.
	has := setOf(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 1, Y: 0}, gridgraph.Coord{X: 1, Y: 1})
	got := gridgraph.Neighbours(gridgraph.Coord{}, has, gridgraph.Rectangle, gridgraph.SmartOrthogonal)
	assert.Equal(t, []gridgraph.Coord{{X: 1, Y: 1}}, got)
	assert.NotContains(t, got, gridgraph.Coord{X: 1, Y: 0})

	// Both flanks present: the step is admitted.
	has = setOf(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 1, Y: 0},
		gridgraph.Coord{X: 1, Y: 1}, gridgraph.Coord{X: 1, Y: -1})
	got = gridgraph.Neighbours(gridgraph.Coord{}, has, gridgraph.Rectangle, gridgraph.SmartOrthogonal)
	assert.Contains(t, got, gridgraph.Coord{X: 1, Y: 0})

	// A vertical step uses (±1,dy) as flanks.
	has = setOf(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 0, Y: 1},
		gridgraph.Coord{X: 1, Y: 1}, gridgraph.Coord{X: -1, Y: 1})
	got = gridgraph.Neighbours(gridgraph.Coord{}, has, gridgraph.Rectangle, gridgraph.SmartOrthogonal)
	assert.Contains(t, got, gridgraph.Coord{X: 0, Y: 1})
}

// TestNeighbours_SmartOrthogonalIsAsymmetric: (0,0)→(1,0) is flanked by
// (1,±1) but the reverse step needs (0,±1), which are missing.
func TestNeighbours_SmartOrthogonalIsAsymmetric(t *testing.T) {
	a, b := gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 1, Y: 0}
	has := setOf(a, b, gridgraph.Coord{X: 1, Y: 1}, gridgraph.Coord{X: 1, Y: -1})

	assert.Contains(t, gridgraph.Neighbours(a, has, gridgraph.Rectangle, gridgraph.SmartOrthogonal), b)
	assert.NotContains(t, gridgraph.Neighbours(b, has, gridgraph.Rectangle, gridgraph.SmartOrthogonal), a)
}

func TestNeighbours_SmartDiagonalNoCornerCutting(t *testing.T) {
	has := setOf(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 1, Y: 0}, gridgraph.Coord{X: 1, Y: 1})
	got := gridgraph.Neighbours(gridgraph.Coord{}, has, gridgraph.Rectangle, gridgraph.SmartDiagonal)
	assert.Equal(t, []gridgraph.Coord{{X: 1, Y: 0}}, got)

	has = setOf(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 1, Y: 0},
		gridgraph.Coord{X: 0, Y: 1}, gridgraph.Coord{X: 1, Y: 1})
	got = gridgraph.Neighbours(gridgraph.Coord{}, has, gridgraph.Rectangle, gridgraph.SmartDiagonal)
	assert.Equal(t, []gridgraph.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, got)
}

func TestNeighbours_HexagonIgnoresMode(t *testing.T) {
	has := setOf(rect(5, 5)...)
	modes := []gridgraph.DirectionMode{
		gridgraph.Omnidirectional, gridgraph.OrthogonalOnly, gridgraph.DiagonalOnly,
		gridgraph.SmartOrthogonal, gridgraph.SmartDiagonal,
	}

	even := gridgraph.Coord{X: 2, Y: 2}
	wantEven := []gridgraph.Coord{
		{X: 3, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 1},
		{X: 1, Y: 3}, {X: 1, Y: 1},
	}
	odd := gridgraph.Coord{X: 2, Y: 1}
	wantOdd := []gridgraph.Coord{
		{X: 3, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 0},
		{X: 3, Y: 2}, {X: 3, Y: 0},
	}
	for _, m := range modes {
		assert.Equal(t, wantEven, gridgraph.Neighbours(even, has, gridgraph.Hexagon, m), m.String())
		assert.Equal(t, wantOdd, gridgraph.Neighbours(odd, has, gridgraph.Hexagon, m), m.String())
		assert.Len(t, gridgraph.Neighbours(even, has, gridgraph.Hexagon, m), 6)
	}
}

func TestNeighbours_HexagonNegativeRows(t *testing.T) {
	// |y| decides parity, so y=-1 behaves like an odd row.
	c := gridgraph.Coord{X: 0, Y: -1}
	has := setOf(c, gridgraph.Coord{X: 1, Y: 0}, gridgraph.Coord{X: -1, Y: 0})
	got := gridgraph.Neighbours(c, has, gridgraph.Hexagon, gridgraph.Omnidirectional)
	assert.Equal(t, []gridgraph.Coord{{X: 1, Y: 0}}, got)
}

func TestNeighbours_NoDuplicates(t *testing.T) {
	has := setOf(rect(4, 4)...)
	for _, topo := range []gridgraph.Topology{gridgraph.Rectangle, gridgraph.Hexagon, gridgraph.Isometric} {
		for m := gridgraph.Omnidirectional; m <= gridgraph.SmartDiagonal; m++ {
			for _, c := range rect(4, 4) {
				seen := map[gridgraph.Coord]bool{}
				for _, n := range gridgraph.Neighbours(c, has, topo, m) {
					assert.False(t, seen[n], "%s/%s: duplicate %s at %s", topo, m, n, c)
					seen[n] = true
				}
			}
		}
	}
}

func TestNeighbours_UnknownModeOrTopology(t *testing.T) {
	has := setOf(rect(3, 3)...)
	assert.Nil(t, gridgraph.Neighbours(gridgraph.Coord{X: 1, Y: 1}, has, gridgraph.Rectangle, gridgraph.DirectionMode(42)))
	assert.Nil(t, gridgraph.Neighbours(gridgraph.Coord{X: 1, Y: 1}, has, gridgraph.Topology(9), gridgraph.Omnidirectional))
}
