// File: gridgraph/components_test.go
package gridgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromRows builds a graph from rows of '#' (blocked) and '.' (walkable);
// row index is y, column index is x.
func fromRows(t *testing.T, mode DirectionMode, rows ...string) *Graph {
	t.Helper()
	var cells []Coord
	for y, row := range rows {
		for x, r := range row {
			if r == '.' {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	g, err := Build(cells, mode, Rectangle)
	require.NoError(t, err)

	return g
}

// TestComponents_TwoIslands splits a 5×3 map along a wall column.
//
//	. . # . .
//	. . # . .
//	. . # . .
//
// Expected: 2 regions of 6 cells each.
func TestComponents_TwoIslands(t *testing.T) {
	g := fromRows(t, Omnidirectional,
		"..#..",
		"..#..",
		"..#..",
	)
	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 6)
	assert.Len(t, comps[1], 6)
	assert.Equal(t, Coord{X: 0, Y: 0}, comps[0][0], "first region starts at first inserted node")
}

// TestComponents_DiagonalTouch: under OrthogonalOnly a corner touch does not
// join regions; under Omnidirectional it does.
//
//	. #
//	# .
func TestComponents_DiagonalTouch(t *testing.T) {
	assert.Len(t, fromRows(t, OrthogonalOnly, ".#", "#.").Components(), 2)
	assert.Len(t, fromRows(t, Omnidirectional, ".#", "#.").Components(), 1)
}

func TestComponents_Empty(t *testing.T) {
	g, err := Build(nil, Omnidirectional, Rectangle)
	require.NoError(t, err)
	assert.Empty(t, g.Components())
}

// TestReachable_Directed uses a SmartOrthogonal one-way link:
// (0,0)→(1,0) is admitted, (1,0)→(0,0) is not, and (1,±1) link only to (0,0).
func TestReachable_Directed(t *testing.T) {
	a := Coord{X: 0, Y: 0}
	cells := []Coord{a, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: -1}}
	g, err := Build(cells, SmartOrthogonal, Rectangle)
	require.NoError(t, err)

	fromA, err := g.Reachable(a)
	require.NoError(t, err)
	assert.Equal(t, a, fromA[0])
	assert.Contains(t, fromA, Coord{X: 1, Y: 0})

	fromB, err := g.Reachable(Coord{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, []Coord{{X: 1, Y: 0}}, fromB)

	// Weakly connected: a single region despite the one-way link.
	assert.Len(t, g.Components(), 1)
}

func TestReachable_NotFound(t *testing.T) {
	g := fromRows(t, Omnidirectional, "..")
	_, err := g.Reachable(Coord{X: 7, Y: 7})
	assert.ErrorIs(t, err, ErrNodeNotFound)
}
