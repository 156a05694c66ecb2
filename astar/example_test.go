package astar_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/gridgraph"
)

// ExampleFindPath walks the diagonal of an open 5×5 grid.
//
// Scenario:
//
//   - Omnidirectional adjacency, every cell walkable.
//   - From (0,0) to (4,4): four diagonal steps, five cells.
func ExampleFindPath() {
	var cells []gridgraph.Coord
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			cells = append(cells, gridgraph.Coord{X: x, Y: y})
		}
	}
	g, _ := gridgraph.Build(cells, gridgraph.Omnidirectional, gridgraph.Rectangle)

	path, _ := astar.FindPath(g, gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 4, Y: 4})
	fmt.Println(path)
	// Output:
	// [0,0 1,1 2,2 3,3 4,4]
}

// ExampleSearch shows the diagnostics returned alongside an unreachable goal.
func ExampleSearch() {
	cells := []gridgraph.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 0}}
	g, _ := gridgraph.Build(cells, gridgraph.OrthogonalOnly, gridgraph.Rectangle)

	res, _ := astar.Search(g, gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 5, Y: 0})
	fmt.Printf("found=%v path=%v expanded=%d\n", res.Found, res.Path, res.Expanded)
	// Output:
	// found=false path=[] expanded=3
}
