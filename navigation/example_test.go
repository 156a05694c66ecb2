package navigation_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/navigation"
	"github.com/katalvlaran/tilepath/tilemap"
)

// ExampleNavigator opens a door in a wall and rebuilds.
func ExampleNavigator() {
	tm, _, _ := tilemap.ParseASCII(strings.NewReader(".#.\n"), gridgraph.Rectangle)
	nav := navigation.New(tm, navigation.WithMode(gridgraph.OrthogonalOnly))
	_ = nav.Rebuild()

	from, to := gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 2, Y: 0}
	path, _ := nav.FindPath(from, to)
	fmt.Println("closed:", path)

	_ = tm.Set(gridgraph.Coord{X: 1, Y: 0}, true)
	_ = nav.Rebuild()
	path, _ = nav.FindPath(from, to)
	fmt.Println("open:  ", path)
	// Output:
	// closed: []
	// open:   [0,0 1,0 2,0]
}
