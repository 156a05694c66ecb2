package tilemap_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/tilemap"
)

// ExampleParseASCII loads a small map, builds an orthogonal graph and draws
// the path between the S and G markers.
func ExampleParseASCII() {
	src := `
S..
##.
G..
`
	tm, mk, err := tilemap.ParseASCII(strings.NewReader(src), gridgraph.Rectangle)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, _ := tm.Build(gridgraph.OrthogonalOnly)
	path, _ := astar.FindPath(g, mk.Start, mk.Goal)

	fmt.Print(tm.Render(path))
	// Output:
	// ***
	// ##*
	// ***
}
