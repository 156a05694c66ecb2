package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Glyphs understood by ParseASCII.
const (
	GlyphWalkable = '.'
	GlyphBlocked  = '#'
	GlyphStart    = 'S' // walkable, also reported as the start marker
	GlyphGoal     = 'G' // walkable, also reported as the goal marker
)

// Markers holds the optional start/goal cells found in an ASCII map.
type Markers struct {
	Start, Goal       gridgraph.Coord
	HasStart, HasGoal bool
}

// ParseASCII reads a rectangular ASCII map. Each non-empty line is a row; the
// first row is y=0 and the first column is x=0. Lines are trimmed of
// trailing whitespace; blank lines are skipped.
//
// Glyphs: '.' walkable, '#' blocked, 'S'/'G' walkable start/goal markers.
// Any other rune yields ErrBadGlyph; ragged rows yield ErrNonRectangular;
// input without rows yields ErrEmptyGrid.
func ParseASCII(r io.Reader, layout gridgraph.Topology) (*Tilemap, Markers, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, Markers{}, fmt.Errorf("tilemap: read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, Markers{}, ErrEmptyGrid
	}

	width := len([]rune(rows[0]))
	tm := New(gridgraph.Coord{}, width, len(rows), layout)
	var mk Markers
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, Markers{}, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(runes), width, ErrNonRectangular)
		}
		for x, g := range runes {
			c := gridgraph.Coord{X: x, Y: y}
			switch g {
			case GlyphWalkable:
			case GlyphBlocked:
				continue
			case GlyphStart:
				mk.Start, mk.HasStart = c, true
			case GlyphGoal:
				mk.Goal, mk.HasGoal = c, true
			default:
				return nil, Markers{}, fmt.Errorf("cell %s glyph %q: %w", c, g, ErrBadGlyph)
			}
			tm.walkable[tm.index(x, y)] = true
		}
	}

	return tm, mk, nil
}

// Render draws tm as ASCII, overlaying path cells with '*'.
// Cells outside the map are ignored.
func (tm *Tilemap) Render(path []gridgraph.Coord) string {
	onPath := make(map[gridgraph.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	for y := 0; y < tm.Height; y++ {
		for x := 0; x < tm.Width; x++ {
			c := gridgraph.Coord{X: tm.Origin.X + x, Y: tm.Origin.Y + y}
			switch {
			case onPath[c] && tm.HasTile(c):
				sb.WriteByte('*')
			case tm.walkable[tm.index(x, y)]:
				sb.WriteByte(GlyphWalkable)
			default:
				sb.WriteByte(GlyphBlocked)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
