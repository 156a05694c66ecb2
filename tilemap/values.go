package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// ParseValues reads a grid of integers, one row per non-blank line, cells
// separated by spaces or commas, and hands it to From2D. Cells ≥ threshold
// are walkable.
func ParseValues(r io.Reader, threshold int, layout gridgraph.Topology) (*Tilemap, error) {
	var values [][]int
	sc := bufio.NewScanner(r)
	for line := 0; sc.Scan(); line++ {
		fields := strings.FieldsFunc(sc.Text(), func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("tilemap: line %d cell %d: %w", line+1, i, err)
			}
			row[i] = n
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tilemap: read values: %w", err)
	}

	return From2D(values, threshold, layout)
}
