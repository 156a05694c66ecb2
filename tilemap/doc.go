// Package tilemap is the tile source for tilepath: a bounded block of cells,
// each walkable or blocked, laid out as rectangle, hexagon or isometric tiles.
//
// A Tilemap is filled with Set, from a 2D slice via From2D, or from ASCII art
// via ParseASCII. WalkableCells enumerates walkable cells column by column
// (x outer, y inner) from the origin; Build hands that enumeration to
// gridgraph.Build, so the scan order fixes node order in the graph.
//
// ASCII glyphs:
//
//	.  walkable
//	#  blocked
//	S  walkable, start marker
//	G  walkable, goal marker
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: ragged rows.
//   - ErrBadGlyph: unknown ASCII rune.
//   - ErrOutOfBounds: Set outside the map.
//
// World-space conversion belongs to the host engine; this package speaks
// grid coordinates only.
package tilemap
