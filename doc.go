// Package tilepath finds paths on 2D tile grids: it derives a navigation
// graph from the walkable cells of a tile map and runs A* over it.
//
// 🚀 What is tilepath?
//
//	A small, deterministic pathfinding core for tile-based games and tools:
//		• Grid graphs: one node per walkable cell, links by direction mode
//		• Direction modes: omnidirectional, orthogonal, diagonal and the two
//		  "smart" modes that forbid squeezing past corners
//		• Layouts: rectangle, isometric and parity-offset hexagon cells
//		• A* search with a fixed-capacity binary heap
//		• Persistence: save and reload a built graph as YAML
//
// ✨ Why choose tilepath?
//
//   - Deterministic: same cells and settings, same graph and same path
//   - Concurrent reads: a built graph is immutable; searches keep their
//     scratch state to themselves
//   - Small surface: Build, FindPath, Save, Load
//
// Packages:
//
//	pqueue/        generic fixed-capacity binary min-heap
//	gridgraph/     Coord, DirectionMode, Topology, Build, queries, snapshots
//	astar/         FindPath / Search over a *gridgraph.Graph
//	tilemap/       walkable mask with ASCII and integer-grid loaders
//	navigation/    Navigator: rebuild-on-demand graph owner with zap logging
//	cmd/tilepath/  CLI: build, path, inspect
//
// Quick ASCII example (smart-diagonal):
//
//	S . #
//	. # .
//	. . G
//
//	S reaches G around the wall; the diagonal between the two '#' cells is
//	never taken because both of its orthogonal components are blocked.
//
//	go get github.com/katalvlaran/tilepath
package tilepath
