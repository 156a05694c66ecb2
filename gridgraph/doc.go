// Package gridgraph derives a navigation graph from the walkable cells of a 2D
// tile grid, ready for path search.
//
// What:
//
//   - Build turns a walkable-cell enumeration into a Graph: one node per cell,
//     neighbour links chosen by a DirectionMode and a Topology.
//   - Neighbours is the pure adjacency policy behind Build.
//   - Graph answers membership, neighbour, bounds and nearest-node queries.
//   - Snapshot / FromSnapshot / Save / Load persist the graph by coordinates.
//
// Direction modes (Rectangle and Isometric topologies):
//
//   - Omnidirectional: 4 orthogonal + 4 diagonal offsets.
//   - OrthogonalOnly, DiagonalOnly: one offset table each.
//   - SmartOrthogonal: every diagonal; an orthogonal step only when both
//     diagonals flanking it are walkable.
//   - SmartDiagonal: every orthogonal; a diagonal step only when both of its
//     orthogonal components are walkable (no corner cutting).
//
// Hexagon topology ignores the mode: orthogonal neighbours plus two diagonals
// chosen by the parity of the row, which gives six neighbours per interior cell.
//
// Directed links:
//
//	The smart rules are evaluated at each node independently, so a link A→B
//	may exist without B→A. Build, Snapshot and Reachable keep that asymmetry.
//
// Complexity:
//
//   - Build:       O(N) time and memory (at most 16 membership probes per node).
//   - NearestNode: O(1) on an exact hit, O(N) scan otherwise.
//   - Reachable, Components, Snapshot: O(V + E).
//
// Errors:
//
//   - ErrUnknownMode, ErrUnknownTopology: invalid Build or snapshot settings.
//   - ErrEmptyGraph: NearestNode on a graph without nodes.
//   - ErrNodeNotFound: Reachable from a coordinate outside the graph.
//   - ErrDuplicateNode, ErrDanglingNeighbour: corrupt snapshot data.
//   - ErrBadCoord: ParseCoord input not in "x,y" form.
package gridgraph
