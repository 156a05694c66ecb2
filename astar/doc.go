// Package astar finds paths over a gridgraph.Graph with a heap-backed A*
// search.
//
// Overview:
//
//   - FindPath returns the cells from start to goal, both inclusive.
//   - Search returns the same path plus diagnostics (cost, expanded nodes).
//   - Start and goal may be any coordinates: both are first resolved to the
//     nearest graph node, so callers can pass off-grid query points.
//
// Algorithm:
//
//  1. The open list is a pqueue.Queue sized to the graph's node count.
//  2. The closed mapping records each node's predecessor. A node is closed the
//     moment it is discovered, not when it is expanded. The start has no
//     predecessor and stays open, so a neighbour may rediscover it and queue
//     it a second time.
//  3. A discovered neighbour gets accumulated cost = parent cost + Euclidean
//     step and heuristic = Euclidean distance to the goal; both stay fixed even
//     if a cheaper route reaches it later.
//  4. The goal is detected when it is extracted from the open list; the path
//     is rebuilt by walking predecessors back to the start.
//
// Because of discovery-time closing each node other than the start enters the
// open list at most once, and the start is extracted before it can re-enter,
// so the fixed capacity can never be exceeded. The trade-off is that a
// path is not guaranteed optimal when an early discovery is not the cheapest
// route; existing callers rely on the resulting path choices.
//
// Links are followed as built: under the smart direction modes a one-way link
// can be walked in its own direction only.
//
// Thread safety:
//
//   - All per-search scratch state (costs, predecessors, open list) belongs to
//     one call. Any number of searches may share a Graph concurrently.
//
// Complexity:
//
//   - Time:  O(V log V): each node is inserted and extracted at most once
//     (the start at most twice).
//   - Space: O(V) scratch per call.
//
// Errors:
//
//   - ErrNilGraph: the graph pointer is nil.
//   - gridgraph.ErrEmptyGraph (wrapped): the graph has no nodes.
//   - ErrInternal (wrapping a pqueue sentinel): the open list overflowed or
//     underflowed, which means an invariant was broken.
//
// An unreachable goal is not an error: FindPath returns an empty path.
package astar
