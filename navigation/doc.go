// Package navigation owns a navigation graph on behalf of an application:
// it builds the graph from a tile Source, rebuilds or restores it on demand,
// and answers bounds, on-graph and path queries against the current graph.
//
// A Navigator is safe for concurrent use. Rebuild and Restore replace the
// graph wholesale under a write lock; FindPath takes the current graph under
// a read lock and searches it without holding the lock, so a search that
// races a rebuild completes on the graph it started with.
//
// Options:
//
//   - WithMode:   adjacency rule used by Rebuild (default Omnidirectional).
//   - WithLogger: *zap.Logger for rebuild and path events (default no-op).
//
// Errors:
//
//   - ErrNotBuilt: a query that needs a graph before Rebuild or Restore ran.
//   - errors from gridgraph.Build, gridgraph.Load and astar.Search, wrapped.
package navigation
