// Package pqueue provides a fixed-capacity binary min-heap used as the open
// list of tilepath's A* search.
//
// What:
//
//   - Queue[T] stores values of any type keyed by a float64 score.
//   - Capacity is fixed at construction; the backing array never grows.
//   - ExtractMin always returns an entry whose score is ≤ every remaining score.
//
// Why a hand-rolled heap instead of container/heap:
//
//   - The search knows its upper bound (one entry per graph node), so a
//     preallocated array with no interface boxing is both faster and lets an
//     overflow surface as an invariant break (ErrFull) instead of silently growing.
//
// Ordering rules:
//
//   - Sift-up compares a child with its parent at (i-1)/2 and swaps only while
//     the child is strictly smaller.
//   - Sift-down prefers the left child unless the right one is strictly smaller,
//     and swaps only while that child is strictly smaller than the current entry.
//   - Equal scores have no stability guarantee.
//
// Complexity:
//
//   - Insert, ExtractMin: O(log n). Peek, Len, Cap: O(1).
//   - Memory: O(capacity), allocated once in New.
//
// Errors:
//
//   - ErrFull:  Insert on a queue already holding Cap() entries.
//   - ErrEmpty: ExtractMin or Peek on an empty queue.
package pqueue
