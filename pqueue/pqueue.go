package pqueue

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrFull indicates an Insert beyond the fixed capacity.
	ErrFull = errors.New("pqueue: capacity exceeded")
	// ErrEmpty indicates an ExtractMin or Peek on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")
)

// entry pairs a stored value with its priority score.
type entry[T any] struct {
	value T
	score float64
}

// Queue is a fixed-capacity binary min-heap ordered by score.
// The zero value is a queue of capacity 0; use New.
type Queue[T any] struct {
	items []entry[T] // len(items) == capacity; items[:count] form the heap
	count int
}

// New returns an empty Queue able to hold capacity entries.
// Panics on a negative capacity, which is a programmer error.
// Complexity: O(capacity) memory, allocated once.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("pqueue: New(%d): negative capacity", capacity))
	}

	return &Queue[T]{items: make([]entry[T], capacity)}
}

// Len reports the number of queued entries.
func (q *Queue[T]) Len() int { return q.count }

// Cap reports the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.items) }

// Insert appends value with the given score and restores heap order.
// Returns ErrFull if the queue already holds Cap() entries.
// Complexity: O(log n).
func (q *Queue[T]) Insert(value T, score float64) error {
	if q.count == len(q.items) {
		return fmt.Errorf("Insert (cap=%d): %w", len(q.items), ErrFull)
	}
	q.items[q.count] = entry[T]{value: value, score: score}
	q.count++
	q.siftUp(q.count - 1)

	return nil
}

// Peek returns the minimum entry without removing it.
func (q *Queue[T]) Peek() (T, float64, error) {
	if q.count == 0 {
		var zero T
		return zero, 0, ErrEmpty
	}

	return q.items[0].value, q.items[0].score, nil
}

// ExtractMin removes and returns the entry with the smallest score.
// Returns ErrEmpty if the queue holds no entries.
// Complexity: O(log n).
func (q *Queue[T]) ExtractMin() (T, float64, error) {
	if q.count == 0 {
		var zero T
		return zero, 0, ErrEmpty
	}
	root := q.items[0]

	// Move the last entry to the root, clear its old slot so values held by
	// reference are not retained, then restore order.
	last := q.count - 1
	q.items[0] = q.items[last]
	q.items[last] = entry[T]{}
	q.count--
	q.siftDown(0)

	return root.value, root.score, nil
}

// siftUp moves the entry at i towards the root while it is strictly smaller
// than its parent.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.items[i].score >= q.items[parent].score {
			return
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// siftDown moves the entry at i towards the leaves while its smaller child is
// strictly smaller than it.
func (q *Queue[T]) siftDown(i int) {
	for {
		child := 2*i + 1
		if child >= q.count {
			return
		}
		// Left child wins ties.
		if right := child + 1; right < q.count && q.items[right].score < q.items[child].score {
			child = right
		}
		if q.items[child].score >= q.items[i].score {
			return
		}
		q.items[i], q.items[child] = q.items[child], q.items[i]
		i = child
	}
}
