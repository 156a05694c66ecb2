package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/pqueue"
)

// ExampleQueue shows the open-list usage: capacity fixed up front, entries
// extracted cheapest first.
func ExampleQueue() {
	q := pqueue.New[string](4)
	_ = q.Insert("far", 9.5)
	_ = q.Insert("near", 1.25)
	_ = q.Insert("mid", 4)

	for q.Len() > 0 {
		name, score, _ := q.ExtractMin()
		fmt.Printf("%s %.2f\n", name, score)
	}
	// Output:
	// near 1.25
	// mid 4.00
	// far 9.50
}
