package pq_test

import (
	"fmt"

	"github.com/katalvlaran/tunnels/pq"
)

// ExampleMinPQ_Build heapifies a slice in linear time and drains it in order.
func ExampleMinPQ_Build() {
	q := pq.NewOrdered[int]()
	q.Build([]int{5, 3, 8, 1, 9, 2})

	for !q.IsEmpty() {
		x, _ := q.ExtractMin()
		fmt.Print(x, " ")
	}
	fmt.Println()
	// Output: 1 2 3 5 8 9
}

// ExampleNewFunc orders tunnel segments by length through an injected comparator.
func ExampleNewFunc() {
	type segment struct {
		name   string
		length int
	}
	q := pq.NewFunc(func(a, b segment) int { return a.length - b.length })
	q.Insert(segment{"north", 12})
	q.Insert(segment{"east", 4})
	q.Insert(segment{"south", 7})

	s, _ := q.PeekMin()
	fmt.Println("shortest:", s.name)
	// Output: shortest: east
}

func ExampleMinPQ_ExtractMin_underflow() {
	q := pq.NewOrdered[float64]()
	_, err := q.ExtractMin()
	fmt.Println(err)
	// Output: pq: priority queue underflow
}
