package pq

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrUnderflow indicates an attempt to read the minimum of an empty queue.
var ErrUnderflow = errors.New("pq: priority queue underflow")

// Comparer is implemented by types that carry their own natural ordering.
// Compare returns a negative number when the receiver sorts before other,
// zero when they are equivalent and a positive number otherwise.
type Comparer[T any] interface {
	Compare(other T) int
}

// MinPQ is a binary min-heap of T.
//
// items[1..n] holds the heap; items[0] is never used. len(items)-1 is the
// current capacity. The heap property holds for every k in [1, n]:
// cmp(items[k], items[2k]) <= 0 and cmp(items[k], items[2k+1]) <= 0
// whenever those children exist.
type MinPQ[T any] struct {
	items []T
	n     int
	cmp   func(a, b T) int
}

// Option configures a MinPQ at construction.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity sets the initial capacity. Values below 1 are raised to 1.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// NewFunc returns an empty queue ordered by cmp.
// Complexity: O(capacity).
func NewFunc[T any](cmp func(a, b T) int, opts ...Option) *MinPQ[T] {
	c := config{capacity: 1}
	for _, opt := range opts {
		opt(&c)
	}
	if c.capacity < 1 {
		c.capacity = 1
	}

	return &MinPQ[T]{
		items: make([]T, c.capacity+1),
		cmp:   cmp,
	}
}

// NewOrdered returns an empty queue using the natural "<" order of T.
func NewOrdered[T constraints.Ordered](opts ...Option) *MinPQ[T] {
	return NewFunc(compareOrdered[T], opts...)
}

// NewComparable returns an empty queue ordered by T's Compare method.
func NewComparable[T Comparer[T]](opts ...Option) *MinPQ[T] {
	return NewFunc(func(a, b T) int { return a.Compare(b) }, opts...)
}

// compareOrdered is the three-way comparison behind NewOrdered.
func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
