package pq

// IsMinHeap exposes the heap-property check to the external test package.
func IsMinHeap[T any](q *MinPQ[T]) bool {
	return q.isMinHeap(1)
}
