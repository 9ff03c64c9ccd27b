package pq

// Build replaces the queue content with items and heapifies in place.
// The input order is irrelevant; items itself is not modified.
//
// Steps:
//  1. Allocate len(items)+1 slots (never fewer than 2) and copy items into 1..n.
//  2. Sink every parent from n/2 down to the root.
//
// Complexity: O(n) time, O(n) memory.
func (q *MinPQ[T]) Build(items []T) {
	capacity := len(items)
	if capacity < 1 {
		capacity = 1
	}
	q.items = make([]T, capacity+1)
	copy(q.items[1:], items)
	q.n = len(items)
	for k := q.n / 2; k >= 1; k-- {
		q.sink(k)
	}
}

// Insert adds x to the queue, doubling the backing slice when it is full.
// Complexity: O(log n) amortized.
func (q *MinPQ[T]) Insert(x T) {
	if q.n == len(q.items)-1 {
		q.resize(2 * len(q.items))
	}
	q.n++
	q.items[q.n] = x
	q.swim(q.n)
}

// ExtractMin removes and returns a smallest element.
// Returns ErrUnderflow if the queue is empty.
//
// Steps:
//  1. Swap the root with the last element and shrink the logical size.
//  2. Zero the vacated slot and sink the new root.
//  3. Halve the backing slice once occupancy falls to a quarter of capacity.
//
// Complexity: O(log n) amortized.
func (q *MinPQ[T]) ExtractMin() (T, error) {
	var zero T
	if q.n == 0 {
		return zero, ErrUnderflow
	}
	q.swap(1, q.n)
	top := q.items[q.n]
	q.items[q.n] = zero
	q.n--
	q.sink(1)
	if q.n > 0 && q.n == (len(q.items)-1)/4 {
		q.resize(len(q.items) / 2)
	}

	return top, nil
}

// PeekMin returns a smallest element without removing it.
// Returns ErrUnderflow if the queue is empty.
// Complexity: O(1).
func (q *MinPQ[T]) PeekMin() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, ErrUnderflow
	}

	return q.items[1], nil
}

// Len returns the number of queued elements.
func (q *MinPQ[T]) Len() int { return q.n }

// IsEmpty reports whether the queue holds no elements.
func (q *MinPQ[T]) IsEmpty() bool { return q.n == 0 }

// Cap returns the number of elements the backing slice can hold before growing.
func (q *MinPQ[T]) Cap() int { return len(q.items) - 1 }

// resize moves items[1..n] into a fresh slice of the given length.
// The length is clamped to 2 so capacity stays at least 1.
func (q *MinPQ[T]) resize(length int) {
	if length < 2 {
		length = 2
	}
	next := make([]T, length)
	copy(next[1:q.n+1], q.items[1:q.n+1])
	q.items = next
}

// swim moves the element at k toward the root while it is smaller than its parent.
func (q *MinPQ[T]) swim(k int) {
	for k > 1 && q.greater(k/2, k) {
		q.swap(k, k/2)
		k /= 2
	}
}

// sink moves the element at k toward the leaves while it is larger than its smaller child.
func (q *MinPQ[T]) sink(k int) {
	for 2*k <= q.n {
		j := 2 * k
		if j < q.n && q.greater(j, j+1) {
			j++
		}
		if !q.greater(k, j) {
			break
		}
		q.swap(k, j)
		k = j
	}
}

func (q *MinPQ[T]) greater(i, j int) bool {
	return q.cmp(q.items[i], q.items[j]) > 0
}

func (q *MinPQ[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// isMinHeap reports whether the subtree rooted at k satisfies the heap property.
func (q *MinPQ[T]) isMinHeap(k int) bool {
	if k > q.n {
		return true
	}
	left, right := 2*k, 2*k+1
	if left <= q.n && q.greater(k, left) {
		return false
	}
	if right <= q.n && q.greater(k, right) {
		return false
	}

	return q.isMinHeap(left) && q.isMinHeap(right)
}
