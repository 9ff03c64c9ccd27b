// Package pq provides MinPQ, a generic min-priority queue backed by a
// 1-indexed binary heap.
//
// What:
//
//   - Bulk construction in linear time (bottom-up sink heapify).
//   - Insert with sift-up, ExtractMin with sift-down.
//   - PeekMin, Len, IsEmpty and Cap in constant time.
//
// Ordering:
//
//	Each queue is bound to exactly one ordering at construction time:
//	  NewOrdered    – natural "<" order of any constraints.Ordered type.
//	  NewComparable – natural order of a type implementing Compare(T) int.
//	  NewFunc       – an injected comparator func(a, b T) int.
//
// Memory:
//
//	The backing slice doubles when full and halves once occupancy drops to a
//	quarter of capacity, so a long run of operations costs amortized O(log n)
//	each without thrashing. Capacity never drops below 1.
//
// Errors:
//
//	ErrUnderflow – ExtractMin or PeekMin on an empty queue.
//
// A MinPQ is single-owner: it is not safe for concurrent use.
package pq
