// Package disjointset implements a union-find forest over the integers 0..n-1.
//
// Representation:
//
//	A single []int. A negative entry marks a root and stores the negated size
//	of its set; a non-negative entry is the index of the element's parent.
//
// Operations:
//
//   - Find:  walk to the root, then rewrite every visited node to point at it
//     (full path compression, iterative, no recursion depth limit).
//   - Union: attach the smaller tree under the larger one (union by size);
//     equal sizes keep the root of the first argument.
//   - NumSubsets, CurrentState: inspection helpers, O(n).
//
// Union by size alone bounds every find path by O(log n); with compression the
// amortized cost of Find is effectively constant (inverse Ackermann).
//
// Errors:
//
//	ErrInvalidArgument – negative size, or an element outside [0, n).
package disjointset
