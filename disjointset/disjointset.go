package disjointset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument indicates a negative set size or an element outside the forest.
var ErrInvalidArgument = errors.New("disjointset: invalid argument")

// DisjointSet partitions 0..n-1 into disjoint sets. It is not safe for concurrent use.
type DisjointSet struct {
	parent []int
}

// New returns a forest of n singleton sets.
// Returns ErrInvalidArgument when n < 0.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: size %d must be non-negative", ErrInvalidArgument, n)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	return &DisjointSet{parent: parent}, nil
}

// Len returns the number of elements in the forest.
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Find returns the root of the set containing x and compresses the path to it.
//
// Steps:
//  1. Walk parent links from x until a negative entry (the root) is reached.
//  2. Walk the same chain again, pointing every visited node directly at the root.
//
// Complexity: O(log n) worst case, amortized near O(1).
func (ds *DisjointSet) Find(x int) (int, error) {
	if err := ds.check(x); err != nil {
		return 0, err
	}
	root := x
	for ds.parent[root] >= 0 {
		root = ds.parent[root]
	}
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing a and b. It is a no-op when they already share a root.
// The larger set's root becomes the root of the merged set; on equal sizes the root of a wins.
// Complexity: O(Find).
func (ds *DisjointSet) Union(a, b int) error {
	aRoot, err := ds.Find(a)
	if err != nil {
		return err
	}
	bRoot, err := ds.Find(b)
	if err != nil {
		return err
	}
	if aRoot == bRoot {
		return nil
	}
	// Sizes are stored negated: the more negative entry is the bigger set.
	bigger, smaller := aRoot, bRoot
	if ds.parent[bRoot] < ds.parent[aRoot] {
		bigger, smaller = bRoot, aRoot
	}
	ds.parent[bigger] += ds.parent[smaller]
	ds.parent[smaller] = bigger

	return nil
}

// Connected reports whether a and b belong to the same set.
func (ds *DisjointSet) Connected(a, b int) (bool, error) {
	aRoot, err := ds.Find(a)
	if err != nil {
		return false, err
	}
	bRoot, err := ds.Find(b)
	if err != nil {
		return false, err
	}

	return aRoot == bRoot, nil
}

// Size returns the number of elements in the set containing x.
func (ds *DisjointSet) Size(x int) (int, error) {
	root, err := ds.Find(x)
	if err != nil {
		return 0, err
	}

	return -ds.parent[root], nil
}

// NumSubsets returns the number of disjoint sets (roots).
// Complexity: O(n).
func (ds *DisjointSet) NumSubsets() int {
	count := 0
	for _, p := range ds.parent {
		if p < 0 {
			count++
		}
	}

	return count
}

// CurrentState renders the raw parent/size array, one "i: parent[i]" line per
// element. It exists for tests and debugging; the format is not an API.
func (ds *DisjointSet) CurrentState() string {
	var sb strings.Builder
	for i, p := range ds.parent {
		fmt.Fprintf(&sb, "%d: %d\n", i, p)
	}

	return sb.String()
}

func (ds *DisjointSet) check(x int) error {
	if x < 0 {
		return fmt.Errorf("%w: element %d must be non-negative", ErrInvalidArgument, x)
	}
	if x >= len(ds.parent) {
		return fmt.Errorf("%w: element %d out of range [0,%d)", ErrInvalidArgument, x, len(ds.parent))
	}

	return nil
}
