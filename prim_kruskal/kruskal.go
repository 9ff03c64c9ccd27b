// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It consumes a flat edge list over vertex ids 0..vertexCount-1 and produces the MST edges.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/tunnels/disjointset"
	"github.com/katalvlaran/tunnels/pq"
)

// rankedEdge pairs an edge with its input position, the tie-break for equal weights.
type rankedEdge struct {
	edge Edge
	pos  int
}

func compareRanked(a, b rankedEdge) int {
	if c := a.edge.Compare(b.edge); c != 0 {
		return c
	}

	return a.pos - b.pos
}

// Kruskal computes the Minimum Spanning Tree (MST) of a connected, undirected, weighted graph
// given as an edge list. It drains a binary min-heap of all edges and uses a disjoint-set forest
// (path compression, union by size) to reject edges that would close a cycle.
//
// Error Conditions:
//   - disjointset.ErrInvalidArgument : vertexCount < 0.
//   - ErrVertexOutOfRange            : an endpoint lies outside [0, vertexCount).
//   - ErrDisconnected                : vertexCount == 0 (bare sentinel), or the queue
//     underflowed before vertexCount-1 edges were accepted; only the latter also
//     matches pq.ErrUnderflow.
//
// Steps:
//  1. Validate; vertexCount == 1 → trivial MST (empty, weight 0).
//  2. Bulk-build a min-heap over all edges keyed by (Weight, input position).
//  3. Initialize a DisjointSet of size vertexCount.
//  4. While fewer than vertexCount-1 edges are accepted: ExtractMin, Find both endpoints;
//     different roots → accept and Union the roots, same root → discard.
//  5. Return the accepted edges and their total weight.
//
// Self-loops are always discarded; of parallel edges the lightest (earliest on ties) wins.
//
// Complexity: O(E + k·log E + α(V)·k) where k ≤ E is the number of edges extracted.
// Memory: O(E + V).
func Kruskal(edges []Edge, vertexCount int, opts ...Option) ([]Edge, int64, error) {
	o := buildOptions(opts)

	// 1. Validate arguments and short-circuit the single-vertex case.
	trivial, err := validate(edges, vertexCount)
	if err != nil {
		return nil, 0, err
	}
	if trivial {
		return []Edge{}, 0, nil
	}

	// 2. Heapify every edge in linear time.
	ranked := make([]rankedEdge, len(edges))
	for i, e := range edges {
		ranked[i] = rankedEdge{edge: e, pos: i}
	}
	queue := pq.NewFunc(compareRanked)
	queue.Build(ranked)

	// 3. One singleton set per vertex.
	ds, err := disjointset.New(vertexCount)
	if err != nil {
		return nil, 0, err
	}

	// 4. Accept edges cheapest-first until the tree spans every vertex.
	var (
		want        = vertexCount - 1
		mst         = make([]Edge, 0, want)
		totalWeight int64
	)
	for len(mst) < want {
		// 4a. Pop the lightest remaining edge (earliest input position on ties).
		next, err := queue.ExtractMin()
		if err != nil {
			// Out of edges before spanning: the input has more than one component.
			return nil, 0, fmt.Errorf("%w: accepted %d of %d edges: %w", ErrDisconnected, len(mst), want, err)
		}
		e := next.edge

		// 4b. Locate the representative of each endpoint (compresses paths).
		uRoot, err := ds.Find(e.U)
		if err != nil {
			return nil, 0, err
		}
		vRoot, err := ds.Find(e.V)
		if err != nil {
			return nil, 0, err
		}

		// 4c. Same set: the edge would close a cycle (self-loops always land here).
		if uRoot == vRoot {
			o.logf("kruskal: discard %s (cycle)", e)
			continue
		}

		// 4d. Merge the two components; the larger one keeps its root.
		if err := ds.Union(uRoot, vRoot); err != nil {
			return nil, 0, err
		}

		// 4e. Record the edge and accumulate its weight.
		mst = append(mst, e)
		totalWeight += e.Weight
		o.logf("kruskal: accept %s (%d/%d)", e, len(mst), want)
	}

	// 5. Return the built MST and its total weight.
	return mst, totalWeight, nil
}
