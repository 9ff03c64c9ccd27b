// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using the pq min-heap.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/tunnels/pq"
)

// frontierEdge is a candidate edge leaving the tree; to is the endpoint outside it.
type frontierEdge struct {
	rankedEdge
	to int
}

// Prim computes the Minimum Spanning Tree (MST) of a connected, undirected, weighted graph
// by growing outwards from root using a lazy min-heap of frontier edges.
//
// Error Conditions:
//   - disjointset.ErrInvalidArgument : vertexCount < 0.
//   - ErrVertexOutOfRange            : an endpoint or root lies outside [0, vertexCount).
//   - ErrDisconnected                : vertexCount == 0 (bare sentinel), or the frontier
//     emptied before vertexCount-1 edges were accepted; only the latter also
//     matches pq.ErrUnderflow.
//
// Steps:
//  1. Validate; vertexCount == 1 → trivial MST when root == 0.
//  2. Build adjacency lists (edge positions per vertex) from the edge list.
//  3. Mark root visited and push its incident edges.
//  4. While fewer than vertexCount-1 edges are accepted:
//     a. ExtractMin the lightest frontier edge.
//     b. If its far endpoint is already visited, skip (it would form a cycle).
//     c. Otherwise accept it, mark the endpoint visited and push its edges to unvisited vertices.
//  5. Return MST edges and total weight.
//
// Equal weights break ties by input position, as in Kruskal.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(edges []Edge, vertexCount, root int, opts ...Option) ([]Edge, int64, error) {
	o := buildOptions(opts)

	// 1. Validate arguments, including the root.
	trivial, err := validate(edges, vertexCount)
	if err != nil {
		return nil, 0, err
	}
	if root < 0 || root >= vertexCount {
		return nil, 0, fmt.Errorf("%w: root %d with vertex count %d", ErrVertexOutOfRange, root, vertexCount)
	}
	if trivial {
		return []Edge{}, 0, nil
	}

	// 2. adj[v] lists positions in edges incident to v; self-loops are dropped.
	adj := make([][]int, vertexCount)
	for i, e := range edges {
		if e.U == e.V {
			continue
		}
		adj[e.U] = append(adj[e.U], i)
		adj[e.V] = append(adj[e.V], i)
	}

	visited := make([]bool, vertexCount)
	frontier := pq.NewFunc(func(a, b frontierEdge) int {
		return compareRanked(a.rankedEdge, b.rankedEdge)
	})
	push := func(from int) {
		for _, pos := range adj[from] {
			e := edges[pos]
			// Orient the edge away from the tree.
			to := e.V
			if to == from {
				to = e.U
			}
			// Edges back into the tree can never be accepted; leave them out.
			if !visited[to] {
				frontier.Insert(frontierEdge{rankedEdge{edge: e, pos: pos}, to})
			}
		}
	}

	// 3. Seed the frontier from root.
	visited[root] = true
	push(root)

	// 4. Main loop: extract smallest edge and expand the tree.
	var (
		want        = vertexCount - 1
		mst         = make([]Edge, 0, want)
		totalWeight int64
	)
	for len(mst) < want {
		// 4a. Pop the lightest frontier edge; an empty frontier means unreachable vertices.
		next, err := frontier.ExtractMin()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: reached %d of %d vertices from root %d: %w",
				ErrDisconnected, len(mst)+1, vertexCount, root, err)
		}

		// 4b. Stale entry: the far endpoint joined the tree after this edge was pushed.
		if visited[next.to] {
			o.logf("prim: discard %s (cycle)", next.edge)
			continue
		}

		// 4c. Accept: pull the endpoint into the tree and record the edge.
		visited[next.to] = true
		mst = append(mst, next.edge)
		totalWeight += next.edge.Weight
		o.logf("prim: accept %s (%d/%d)", next.edge, len(mst), want)

		// 4d. Extend the frontier with the new vertex's outgoing edges.
		push(next.to)
	}

	// 5. Return the completed MST and its total weight.
	return mst, totalWeight, nil
}
