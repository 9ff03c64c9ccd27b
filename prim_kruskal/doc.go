// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an undirected,
// weighted graph given as a flat edge list: Kruskal’s algorithm (the default) and
// Prim’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why here: the cheapest network of tunnels linking every dig site is exactly the MST of
//     the site graph, with tunnel cost as the edge weight.
//
// Input model
//
//	Vertices are the integers 0..vertexCount-1; how they map to real locations is the
//	caller's business (see package gridgraph). Edges are Edge{U, V, Weight} values.
//	Self-loops and parallel edges are tolerated.
//
// Algorithms Provided
//
//   - Kruskal(edges, vertexCount, opts...) ([]Edge, int64, error)
//
//   - Strategy: heapify all edges (pq.MinPQ.Build, O(E)), then repeatedly extract the lightest
//     one. A disjointset.DisjointSet tells whether its endpoints are already connected; if not,
//     the edge is accepted and the two sets are merged. Stop once |V|−1 edges are accepted.
//
//   - Complexity: O(E + k·log E) with k the number of extracted edges, O(V + E) memory.
//
//   - Prim(edges, vertexCount, root, opts...) ([]Edge, int64, error)
//
//   - Strategy: grow a single tree from root, keeping a min-heap of candidate edges that leave it.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Determinism
//
//	Equal-weight edges are ordered by their position in the input slice, so both algorithms
//	return the same edges in the same order on every run. The total weight is independent of
//	this choice; the edge set may differ from other tie-break rules when equal-weight cycles exist.
//
// Error Conditions
//
//   - disjointset.ErrInvalidArgument – vertexCount < 0.
//   - ErrVertexOutOfRange            – an edge endpoint (or Prim root) is outside [0, vertexCount).
//   - ErrDisconnected                – vertexCount == 0, or the edges run out before the tree spans
//     every vertex. In the latter case the error also matches pq.ErrUnderflow.
//   - ErrUnknownMethod               – Compute with a Method other than MethodKruskal/MethodPrim.
//
// No partial forest is ever returned together with an error.
//
// Tracing
//
//	WithLogf(logf) receives one line per accepted or discarded edge.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
