package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tunnels/disjointset"
	"github.com/katalvlaran/tunnels/pq"
	"github.com/katalvlaran/tunnels/prim_kruskal" // package under test
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge = prim_kruskal.Edge

// buildTriangle returns a weighted triangle:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// Its MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle() []edge {
	return []edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}, {U: 0, V: 2, Weight: 3}}
}

// buildMediumGraph creates a connected edge list with n vertices and edgesCount edges.
//   - First, a chain 0—1—...—(n-1) with random weights [1..10] guarantees connectivity.
//   - Then (edgesCount - (n-1)) extra random non-loop edges with weights [1..100].
//
// The generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int, seed int64) []edge {
	r := rand.New(rand.NewSource(seed))
	edges := make([]edge, 0, edgesCount)
	for i := 1; i < n; i++ {
		edges = append(edges, edge{U: i - 1, V: i, Weight: int64(1 + r.Intn(10))})
	}
	for len(edges) < edgesCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, edge{U: u, V: v, Weight: int64(1 + r.Intn(100))})
	}
	// Shuffle so the chain is not trivially first in the input.
	r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	return edges
}

// isSpanningTree checks, independently of disjointset, that tree has n-1 edges,
// uses only edges from the input and connects all n vertices (hence is acyclic).
func isSpanningTree(t *testing.T, tree []edge, n int) bool {
	t.Helper()
	if len(tree) != n-1 {
		return false
	}
	adj := make([][]int, n)
	for _, e := range tree {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	seen := make([]bool, n)
	stack := []int{0}
	seen[0] = true
	reached := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				reached++
				stack = append(stack, v)
			}
		}
	}

	return reached == n
}

// bruteForceMST enumerates every (n-1)-subset of edges and returns the lightest spanning tree weight.
func bruteForceMST(t *testing.T, edges []edge, n int) (int64, bool) {
	t.Helper()
	best, found := int64(0), false
	pick := make([]edge, 0, n-1)
	var rec func(start int)
	rec = func(start int) {
		if len(pick) == n-1 {
			if isSpanningTree(t, pick, n) {
				var w int64
				for _, e := range pick {
					w += e.Weight
				}
				if !found || w < best {
					best, found = w, true
				}
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick = append(pick, edges[i])
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)

	return best, found
}

func totalOf(tree []edge) int64 {
	var w int64
	for _, e := range tree {
		w += e.Weight
	}

	return w
}

// TestKruskal_FourVertexScenario checks the reference scenario from the tunnel planner.
func TestKruskal_FourVertexScenario(t *testing.T) {
	edges := []edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
		{U: 0, V: 3, Weight: 10},
		{U: 0, V: 2, Weight: 4},
	}

	mst, total, err := prim_kruskal.Kruskal(edges, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Equal(t, []edge{edges[0], edges[1], edges[2]}, mst)

	mstP, totalP, errP := prim_kruskal.Prim(edges, 4, 0)
	require.NoError(t, errP)
	assert.Equal(t, int64(6), totalP)
	assert.ElementsMatch(t, mst, mstP)
}

// TestDisconnected_Underflow verifies that two components surface as ErrDisconnected
// wrapping pq.ErrUnderflow, with no partial result.
func TestDisconnected_Underflow(t *testing.T) {
	edges := []edge{{U: 0, V: 1, Weight: 1}, {U: 2, V: 3, Weight: 1}}

	mst, total, err := prim_kruskal.Kruskal(edges, 4)
	assert.Nil(t, mst)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.ErrorIs(t, err, pq.ErrUnderflow)

	mstP, totalP, errP := prim_kruskal.Prim(edges, 4, 0)
	assert.Nil(t, mstP)
	assert.Zero(t, totalP)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
	assert.ErrorIs(t, errP, pq.ErrUnderflow)
}

// TestEmptyGraph_NoUnderflow verifies that an empty vertex set is rejected up front:
// ErrDisconnected alone, since no queue was ever drained.
func TestEmptyGraph_NoUnderflow(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.NotErrorIs(t, err, pq.ErrUnderflow)

	_, _, errP := prim_kruskal.Prim(nil, 0, 0)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
	assert.NotErrorIs(t, errP, pq.ErrUnderflow)
}

// TestValidation_EmptyOrInvalid covers vertex counts and endpoints that cannot form a tree.
func TestValidation_EmptyOrInvalid(t *testing.T) {
	cases := []struct {
		name  string
		edges []edge
		n     int
		want  error
	}{
		{"EmptyGraph", nil, 0, prim_kruskal.ErrDisconnected},
		{"NegativeCount", nil, -1, disjointset.ErrInvalidArgument},
		{"EndpointTooLarge", []edge{{U: 0, V: 5, Weight: 1}}, 3, prim_kruskal.ErrVertexOutOfRange},
		{"EndpointNegative", []edge{{U: -1, V: 1, Weight: 1}}, 3, prim_kruskal.ErrVertexOutOfRange},
		{"TwoIsolatedVertices", nil, 2, prim_kruskal.ErrDisconnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edgesK, totalK, errK := prim_kruskal.Kruskal(tc.edges, tc.n)
			assert.Empty(t, edgesK)
			assert.Zero(t, totalK)
			assert.ErrorIs(t, errK, tc.want)

			edgesP, totalP, errP := prim_kruskal.Prim(tc.edges, tc.n, 0)
			assert.Empty(t, edgesP)
			assert.Zero(t, totalP)
			assert.ErrorIs(t, errP, tc.want)
		})
	}
}

// TestPrim_RootOutOfRange verifies the root must be a real vertex.
func TestPrim_RootOutOfRange(t *testing.T) {
	_, _, err := prim_kruskal.Prim(buildTriangle(), 3, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrVertexOutOfRange)

	_, _, err = prim_kruskal.Prim(buildTriangle(), 3, -1)
	assert.ErrorIs(t, err, prim_kruskal.ErrVertexOutOfRange)
}

// TestSingleVertexGraph verifies that one vertex (even with a self-loop) yields an empty MST.
func TestSingleVertexGraph(t *testing.T) {
	loops := []edge{{U: 0, V: 0, Weight: 5}}

	mstK, totalK, errK := prim_kruskal.Kruskal(loops, 1)
	assert.NoError(t, errK)
	assert.Empty(t, mstK)
	assert.NotNil(t, mstK)
	assert.Zero(t, totalK)

	mstP, totalP, errP := prim_kruskal.Prim(loops, 1, 0)
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestTriangle ensures both algorithms pick edges 0—1 and 1—2.
func TestTriangle(t *testing.T) {
	g := buildTriangle()
	for name, run := range map[string]func() ([]edge, int64, error){
		"Kruskal": func() ([]edge, int64, error) { return prim_kruskal.Kruskal(g, 3) },
		"Prim":    func() ([]edge, int64, error) { return prim_kruskal.Prim(g, 3, 2) },
	} {
		t.Run(name, func(t *testing.T) {
			mst, total, err := run()
			require.NoError(t, err)
			assert.Equal(t, int64(3), total)
			assert.ElementsMatch(t, []edge{g[0], g[1]}, mst)
		})
	}
}

// TestParallelEdgesAndLoops verifies the lighter parallel edge wins and loops are ignored.
func TestParallelEdgesAndLoops(t *testing.T) {
	edges := []edge{
		{U: 0, V: 0, Weight: 0},
		{U: 0, V: 1, Weight: 5},
		{U: 1, V: 0, Weight: 1},
		{U: 1, V: 1, Weight: 0},
	}

	mstK, totalK, errK := prim_kruskal.Kruskal(edges, 2)
	require.NoError(t, errK)
	assert.Equal(t, int64(1), totalK)
	assert.Equal(t, []edge{edges[2]}, mstK)

	mstP, totalP, errP := prim_kruskal.Prim(edges, 2, 0)
	require.NoError(t, errP)
	assert.Equal(t, int64(1), totalP)
	assert.Equal(t, []edge{edges[2]}, mstP)
}

// TestKruskal_TieBreakByInputOrder verifies equal weights resolve by input position.
func TestKruskal_TieBreakByInputOrder(t *testing.T) {
	square := []edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 1},
		{U: 3, V: 0, Weight: 1},
	}
	mst, total, err := prim_kruskal.Kruskal(square, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, square[:3], mst)

	reversed := []edge{square[3], square[2], square[1], square[0]}
	mst, total, err = prim_kruskal.Kruskal(reversed, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, reversed[:3], mst)
}

// TestKruskal_Logf checks the trace sink sees accepted and discarded edges in order.
func TestKruskal_Logf(t *testing.T) {
	edges := append(buildTriangle(), edge{U: 2, V: 3, Weight: 10})
	var lines []string
	logf := func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	}

	_, total, err := prim_kruskal.Kruskal(edges, 4, prim_kruskal.WithLogf(logf))
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
	assert.Equal(t, []string{
		"kruskal: accept 0-1(1) (1/3)",
		"kruskal: accept 1-2(2) (2/3)",
		"kruskal: discard 0-2(3) (cycle)",
		"kruskal: accept 2-3(10) (3/3)",
	}, lines)
}

// TestCompute_Dispatch verifies option resolution and the unknown-method error.
func TestCompute_Dispatch(t *testing.T) {
	g := buildMediumGraph(12, 30, 3)

	mstK, totalK, err := prim_kruskal.Compute(g, 12)
	require.NoError(t, err)
	assert.Len(t, mstK, 11)

	mstP, totalP, err := prim_kruskal.Compute(g, 12,
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot(5))
	require.NoError(t, err)
	assert.Len(t, mstP, 11)
	assert.Equal(t, totalK, totalP)

	_, _, err = prim_kruskal.Compute(g, 12, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestEdge_Compare verifies that ordering depends on weight only.
func TestEdge_Compare(t *testing.T) {
	a := edge{U: 9, V: 8, Weight: 2}
	b := edge{U: 0, V: 1, Weight: 3}
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(edge{U: 1, V: 2, Weight: 2}))
	assert.Equal(t, "9-8(2)", a.String())
}

// TestBruteForce_SmallGraphs cross-checks both algorithms against exhaustive enumeration.
func TestBruteForce_SmallGraphs(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		n := 2 + int(seed%5)     // 2..6 vertices
		m := n - 1 + int(seed%4) // up to 3 extra edges
		g := buildMediumGraph(n, m, seed)

		want, ok := bruteForceMST(t, g, n)
		require.True(t, ok, "seed %d: generator must produce a connected graph", seed)

		mstK, totalK, errK := prim_kruskal.Kruskal(g, n)
		require.NoError(t, errK, "seed %d", seed)
		assert.True(t, isSpanningTree(t, mstK, n), "seed %d: Kruskal result is not a spanning tree", seed)
		assert.Equal(t, want, totalK, "seed %d", seed)
		assert.Equal(t, totalK, totalOf(mstK), "seed %d", seed)

		mstP, totalP, errP := prim_kruskal.Prim(g, n, int(seed)%n)
		require.NoError(t, errP, "seed %d", seed)
		assert.True(t, isSpanningTree(t, mstP, n), "seed %d: Prim result is not a spanning tree", seed)
		assert.Equal(t, want, totalP, "seed %d", seed)
	}
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on a larger randomly generated graph.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(200, 800, 42)

	mstK, totalK, errK := prim_kruskal.Kruskal(g, 200)
	require.NoError(t, errK)
	assert.True(t, isSpanningTree(t, mstK, 200))

	mstP, totalP, errP := prim_kruskal.Prim(g, 200, 0)
	require.NoError(t, errP)
	assert.True(t, isSpanningTree(t, mstP, 200))

	assert.Equal(t, totalK, totalP)
}

// TestKruskal_InputUntouched verifies the caller's edge slice is not reordered.
func TestKruskal_InputUntouched(t *testing.T) {
	g := buildMediumGraph(20, 60, 9)
	snapshot := append([]edge(nil), g...)

	_, _, err := prim_kruskal.Kruskal(g, 20)
	require.NoError(t, err)
	assert.Equal(t, snapshot, g)
}
