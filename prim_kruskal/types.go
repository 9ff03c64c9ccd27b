// Package prim_kruskal defines the Edge model, configuration options and
// sentinel errors for MST computation. It supports selecting between Kruskal
// and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tunnels/disjointset"
)

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Errors carrying it also match
// pq.ErrUnderflow when the edge queue ran dry.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrVertexOutOfRange indicates an edge endpoint or Prim root outside [0, vertexCount).
var ErrVertexOutOfRange = errors.New("prim_kruskal: vertex id out of range")

// ErrUnknownMethod indicates MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Edge is an undirected, weighted connection between vertices U and V.
// It is a plain value: copy it freely, never mutate it after construction.
type Edge struct {
	U, V   int   // endpoint vertex ids in [0, vertexCount)
	Weight int64 // cost of the connection
}

// Compare orders edges by Weight only; endpoints never participate.
// It makes Edge usable with pq.NewComparable.
func (e Edge) Compare(other Edge) int {
	switch {
	case e.Weight < other.Weight:
		return -1
	case e.Weight > other.Weight:
		return 1
	default:
		return 0
	}
}

// String renders the edge as "U-V(Weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.U, e.V, e.Weight)
}

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (min-heap of all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, for Prim which starting
// vertex to use, and where trace output goes.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — start vertex id for Prim; ignored when Method == MethodKruskal.
//	Logf   func   — receives one line per accepted or discarded edge; nil is silent.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Logf is an optional trace sink.
	Logf func(format string, v ...interface{})
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithLogf returns an Option that routes per-edge trace lines to logf.
func WithLogf(logf func(format string, v ...interface{})) Option {
	return func(opts *MSTOptions) {
		opts.Logf = logf
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal)
//	– Logf   = nil (silent).
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o MSTOptions) logf(format string, v ...interface{}) {
	if o.Logf != nil {
		o.Logf(format, v...)
	}
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodKruskal: calls Kruskal(edges, vertexCount, opts...).
//	– MethodPrim:    calls Prim(edges, vertexCount, Root, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Returns:
//
//	[]Edge — edges of the MST in acceptance order (empty for a single vertex).
//	int64  — total weight of the MST (zero if no edges).
//	error  — non-nil if computation cannot proceed; the other results are then nil and 0.
func Compute(edges []Edge, vertexCount int, opts ...Option) ([]Edge, int64, error) {
	o := buildOptions(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(edges, vertexCount, opts...)
	case MethodPrim:
		return Prim(edges, vertexCount, o.Root, opts...)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate applies the checks shared by Kruskal and Prim.
// trivial is true when the answer is known without running the algorithm.
func validate(edges []Edge, vertexCount int) (trivial bool, err error) {
	if vertexCount < 0 {
		return false, fmt.Errorf("prim_kruskal: vertex count %d: %w", vertexCount, disjointset.ErrInvalidArgument)
	}
	// By convention an empty vertex set has no spanning tree.
	if vertexCount == 0 {
		return false, ErrDisconnected
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= vertexCount || e.V < 0 || e.V >= vertexCount {
			return false, fmt.Errorf("%w: edge #%d %s with vertex count %d", ErrVertexOutOfRange, i, e, vertexCount)
		}
	}

	return vertexCount == 1, nil
}
