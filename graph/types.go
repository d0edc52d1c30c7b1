// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
)

// MaxVertices is the capacity limit of a Graph. The dense matrix at this
// size costs 32 MiB; larger inputs belong to a sparse representation.
const MaxVertices = 1 << 14

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidVertexCount indicates n is outside [1, MaxVertices].
	ErrInvalidVertexCount = errors.New("graph: invalid vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNilGraph indicates a nil *Graph was supplied.
	ErrNilGraph = errors.New("graph: graph is nil")
)

// Edge is an unordered vertex pair. Edges returned by a Graph always have U < V.
type Edge struct {
	U int
	V int
}

// String renders the edge as "u-v".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// DropReason explains why an input edge was discarded.
type DropReason int

const (
	// DropOutOfRange marks an edge with an endpoint outside [0, n).
	DropOutOfRange DropReason = iota
	// DropSelfLoop marks an edge whose endpoints coincide.
	DropSelfLoop
)

// String returns a stable lowercase name for logs.
func (r DropReason) String() string {
	switch r {
	case DropOutOfRange:
		return "out-of-range"
	case DropSelfLoop:
		return "self-loop"
	default:
		return "unknown"
	}
}

// DroppedEdge records a malformed input edge and why it was ignored.
type DroppedEdge struct {
	Edge   Edge
	Reason DropReason
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithCriticalK sets the critical block count k' carried by the graph.
// Negative values are a programmer error and panic.
func WithCriticalK(k int) Option {
	if k < 0 {
		panic("graph: WithCriticalK(k<0)")
	}
	return func(g *Graph) { g.criticalK = k }
}
