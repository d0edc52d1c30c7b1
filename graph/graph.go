// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Graph is an immutable undirected simple graph on vertices 0..n-1.
type Graph struct {
	n         int
	criticalK int
	rows      []*bitset.BitSet // rows[u].Test(v) <=> edge u-v
	edgeCount int
	dropped   []DroppedEdge
}

// New builds a Graph with n vertices from the given edge list.
//
// Malformed edges (out of range, self-loops) are skipped and recorded in
// Dropped; they never fail construction. Only an invalid n is fatal.
//
// Complexity: O(n²/64 + len(edges)) time, O(n²/8) bytes.
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	if n < 1 || n > MaxVertices {
		return nil, fmt.Errorf("New: n=%d not in [1,%d]: %w", n, MaxVertices, ErrInvalidVertexCount)
	}

	g := &Graph{
		n:    n,
		rows: make([]*bitset.BitSet, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	var i int
	for i = 0; i < n; i++ {
		g.rows[i] = bitset.New(uint(n))
	}

	var e Edge
	for _, e = range edges {
		switch {
		case e.U < 0 || e.U >= n || e.V < 0 || e.V >= n:
			g.dropped = append(g.dropped, DroppedEdge{Edge: e, Reason: DropOutOfRange})
		case e.U == e.V:
			g.dropped = append(g.dropped, DroppedEdge{Edge: e, Reason: DropSelfLoop})
		default:
			if g.rows[e.U].Test(uint(e.V)) {
				continue // duplicate
			}
			g.rows[e.U].Set(uint(e.V))
			g.rows[e.V].Set(uint(e.U))
			g.edgeCount++
		}
	}

	return g, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// CriticalK returns the critical block count k' the invariant is checked against.
func (g *Graph) CriticalK() int { return g.criticalK }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Dropped returns a copy of the malformed edges discarded by New.
func (g *Graph) Dropped() []DroppedEdge {
	out := make([]DroppedEdge, len(g.dropped))
	copy(out, g.dropped)
	return out
}

// HasEdge reports whether u and v are adjacent. Out-of-range indices are
// simply not adjacent to anything.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	return g.rows[u].Test(uint(v))
}

// Degree returns the number of neighbors of v, or 0 when v is out of range.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}
	return int(g.rows[v].Count())
}

// Neighbors returns the neighbors of v in ascending order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexOutOfRange)
	}
	row := g.rows[v]
	out := make([]int, 0, row.Count())
	for i, ok := row.NextSet(0); ok; i, ok = row.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out, nil
}

// Edges enumerates every edge once with U < V, sorted by (U, V).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	var u int
	for u = 0; u < g.n; u++ {
		row := g.rows[u]
		for v, ok := row.NextSet(uint(u + 1)); ok; v, ok = row.NextSet(v + 1) {
			out = append(out, Edge{U: u, V: int(v)})
		}
	}
	return out
}

// AdjacentToAny reports whether v has at least one neighbor inside set.
// The set is indexed by vertex and may be shorter than n.
func (g *Graph) AdjacentToAny(v int, set *bitset.BitSet) bool {
	if v < 0 || v >= g.n || set == nil {
		return false
	}
	return g.rows[v].IntersectionCardinality(set) > 0
}
