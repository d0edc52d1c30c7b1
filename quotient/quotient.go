// SPDX-License-Identifier: MIT

package quotient

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/qigraph/graph"
	"github.com/katalvlaran/qigraph/partition"
)

// Build derives the quotient graph of p over g.
func Build(p *partition.Partition, g *graph.Graph) (*Graph, error) {
	if p == nil || g == nil {
		return nil, ErrNilInput
	}
	n := g.VertexCount()
	if p.Len() != n {
		return nil, fmt.Errorf("quotient: Build: partition %d, graph %d: %w", p.Len(), n, ErrSizeMismatch)
	}

	labels := p.BlockLabels()
	q := newGraph(labels)
	raw := p.Labels()

	// reach[i] = union of G-neighbors of block i's vertices
	reach := make([]*bitset.BitSet, len(labels))
	for i := range reach {
		reach[i] = bitset.New(uint(n))
	}
	var v, w int
	var nbrs []int
	var err error
	for v = 0; v < n; v++ {
		if nbrs, err = g.Neighbors(v); err != nil {
			return nil, fmt.Errorf("quotient: Build: %w", err)
		}
		r := reach[q.index[raw[v]]]
		for _, w = range nbrs {
			r.Set(uint(w))
		}
	}

	var i int
	var u uint
	var ok bool
	for i = range labels {
		for u, ok = reach[i].NextSet(0); ok; u, ok = reach[i].NextSet(u + 1) {
			j := q.index[raw[u]]
			if j != i {
				q.link(i, j)
			}
		}
	}
	return q, nil
}

// New builds a quotient graph directly from k vertices labeled 0..k-1 and
// an edge list over those indices. Self-loops and out-of-range pairs are
// ignored. It exists for tests and for callers that already hold a block graph.
func New(k int, edges [][2]int) *Graph {
	labels := make([]int, k)
	for i := range labels {
		labels[i] = i
	}
	q := newGraph(labels)
	for _, e := range edges {
		if e[0] == e[1] || e[0] < 0 || e[1] < 0 || e[0] >= k || e[1] >= k {
			continue
		}
		q.link(e[0], e[1])
	}
	return q
}

func newGraph(labels []int) *Graph {
	q := &Graph{
		labels: labels,
		index:  make(map[int]int, len(labels)),
		rows:   make([]*bitset.BitSet, len(labels)),
	}
	for i, l := range labels {
		q.index[l] = i
		q.rows[i] = bitset.New(uint(len(labels)))
	}
	return q
}

func (q *Graph) link(i, j int) {
	if q.rows[i].Test(uint(j)) {
		return
	}
	q.rows[i].Set(uint(j))
	q.rows[j].Set(uint(i))
	q.edges++
}

// K returns the number of quotient vertices (blocks).
func (q *Graph) K() int { return len(q.labels) }

// EdgeCount returns the number of quotient edges.
func (q *Graph) EdgeCount() int { return q.edges }

// Labels returns the block labels in quotient-vertex order (ascending).
func (q *Graph) Labels() []int { return append([]int(nil), q.labels...) }

// Label returns the block label of quotient vertex i.
func (q *Graph) Label(i int) (int, error) {
	if i < 0 || i >= len(q.labels) {
		return 0, fmt.Errorf("quotient: Label(%d): %w", i, ErrIndexOutOfRange)
	}
	return q.labels[i], nil
}

// Index returns the quotient vertex of block label, and whether it exists.
func (q *Graph) Index(label int) (int, bool) {
	i, ok := q.index[label]
	return i, ok
}

// Adjacent reports whether quotient vertices i and j are joined.
// Out-of-range indices are never adjacent.
func (q *Graph) Adjacent(i, j int) bool {
	if i < 0 || j < 0 || i >= len(q.rows) || j >= len(q.rows) {
		return false
	}
	return q.rows[i].Test(uint(j))
}

// AdjacentLabels reports whether blocks a and b are quotient-adjacent.
func (q *Graph) AdjacentLabels(a, b int) bool {
	i, ok1 := q.index[a]
	j, ok2 := q.index[b]
	return ok1 && ok2 && q.Adjacent(i, j)
}

// Degree returns the quotient degree of vertex i (0 if out of range).
func (q *Graph) Degree(i int) int {
	if i < 0 || i >= len(q.rows) {
		return 0
	}
	return int(q.rows[i].Count())
}

// Mask returns the neighbor set of vertex i as a uint64 bitmask.
func (q *Graph) Mask(i int) (uint64, error) {
	if len(q.rows) > 64 {
		return 0, ErrMaskTooWide
	}
	if i < 0 || i >= len(q.rows) {
		return 0, fmt.Errorf("quotient: Mask(%d): %w", i, ErrIndexOutOfRange)
	}
	words := q.rows[i].Words()
	if len(words) == 0 {
		return 0, nil
	}
	return words[0], nil
}

// Pairs lists unordered label pairs (A < B) that are adjacent (adjacent ==
// true) or non-adjacent, in lexicographic label order.
func (q *Graph) Pairs(adjacent bool) []Pair {
	var out []Pair
	var i, j int
	for i = 0; i < len(q.labels); i++ {
		for j = i + 1; j < len(q.labels); j++ {
			if q.rows[i].Test(uint(j)) == adjacent {
				out = append(out, Pair{A: q.labels[i], B: q.labels[j]})
			}
		}
	}
	return out
}

// Undirected returns a gonum view of q with node IDs 0..k-1. Its Nodes
// iterator always yields them in quotient order, so gonum's DSATUR breaks
// saturation ties the same way on every call.
func (q *Graph) Undirected() gonumgraph.Undirected {
	ug := simple.NewUndirectedGraph()
	var i, j int
	for i = range q.labels {
		ug.AddNode(simple.Node(int64(i)))
	}
	for i = range q.rows {
		for j = i + 1; j < len(q.rows); j++ {
			if q.rows[i].Test(uint(j)) {
				ug.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
			}
		}
	}
	return orderedView{UndirectedGraph: ug, k: len(q.labels)}
}

// orderedView overrides the map-ordered Nodes of simple.UndirectedGraph.
type orderedView struct {
	*simple.UndirectedGraph
	k int
}

func (v orderedView) Nodes() gonumgraph.Nodes {
	if v.k == 0 {
		return gonumgraph.Empty
	}
	nodes := make([]gonumgraph.Node, v.k)
	for i := range nodes {
		nodes[i] = simple.Node(int64(i))
	}
	return iterator.NewOrderedNodes(nodes)
}

// BlocksAdjacent reports whether blocks b1 and b2 of p are joined by an edge
// of g, without building the whole quotient. Equal labels are never adjacent.
func BlocksAdjacent(p *partition.Partition, g *graph.Graph, b1, b2 int) (bool, error) {
	if p == nil || g == nil {
		return false, ErrNilInput
	}
	if p.Len() != g.VertexCount() {
		return false, fmt.Errorf("quotient: BlocksAdjacent: %w", ErrSizeMismatch)
	}
	if b1 == b2 {
		return false, nil
	}
	second := bitset.New(uint(p.Len()))
	for _, v := range p.BlockVertices(b2) {
		second.Set(uint(v))
	}
	for _, u := range p.BlockVertices(b1) {
		if g.AdjacentToAny(u, second) {
			return true, nil
		}
	}
	return false, nil
}
