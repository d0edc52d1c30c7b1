// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/katalvlaran/qigraph/bfs"
	"github.com/katalvlaran/qigraph/graph"
)

// Evaluate returns the cached Properties for g, computing them first if the
// cache is dirty or was filled for another graph.
// Complexity: O(n²/64) for the interior edge scan plus O(Σ|B|²) for block BFS.
func (p *Partition) Evaluate(g *graph.Graph) (Properties, error) {
	if err := p.check(g, "Evaluate"); err != nil {
		return Properties{}, err
	}
	if !p.dirty && p.propsGraph == g {
		return p.props, nil
	}

	var props Properties
	var e graph.Edge
	for _, e = range g.Edges() {
		if p.labels[e.U] == p.labels[e.V] {
			props.InteriorEdges++
		}
	}
	props.Independent = props.InteriorEdges == 0

	props.Connected = true
	for _, members := range p.Blocks() {
		ok, err := bfs.Connected(g, members)
		if err != nil {
			return Properties{}, fmt.Errorf("partition: Evaluate: %w", err)
		}
		if !ok {
			props.Connected = false
			break
		}
	}

	p.props = props
	p.propsGraph = g
	p.dirty = false
	return props, nil
}

// InteriorEdges returns the number of edges inside blocks.
func (p *Partition) InteriorEdges(g *graph.Graph) (int, error) {
	props, err := p.Evaluate(g)
	return props.InteriorEdges, err
}

// IsIndependent reports whether no edge lies inside a block.
func (p *Partition) IsIndependent(g *graph.Graph) (bool, error) {
	props, err := p.Evaluate(g)
	return props.Independent, err
}

// IsConnected reports whether every block induces a connected subgraph.
func (p *Partition) IsConnected(g *graph.Graph) (bool, error) {
	props, err := p.Evaluate(g)
	return props.Connected, err
}

// BlockComponents returns the connected components of block label in g,
// each in BFS order from its smallest vertex.
func (p *Partition) BlockComponents(g *graph.Graph, label int) ([][]int, error) {
	if err := p.check(g, "BlockComponents"); err != nil {
		return nil, err
	}
	members := p.BlockVertices(label)
	if len(members) == 0 {
		return nil, fmt.Errorf("partition: BlockComponents(%d): %w", label, ErrBlockNotFound)
	}
	comps, err := bfs.Components(g, members)
	if err != nil {
		return nil, fmt.Errorf("partition: BlockComponents(%d): %w", label, err)
	}
	return comps, nil
}

// IsBlockConnected reports whether block label induces a connected subgraph.
func (p *Partition) IsBlockConnected(g *graph.Graph, label int) (bool, error) {
	comps, err := p.BlockComponents(g, label)
	if err != nil {
		return false, err
	}
	return len(comps) == 1, nil
}

// IsBlockIndependent reports whether block label contains no edge of g.
func (p *Partition) IsBlockIndependent(g *graph.Graph, label int) (bool, error) {
	if err := p.check(g, "IsBlockIndependent"); err != nil {
		return false, err
	}
	members := p.BlockVertices(label)
	if len(members) == 0 {
		return false, fmt.Errorf("partition: IsBlockIndependent(%d): %w", label, ErrBlockNotFound)
	}
	var i, j int
	for i = 0; i < len(members); i++ {
		for j = i + 1; j < len(members); j++ {
			if g.HasEdge(members[i], members[j]) {
				return false, nil
			}
		}
	}
	return true, nil
}

// CachedQi returns the memoized qi entry for g, if any.
func (p *Partition) CachedQi(g *graph.Graph) (QiEntry, bool) {
	if !p.qiSet || p.qiGraph != g {
		return QiEntry{}, false
	}
	return p.qi, true
}

// StoreQi memoizes e for g, replacing any previous entry.
func (p *Partition) StoreQi(g *graph.Graph, e QiEntry) {
	p.qi = e
	p.qiGraph = g
	p.qiSet = true
}

// DebugString renders labels, k and the cached properties for g.
func (p *Partition) DebugString(g *graph.Graph) string {
	props, err := p.Evaluate(g)
	if err != nil {
		return fmt.Sprintf("%v k=%d (%v)", p.labels, p.NumBlocks(), err)
	}
	qi := "?"
	if e, ok := p.CachedQi(g); ok {
		qi = fmt.Sprint(e.Value)
	}
	return fmt.Sprintf("%v k=%d interior=%d independent=%t connected=%t qi=%s",
		p.labels, p.NumBlocks(), props.InteriorEdges, props.Independent, props.Connected, qi)
}

func (p *Partition) check(g *graph.Graph, method string) error {
	if g == nil {
		return fmt.Errorf("partition: %s: %w", method, ErrGraphNil)
	}
	if g.VertexCount() != len(p.labels) {
		return fmt.Errorf("partition: %s: graph has %d vertices, partition %d: %w",
			method, g.VertexCount(), len(p.labels), ErrSizeMismatch)
	}
	return nil
}
