// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/qigraph/dfs"
	"github.com/katalvlaran/qigraph/graph"
	"github.com/katalvlaran/qigraph/partition"
	"github.com/katalvlaran/qigraph/qi"
	"github.com/katalvlaran/qigraph/quotient"
)

// Engine applies operators to partitions of one fixed graph.
type Engine struct {
	g   *graph.Graph
	src Source
	qi  *qi.Engine
}

// New returns an Engine over g. Without WithSeed/WithSource the engine
// draws from a source seeded once from system entropy.
func New(g *graph.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	e := &Engine{g: g}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = NewSource(EntropySeed())
	}
	if e.qi == nil {
		e.qi = qi.NewEngine()
	}
	return e, nil
}

// Graph returns the graph the engine operates on.
func (e *Engine) Graph() *graph.Graph { return e.g }

// Sc moves a leaf of a DFS spanning tree of one component of block into a
// new block labeled MaxLabel()+1. compIdx selects the component (in BFS
// order); -1 picks the first component with at least two vertices.
func (e *Engine) Sc(p *partition.Partition, block, compIdx int) Result {
	res := Result{Kind: Sc, Block1: block, Block2: -1}
	if !e.fits(p) {
		res.Description = "Sc failed: partition does not match graph"
		return res
	}
	comps, err := p.BlockComponents(e.g, block)
	if err != nil {
		res.Description = fmt.Sprintf("Sc failed: block %d not found", block)
		return res
	}

	var target []int
	for i, c := range comps {
		if len(c) >= 2 && (compIdx == -1 || i == compIdx) {
			target = c
			break
		}
	}
	if len(target) < 2 {
		res.Description = "Sc failed: no splittable component found"
		return res
	}

	var leaves []int
	if tree, err := dfs.SpanningTree(e.g, target); err == nil {
		leaves = tree.Leaves()
	}
	if len(leaves) == 0 {
		leaves = target
	}
	v := leaves[e.src.Intn(len(leaves))]

	out := p.Clone()
	_ = out.SetLabel(v, p.MaxLabel()+1)
	res.Moved = []int{v}
	res.Description = fmt.Sprintf("Sc: split block %d (moved vertex %d)", block, v)
	return e.succeed(res, p, out)
}

// Su keeps the first component of a disconnected block and relabels every
// further component with consecutive labels after MaxLabel().
func (e *Engine) Su(p *partition.Partition, block int) Result {
	res := Result{Kind: Su, Block1: block, Block2: -1}
	if !e.fits(p) {
		res.Description = "Su failed: partition does not match graph"
		return res
	}
	comps, err := p.BlockComponents(e.g, block)
	if err != nil {
		res.Description = fmt.Sprintf("Su failed: block %d not found", block)
		return res
	}
	if len(comps) <= 1 {
		res.Description = fmt.Sprintf("Su failed: block %d is already connected", block)
		return res
	}

	out := p.Clone()
	next := p.MaxLabel() + 1
	for _, c := range comps[1:] {
		for _, v := range c {
			_ = out.SetLabel(v, next)
			res.Moved = append(res.Moved, v)
		}
		next++
	}
	res.Description = fmt.Sprintf("Su: split unconnected block %d into %d blocks", block, len(comps))
	return e.succeed(res, p, out)
}

// Mu merges non-adjacent blocks b2 into b1 and renormalizes labels.
func (e *Engine) Mu(p *partition.Partition, b1, b2 int) Result {
	return e.merge(Mu, p, b1, b2)
}

// Mc merges adjacent blocks b2 into b1 and renormalizes labels.
func (e *Engine) Mc(p *partition.Partition, b1, b2 int) Result {
	return e.merge(Mc, p, b1, b2)
}

func (e *Engine) merge(kind Kind, p *partition.Partition, b1, b2 int) Result {
	res := Result{Kind: kind, Block1: b1, Block2: b2}
	if !e.fits(p) {
		res.Description = fmt.Sprintf("%s failed: partition does not match graph", kind)
		return res
	}
	if b1 == b2 {
		res.Description = fmt.Sprintf("%s failed: cannot merge block %d with itself", kind, b1)
		return res
	}
	for _, b := range []int{b1, b2} {
		if !p.HasBlock(b) {
			res.Description = fmt.Sprintf("%s failed: block %d not found", kind, b)
			return res
		}
	}

	adjacent, _ := quotient.BlocksAdjacent(p, e.g, b1, b2)
	switch {
	case kind == Mu && adjacent:
		res.Description = fmt.Sprintf("Mu failed: blocks %d and %d are connected", b1, b2)
		return res
	case kind == Mc && !adjacent:
		res.Description = fmt.Sprintf("Mc failed: blocks %d and %d are not connected", b1, b2)
		return res
	}

	out := p.Clone()
	res.Moved = p.BlockVertices(b2)
	_ = out.Relabel(b2, b1)
	out.Renormalize()
	if kind == Mu {
		res.Description = fmt.Sprintf("Mu: merged blocks %d and %d", b1, b2)
	} else {
		res.Description = fmt.Sprintf("Mc: merged connected blocks %d and %d", b1, b2)
	}
	return e.succeed(res, p, out)
}

// AreBlocksConnected reports whether b1 and b2 are quotient-adjacent.
// Equal, missing or mismatched inputs are never connected.
func (e *Engine) AreBlocksConnected(p *partition.Partition, b1, b2 int) bool {
	ok, err := quotient.BlocksAdjacent(p, e.g, b1, b2)
	return err == nil && ok
}

// QiPairs lists non-adjacent block pairs (Mu candidates), lexicographically.
func (e *Engine) QiPairs(p *partition.Partition) []quotient.Pair {
	return e.pairs(p, false)
}

// ConnectedBlockPairs lists adjacent block pairs (Mc candidates), lexicographically.
func (e *Engine) ConnectedBlockPairs(p *partition.Partition) []quotient.Pair {
	return e.pairs(p, true)
}

func (e *Engine) pairs(p *partition.Partition, adjacent bool) []quotient.Pair {
	q, err := quotient.Build(p, e.g)
	if err != nil {
		return nil
	}
	return q.Pairs(adjacent)
}

// FindAllSc returns one successful Sc per splittable component, blocks in
// ascending label order.
func (e *Engine) FindAllSc(p *partition.Partition) []Result {
	if !e.fits(p) {
		return nil
	}
	var out []Result
	for _, b := range p.BlockLabels() {
		comps, err := p.BlockComponents(e.g, b)
		if err != nil {
			continue
		}
		for i, c := range comps {
			if len(c) < 2 {
				continue
			}
			if r := e.Sc(p, b, i); r.Success {
				out = append(out, r)
			}
		}
	}
	return out
}

// FindAllSu returns one successful Su per disconnected block.
func (e *Engine) FindAllSu(p *partition.Partition) []Result {
	if !e.fits(p) {
		return nil
	}
	var out []Result
	for _, b := range p.BlockLabels() {
		if ok, err := p.IsBlockConnected(e.g, b); err != nil || ok {
			continue
		}
		if r := e.Su(p, b); r.Success {
			out = append(out, r)
		}
	}
	return out
}

// FindAllMu returns a successful Mu for every qi-pair.
func (e *Engine) FindAllMu(p *partition.Partition) []Result {
	var out []Result
	for _, pr := range e.QiPairs(p) {
		if r := e.Mu(p, pr.A, pr.B); r.Success {
			out = append(out, r)
		}
	}
	return out
}

// FindAllMc returns a successful Mc for every adjacent pair.
func (e *Engine) FindAllMc(p *partition.Partition) []Result {
	var out []Result
	for _, pr := range e.ConnectedBlockPairs(p) {
		if r := e.Mc(p, pr.A, pr.B); r.Success {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) fits(p *partition.Partition) bool {
	return p != nil && p.Len() == e.g.VertexCount()
}

// succeed finalizes a successful result: properties of out are evaluated
// and the interior-edge delta against the input is recorded.
func (e *Engine) succeed(res Result, before, out *partition.Partition) Result {
	was, _ := before.InteriorEdges(e.g)
	now, _ := out.InteriorEdges(e.g)
	out.Operation = res.Description
	res.Success = true
	res.Partition = out
	res.InteriorEdgeDelta = now - was
	return res
}
