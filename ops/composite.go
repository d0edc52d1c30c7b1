// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/qigraph/partition"
	"github.com/katalvlaran/qigraph/quotient"
)

// SelectOptimalSc ranks Sc candidates by the qi-number of their result:
// qi == 2 with the most qi-pairs first (earliest wins ties), then the first
// with qi > 0, then the first candidate. ok is false for an empty slice.
func (e *Engine) SelectOptimalSc(options []Result) (best Result, ok bool) {
	if len(options) == 0 {
		return Result{}, false
	}
	if len(options) == 1 {
		return options[0], true
	}

	bestPairs := -1
	fallback := -1
	for i, opt := range options {
		r, err := e.qi.Partition(opt.Partition, e.g)
		if err != nil {
			continue
		}
		switch {
		case r.Value == 2:
			if n := len(e.QiPairs(opt.Partition)); n > bestPairs {
				bestPairs = n
				best = opt
			}
		case r.Value > 0 && fallback < 0:
			fallback = i
		}
	}
	if bestPairs >= 0 {
		return best, true
	}
	if fallback >= 0 {
		return options[fallback], true
	}
	return options[0], true
}

// SelectOptimalMuPair picks the qi-pair whose blocks have the smallest
// summed degree in the qi-pair graph; the earliest pair wins ties.
func SelectOptimalMuPair(pairs []quotient.Pair) (quotient.Pair, bool) {
	if len(pairs) == 0 {
		return quotient.Pair{}, false
	}
	deg := make(map[int]int)
	for _, pr := range pairs {
		deg[pr.A]++
		deg[pr.B]++
	}
	best := pairs[0]
	lowest := deg[best.A] + deg[best.B]
	for _, pr := range pairs[1:] {
		if d := deg[pr.A] + deg[pr.B]; d < lowest {
			lowest = d
			best = pr
		}
	}
	return best, true
}

// ScMu runs the greedy Sc choice and then the min-degree Mu on its result.
func (e *Engine) ScMu(p *partition.Partition) Result {
	res := Result{Kind: ScMu, Block1: -1, Block2: -1}
	sc, ok := e.SelectOptimalSc(e.FindAllSc(p))
	if !ok {
		res.Description = "ScMu failed: no valid Sc operations available"
		return res
	}
	pair, ok := SelectOptimalMuPair(e.QiPairs(sc.Partition))
	if !ok {
		res.Description = "ScMu failed: no valid Mu operations available after Sc"
		return res
	}
	mu := e.Mu(sc.Partition, pair.A, pair.B)
	if !mu.Success {
		res.Description = "ScMu failed: Mu operation failed after successful Sc"
		return res
	}
	return e.combine(ScMu, p, sc, mu)
}

// SuMc runs the first Su candidate and then Mc on the first adjacent pair.
func (e *Engine) SuMc(p *partition.Partition) Result {
	res := Result{Kind: SuMc, Block1: -1, Block2: -1}
	sus := e.FindAllSu(p)
	if len(sus) == 0 {
		res.Description = "SuMc failed: no valid Su operations available"
		return res
	}
	su := sus[0]
	pairs := e.ConnectedBlockPairs(su.Partition)
	if len(pairs) == 0 {
		res.Description = "SuMc failed: no valid Mc operations available after Su"
		return res
	}
	mc := e.Mc(su.Partition, pairs[0].A, pairs[0].B)
	if !mc.Success {
		res.Description = "SuMc failed: Mc operation failed after successful Su"
		return res
	}
	return e.combine(SuMc, p, su, mc)
}

// RandomMc merges a uniformly drawn adjacent pair. Without candidates it
// returns Success == false with a copy of p, signalling a stall.
func (e *Engine) RandomMc(p *partition.Partition) Result {
	res := Result{Kind: Mc, Block1: -1, Block2: -1}
	pairs := e.ConnectedBlockPairs(p)
	if len(pairs) == 0 {
		res.Description = "Mc failed: no connected block pairs"
		if p != nil {
			res.Partition = p.Clone()
		}
		return res
	}
	pr := pairs[e.src.Intn(len(pairs))]
	return e.Mc(p, pr.A, pr.B)
}

func (e *Engine) combine(kind Kind, before *partition.Partition, first, second Result) Result {
	out := second
	out.Kind = kind
	out.Description = kind.String() + ": " + first.Description + " + " + second.Description
	out.Moved = append(append([]int(nil), first.Moved...), second.Moved...)
	was, _ := before.InteriorEdges(e.g)
	now, _ := out.Partition.InteriorEdges(e.g)
	out.InteriorEdgeDelta = now - was
	out.Partition.Operation = out.Description
	return out
}
