package bfs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/qigraph/graph"
)

// Components returns the connected components of the subgraph of g induced
// by members. Duplicate members are ignored. An empty subset yields nil.
func Components(g *graph.Graph, members []int) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(members) == 0 {
		return nil, nil
	}

	n := g.VertexCount()
	var v int
	for _, v = range members {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("bfs: Components member %d: %w", v, ErrVertexOutOfRange)
		}
	}

	visited := bitset.New(uint(n))
	queue := make([]int, 0, len(members))
	var comps [][]int

	var start, cur, w int
	for _, start = range members {
		if visited.Test(uint(start)) {
			continue
		}
		visited.Set(uint(start))
		comp := []int{start}
		queue = append(queue[:0], start)

		for len(queue) > 0 {
			cur = queue[0]
			queue = queue[1:]
			for _, w = range members {
				if visited.Test(uint(w)) || !g.HasEdge(cur, w) {
					continue
				}
				visited.Set(uint(w))
				queue = append(queue, w)
				comp = append(comp, w)
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// Connected reports whether the subgraph induced by members is connected.
// The empty subset and singletons are connected.
func Connected(g *graph.Graph, members []int) (bool, error) {
	comps, err := Components(g, members)
	if err != nil {
		return false, err
	}
	return len(comps) <= 1, nil
}
