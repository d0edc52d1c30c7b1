package dfs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/qigraph/graph"
)

// frame is one level of the explicit DFS stack: the vertex and the next
// members index to probe from it.
type frame struct {
	v    int
	next int
}

// SpanningTree grows a DFS tree from members[0] inside the subgraph induced
// by members. Members not reachable from the root are left out of the tree.
func SpanningTree(g *graph.Graph, members []int) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(members) == 0 {
		return nil, ErrEmptySubset
	}

	n := g.VertexCount()
	var v int
	for _, v = range members {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("dfs: SpanningTree member %d: %w", v, ErrVertexOutOfRange)
		}
	}

	root := members[0]
	t := &Tree{
		Root:    root,
		Order:   []int{root},
		Parent:  map[int]int{root: -1},
		members: append([]int(nil), members...),
		degree:  make(map[int]int, len(members)),
	}

	visited := bitset.New(uint(n))
	visited.Set(uint(root))
	stack := []frame{{v: root}}

	var top *frame
	var w int
	for len(stack) > 0 {
		top = &stack[len(stack)-1]
		descended := false
		for top.next < len(members) {
			w = members[top.next]
			top.next++
			if visited.Test(uint(w)) || !g.HasEdge(top.v, w) {
				continue
			}
			visited.Set(uint(w))
			t.Parent[w] = top.v
			t.Order = append(t.Order, w)
			t.degree[top.v]++
			t.degree[w]++
			stack = append(stack, frame{v: w})
			descended = true
			break
		}
		if !descended {
			stack = stack[:len(stack)-1]
		}
	}

	return t, nil
}

// Leaves returns the tree vertices of degree one, in members order.
// A single-member subset is its own leaf. A root with no reachable
// neighbors among several members yields no leaves.
func (t *Tree) Leaves() []int {
	if len(t.members) == 1 {
		return []int{t.Root}
	}
	var leaves []int
	seen := make(map[int]struct{}, len(t.members))
	var v int
	for _, v = range t.members {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if t.degree[v] == 1 {
			leaves = append(leaves, v)
		}
	}
	return leaves
}

// Size returns the number of vertices reached from Root.
func (t *Tree) Size() int { return len(t.Order) }
