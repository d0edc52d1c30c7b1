// SPDX-License-Identifier: MIT
// Package graph_test locks in construction policy (bounds, dropped edges,
// duplicate collapse) and the read-only query surface of graph.Graph.

package graph_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qigraph/graph"
)

// ring5 returns the edges of C5 on vertices 0..4.
func ring5() []graph.Edge {
	return []graph.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
}

func TestNew_VertexBounds(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -3, true},
		{"one", 1, false},
		{"limit", graph.MaxVertices, false},
		{"over limit", graph.MaxVertices + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := graph.New(tt.n, nil)
			if tt.wantErr {
				require.ErrorIs(t, err, graph.ErrInvalidVertexCount)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n, g.VertexCount())
			assert.Zero(t, g.EdgeCount())
		})
	}
}

func TestNew_DropsMalformedEdges(t *testing.T) {
	edges := append(ring5(),
		graph.Edge{U: 2, V: 2},  // self-loop
		graph.Edge{U: -1, V: 3}, // out of range
		graph.Edge{U: 4, V: 5},  // out of range
		graph.Edge{U: 1, V: 0},  // reversed duplicate
		graph.Edge{U: 0, V: 1},  // duplicate
	)

	g, err := graph.New(5, edges, graph.WithCriticalK(4))
	require.NoError(t, err)

	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 4, g.CriticalK())

	dropped := g.Dropped()
	require.Len(t, dropped, 3)
	assert.Equal(t, graph.DropSelfLoop, dropped[0].Reason)
	assert.Equal(t, graph.DropOutOfRange, dropped[1].Reason)
	assert.Equal(t, graph.DropOutOfRange, dropped[2].Reason)
	assert.Equal(t, "self-loop", dropped[0].Reason.String())

	// Dropped returns a copy.
	dropped[0].Edge.U = 99
	assert.Equal(t, 2, g.Dropped()[0].Edge.U)
}

func TestGraph_Queries(t *testing.T) {
	g, err := graph.New(5, ring5())
	require.NoError(t, err)

	for u := 0; u < 5; u++ {
		assert.False(t, g.HasEdge(u, u), "no self loops")
		for v := 0; v < 5; v++ {
			assert.Equal(t, g.HasEdge(u, v), g.HasEdge(v, u), "symmetry %d,%d", u, v)
		}
		assert.Equal(t, 2, g.Degree(u))
	}
	assert.False(t, g.HasEdge(-1, 0))
	assert.False(t, g.HasEdge(0, 5))
	assert.Zero(t, g.Degree(7))

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, nbs)

	_, err = g.Neighbors(5)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	assert.Equal(t, []graph.Edge{{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4}}, g.Edges())
	assert.Equal(t, "0-4", g.Edges()[1].String())
}

func TestGraph_AdjacentToAny(t *testing.T) {
	g, err := graph.New(5, ring5())
	require.NoError(t, err)

	set := bitset.New(5)
	set.Set(2).Set(3)

	assert.True(t, g.AdjacentToAny(1, set))
	assert.True(t, g.AdjacentToAny(4, set))
	assert.False(t, g.AdjacentToAny(0, set))
	assert.False(t, g.AdjacentToAny(0, nil))
	assert.False(t, g.AdjacentToAny(9, set))
}

func TestWithCriticalK_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { graph.WithCriticalK(-1) })
}
