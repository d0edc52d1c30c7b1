package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qigraph/bfs"
	"github.com/katalvlaran/qigraph/graph"
)

// pathWithGap builds 0-1-2  3-4  5 (three components overall).
func pathWithGap(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(6, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 3, V: 4}})
	require.NoError(t, err)
	return g
}

func TestComponents_InducedSubset(t *testing.T) {
	g := pathWithGap(t)

	tests := []struct {
		name    string
		members []int
		want    [][]int
	}{
		{"whole graph", []int{0, 1, 2, 3, 4, 5}, [][]int{{0, 1, 2}, {3, 4}, {5}}},
		{"middle removed splits path", []int{0, 2, 3}, [][]int{{0}, {2}, {3}}},
		{"input order drives output order", []int{4, 2, 1, 3}, [][]int{{4, 3}, {2, 1}}},
		{"duplicates ignored", []int{0, 0, 1}, [][]int{{0, 1}}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bfs.Components(g, tt.members)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnected(t *testing.T) {
	g := pathWithGap(t)

	ok, err := bfs.Connected(g, []int{0, 1, 2})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bfs.Connected(g, []int{0, 2})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = bfs.Connected(g, []int{5})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestComponents_Errors(t *testing.T) {
	_, err := bfs.Components(nil, []int{0})
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Components(pathWithGap(t), []int{0, 6})
	assert.ErrorIs(t, err, bfs.ErrVertexOutOfRange)
}
