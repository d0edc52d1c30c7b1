// SPDX-License-Identifier: MIT
// Package builder_test checks vertex/edge counts, parameter validation,
// determinism and the chromatic numbers of the named fixtures.

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qigraph/builder"
	"github.com/katalvlaran/qigraph/graph"
	"github.com/katalvlaran/qigraph/partition"
	"github.com/katalvlaran/qigraph/qi"
	"github.com/katalvlaran/qigraph/quotient"
)

// chromatic returns χ(g) through the singleton quotient.
func chromatic(t *testing.T, g *graph.Graph) int {
	t.Helper()
	p, err := partition.Singletons(g.VertexCount())
	require.NoError(t, err)
	q, err := quotient.Build(p, g)
	require.NoError(t, err)
	c, err := qi.Chromatic(q)
	require.NoError(t, err)
	return c
}

// triangleFree reports whether g has no 3-cycle.
func triangleFree(g *graph.Graph) bool {
	for _, e := range g.Edges() {
		for w := 0; w < g.VertexCount(); w++ {
			if g.HasEdge(e.U, w) && g.HasEdge(e.V, w) {
				return false
			}
		}
	}
	return true
}

func TestConstructors_Counts(t *testing.T) {
	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Path(4)", builder.Path(4), 4, 3},
		{"Star(6)", builder.Star(6), 6, 5},
		{"Wheel(6)", builder.Wheel(6), 6, 10},
		{"Complete(5)", builder.Complete(5), 5, 10},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron, false), 4, 6},
		{"Cube", builder.PlatonicSolid(builder.Cube, false), 8, 12},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron, false), 6, 12},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron, false), 20, 30},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron, false), 12, 30},
		{"Cube+center", builder.PlatonicSolid(builder.Cube, true), 9, 20},
		{"Petersen", builder.Petersen(), 10, 15},
		{"Grotzsch", builder.Grotzsch(), 11, 20},
		{"Chvatal", builder.Chvatal(), 12, 24},
		{"Mycielski(2)", builder.Mycielski(2), 2, 1},
		{"Mycielski(3)", builder.Mycielski(3), 5, 5},
		{"Mycielski(5)", builder.Mycielski(5), 23, 71},
		{"RandomSparse(6,1)", builder.RandomSparse(6, 1), 6, 15},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tt.ctor)
			require.NoError(t, err)
			assert.Equal(t, tt.wantV, g.VertexCount())
			assert.Equal(t, tt.wantE, g.EdgeCount())
			assert.Empty(t, g.Dropped())
		})
	}
}

func TestConstructors_Validation(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Mycielski(1)", builder.Mycielski(1), builder.ErrTooFewVertices},
		{"RandomSparse p>1", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"unknown solid", builder.PlatonicSolid(builder.PlatonicName(99), false), builder.ErrOptionViolation},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tt.ctor)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, g)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCriticalK(-1) })
}

func TestRandomSparse_Deterministic(t *testing.T) {
	g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42)))}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithCriticalK(3)},
		builder.Cycle(3), builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(2, 3))
	assert.Equal(t, 3, g.CriticalK())
}

func TestNamedGraphs_Chromatic(t *testing.T) {
	tests := []struct {
		name     string
		ctor     builder.Constructor
		wantChi  int
		triangle bool
	}{
		{"Petersen", builder.Petersen(), 3, false},
		{"Grotzsch", builder.Grotzsch(), 4, false},
		{"Chvatal", builder.Chvatal(), 4, false},
		{"Mycielski(5)", builder.Mycielski(5), 5, false},
		{"Wheel(6)", builder.Wheel(6), 4, true},
		{"Wheel(7)", builder.Wheel(7), 3, true},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron, false), 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tt.ctor)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChi, chromatic(t, g))
			assert.Equal(t, !tt.triangle, triangleFree(g))
		})
	}
}

func TestPreset(t *testing.T) {
	tests := []struct {
		family   string
		n        int
		wantV    int
		critical int
	}{
		{"cycle", 7, 7, 4},
		{"cycle", 4, 4, 3},
		{"wheel", 8, 8, 8},
		{"petersen", 0, 10, 6},
		{"octahedral", 0, 6, 5},
		{"icosahedral", 0, 12, 6},
		{"dodecahedral", 0, 20, 5},
		{"grotzsch", 0, 11, 5},
	}
	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			g, err := builder.Preset(tt.family, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.wantV, g.VertexCount())
			assert.Equal(t, tt.critical, g.CriticalK())
		})
	}

	_, err := builder.Preset("moebius", 8)
	require.ErrorIs(t, err, builder.ErrUnknownFamily)
	_, err = builder.Preset("cycle", 2)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestFamiliesAndSuite(t *testing.T) {
	assert.Equal(t, []string{"cycle", "dodecahedral", "grotzsch", "icosahedral", "octahedral", "petersen", "wheel"},
		builder.Families())

	suite := builder.Suite()
	require.Len(t, suite, 13)
	for _, s := range suite {
		_, ok := builder.Lookup(s.Family)
		assert.True(t, ok, s.Path)
	}
	assert.Equal(t, "procedural/cycles/cycle_7.txt", suite[0].Path)
	assert.Equal(t, "special/grotzsch.txt", suite[12].Path)
}
