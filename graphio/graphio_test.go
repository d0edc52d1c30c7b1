// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/qigraph/builder"
	"github.com/katalvlaran/qigraph/graph"
	"github.com/katalvlaran/qigraph/graphio"
)

const c5 = `5
0 1
1 2
2 3
3 4
4 0
k=4
`

func TestRead_Cycle(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(c5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 4, g.CriticalK())
	assert.True(t, g.HasEdge(0, 4))
}

func TestRead_DropsBadEdgesWithWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	in := "# triangle with junk\n3\n\n0 1\n1 2\n2 0\n1 1\n0 7\n-1 2\n"

	g, err := graphio.Read(strings.NewReader(in), graphio.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Len(t, g.Dropped(), 3)

	entries := logs.FilterMessage("invalid edge ignored").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "self-loop", entries[0].ContextMap()["reason"])
	assert.Equal(t, "out-of-range", entries[1].ContextMap()["reason"])
	assert.EqualValues(t, 7, entries[1].ContextMap()["v"])
}

func TestRead_CriticalDefault(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("2\n0 1\n"), graphio.WithCriticalK(2))
	require.NoError(t, err)
	assert.Equal(t, 2, g.CriticalK())

	g, err = graphio.Read(strings.NewReader("2\n0 1\nk=1\n"), graphio.WithCriticalK(2))
	require.NoError(t, err)
	assert.Equal(t, 1, g.CriticalK(), "k= line wins over the default")
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", graphio.ErrMissingHeader},
		{"comments only", "# nothing\n\n", graphio.ErrMissingHeader},
		{"bad header", "five\n0 1\n", graphio.ErrSyntax},
		{"three fields", "3\n0 1 2\n", graphio.ErrSyntax},
		{"non-numeric edge", "3\n0 x\n", graphio.ErrSyntax},
		{"bad k", "3\n0 1\nk=abc\n", graphio.ErrSyntax},
		{"negative k", "3\nk=-2\n", graphio.ErrSyntax},
		{"zero vertices", "0\n", graph.ErrInvalidVertexCount},
		{"too many vertices", "99999\n", graph.ErrInvalidVertexCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := graphio.Read(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, g)
		})
	}
}

func TestWrite_Format(t *testing.T) {
	g, err := graph.New(5, []graph.Edge{{U: 1, V: 0}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0}},
		graph.WithCriticalK(4))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))
	assert.Equal(t, "5\n0 1\n0 4\n1 2\n2 3\n3 4\nk=4\n", buf.String())

	require.ErrorIs(t, graphio.Write(&buf, nil), graphio.ErrNilGraph)
}

func TestWrite_OmitsUnsetCritical(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, graphio.Write(&buf, g))
	assert.Equal(t, "2\n0 1\n", buf.String())
}

func TestSaveLoad(t *testing.T) {
	g, err := builder.Preset("petersen", 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "special", "petersen.txt")
	require.NoError(t, graphio.Save(path, g))

	got, err := graphio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), got.VertexCount())
	assert.Equal(t, g.Edges(), got.Edges())
	assert.Equal(t, 6, got.CriticalK())

	_, err = graphio.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { graphio.WithLogger(nil) })
	assert.Panics(t, func() { graphio.WithCriticalK(-1) })
}
