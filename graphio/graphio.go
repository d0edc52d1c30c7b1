// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/qigraph/graph"
)

// Read parses one graph from r.
func Read(r io.Reader, opts ...Option) (*graph.Graph, error) {
	o := newOptions(opts...)

	var (
		n      int
		header bool
		edges  []graph.Edge
		line   int
	)
	critical := o.criticalK

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if !header {
			v, err := strconv.Atoi(text)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d: vertex count %q: %w", line, text, ErrSyntax)
			}
			n, header = v, true
			continue
		}

		if strings.HasPrefix(text, CriticalPrefix) {
			v, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(text, CriticalPrefix)))
			if err != nil || v < 0 {
				return nil, fmt.Errorf("Read: line %d: critical k %q: %w", line, text, ErrSyntax)
			}
			critical = v
			continue
		}

		e, err := parseEdge(text)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("Read: %w", ErrMissingHeader)
	}

	g, err := graph.New(n, edges, graph.WithCriticalK(critical))
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	for _, d := range g.Dropped() {
		o.log.Warn("invalid edge ignored",
			zap.Int("u", d.Edge.U),
			zap.Int("v", d.Edge.V),
			zap.Stringer("reason", d.Reason),
			zap.Int("n", n),
		)
	}
	return g, nil
}

// parseEdge reads "u v".
func parseEdge(text string) (graph.Edge, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return graph.Edge{}, fmt.Errorf("edge %q: %w", text, ErrSyntax)
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return graph.Edge{}, fmt.Errorf("edge %q: %w", text, ErrSyntax)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return graph.Edge{}, fmt.Errorf("edge %q: %w", text, ErrSyntax)
	}
	return graph.Edge{U: u, V: v}, nil
}

// Load reads the graph stored at path.
func Load(path string, opts ...Option) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return g, nil
}

// Write emits g in edge-list format. The k= line is written only when
// g carries a critical k'.
func Write(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return fmt.Errorf("Write: %w", ErrNilGraph)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.VertexCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.U, e.V)
	}
	if k := g.CriticalK(); k > 0 {
		fmt.Fprintf(bw, "%s%d\n", CriticalPrefix, k)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}

// Save writes g to path, creating parent directories.
func Save(path string, g *graph.Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("Save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("Save %s: %w", path, err)
	}
	return nil
}
