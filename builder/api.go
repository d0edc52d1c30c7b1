// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// api.go: Draft, Constructor and the BuildGraph orchestrator.
//
// Contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against one Draft, then calls graph.New once.
//   • Constructors append vertices through Draft.AddVertices and never touch
//     indices below the offset they were handed.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qigraph/graph"
)

// Draft is a growable vertex count plus edge list, frozen by BuildGraph.
type Draft struct {
	n     int
	edges []graph.Edge
}

// AddVertices reserves k new vertices and returns the index of the first.
func (d *Draft) AddVertices(k int) int {
	first := d.n
	d.n += k
	return first
}

// AddEdge records the undirected edge u-v. Duplicates are collapsed by graph.New.
func (d *Draft) AddEdge(u, v int) {
	d.edges = append(d.edges, graph.Edge{U: u, V: v})
}

// VertexCount returns the number of vertices reserved so far.
func (d *Draft) VertexCount() int { return d.n }

// Constructor appends one topology to a Draft using the resolved config.
// Implementations validate early and return wrapped sentinels; no panics.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor in order and returns
// the frozen graph carrying cfg's critical k.
//
// Complexity: Σ cost of constructors + O(V²/64 + E) for graph.New.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := graph.New(d.n, d.edges, graph.WithCriticalK(cfg.criticalK))
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}
	return g, nil
}
