// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// impl_mycielski.go: Mycielski(k) constructor.
//
// Canonical model:
//   • M2 = K2; M(k+1) is the Mycielskian of M(k): for a graph on n vertices
//     add shadows n..2n-1 (shadow of v joins every neighbor of v) and an
//     apex 2n joined to every shadow.
//   • M3 = C5, M4 = Grötzsch. M(k) is triangle-free with χ = k.
//
// Contract:
//   • k ≥ 2 (else ErrTooFewVertices). Vertex count is 3·2^(k-2) - 1.
//
// Complexity: O(|E(M_k)|) time and space.

package builder

import "fmt"

const (
	methodMycielski = "Mycielski"
	minMycielskiK   = 2
)

// Mycielski returns a Constructor for the Mycielski graph M_k.
func Mycielski(k int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if k < minMycielskiK {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodMycielski, k, minMycielskiK, ErrTooFewVertices)
		}
		n, edges := 2, []chord{{U: 0, V: 1}}
		for step := minMycielskiK; step < k; step++ {
			n, edges = mycielskian(n, edges)
		}
		base := d.AddVertices(n)
		for _, e := range edges {
			d.AddEdge(base+e.U, base+e.V)
		}
		return nil
	}
}

// mycielskian returns the vertex count and edges of the Mycielskian of (n, edges).
func mycielskian(n int, edges []chord) (int, []chord) {
	out := make([]chord, 0, 3*len(edges)+n)
	out = append(out, edges...)
	for _, e := range edges {
		out = append(out, chord{U: e.U, V: n + e.V}, chord{U: e.V, V: n + e.U})
	}
	apex := 2 * n
	for v := 0; v < n; v++ {
		out = append(out, chord{U: n + v, V: apex})
	}
	return 2*n + 1, out
}
