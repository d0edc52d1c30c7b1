// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// impl_random_sparse.go: RandomSparse(n, p) constructor.
//
// Canonical model:
//   • Erdős–Rényi G(n,p): each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be set when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism:
//   • Trial order is i asc, then j asc; fixed seed ⇒ fixed edge set.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := d.AddVertices(n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch {
				case p == probMax:
					d.AddEdge(base+i, base+j)
				case p == probMin:
				case rng.Float64() < p:
					d.AddEdge(base+i, base+j)
				}
			}
		}
		return nil
	}
}
