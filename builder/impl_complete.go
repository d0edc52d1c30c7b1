// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// impl_complete.go: Complete(n) and CompleteBipartite(n1,n2) constructors.
//
// Contract:
//   • Complete: n ≥ 1; every pair i<j joined.
//   • CompleteBipartite: n1, n2 ≥ 1; left side first, then right side;
//     every cross pair joined.
//
// Complexity: O(n²) and O(n1·n2) edges respectively.

package builder

import "fmt"

const (
	methodComplete          = "Complete"
	minCompleteNodes        = 1
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := d.AddVertices(n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				d.AddEdge(base+i, base+j)
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := d.AddVertices(n1)
		right := d.AddVertices(n2)
		var i, j int
		for i = 0; i < n1; i++ {
			for j = 0; j < n2; j++ {
				d.AddEdge(left+i, right+j)
			}
		}
		return nil
	}
}
