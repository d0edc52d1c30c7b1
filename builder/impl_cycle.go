// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// impl_cycle.go: Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3; edges i-(i+1)%n for i = 0..n-1.
//   • Path:  n ≥ 2; edges i-(i+1) for i = 0..n-2.
//   • Vertices are appended at the Draft offset in ascending order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
	methodPath    = "Path"
	minPathNodes  = 2
)

// Cycle returns a Constructor for the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := d.AddVertices(n)
		for i := 0; i < n; i++ {
			d.AddEdge(base+i, base+(i+1)%n)
		}
		return nil
	}
}

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := d.AddVertices(n)
		for i := 0; i+1 < n; i++ {
			d.AddEdge(base+i, base+i+1)
		}
		return nil
	}
}
