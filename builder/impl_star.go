// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// impl_star.go: Star(n) and Wheel(n) constructors.
//
// Canonical definitions:
//   • Star:  hub at the offset, leaves offset+1..offset+n-1; n ≥ 2.
//   • Wheel: Wₙ = Cₙ₋₁ + hub; rim at offset..offset+n-2, hub last; n ≥ 4.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar    = "Star"
	minStarNodes  = 2
	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer cycle has n-1 ≥ 3 vertices
)

// Star returns a Constructor for the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := d.AddVertices(n)
		for i := 1; i < n; i++ {
			d.AddEdge(hub, hub+i)
		}
		return nil
	}
}

// Wheel returns a Constructor for the wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		rim := d.VertexCount()
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := d.AddVertices(1)
		for i := 0; i < n-1; i++ {
			d.AddEdge(hub, rim+i)
		}
		return nil
	}
}
