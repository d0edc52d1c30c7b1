// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// impl_platonic.go: PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     unknown names → ErrOptionViolation.
//   • Shell vertices occupy offset..offset+V-1; shell edges come from
//     variants_platonic.go in their pre-sorted order.
//   • withCenter appends a hub after the shell, joined to every shell vertex.
//
// Complexity: O(V+E), V ≤ 20, E ≤ 30.

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor for the chosen Platonic shell,
// optionally stellated with a hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(d *Draft, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		base := d.AddVertices(n)
		for _, ch := range edges {
			d.AddEdge(base+ch.U, base+ch.V)
		}

		if withCenter {
			hub := d.AddVertices(1)
			for i := 0; i < n; i++ {
				d.AddEdge(hub, base+i)
			}
		}
		return nil
	}
}
