// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// impl_grid.go: Grid(rows, cols) constructor.
//
// Canonical model:
//   • 4-neighborhood grid; vertex (r,c) has index offset + r*cols + c.
//   • For each cell in row-major order emit Right then Bottom when present.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := d.AddVertices(rows * cols)
		var r, c, v int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				v = base + r*cols + c
				if c+1 < cols {
					d.AddEdge(v, v+1)
				}
				if r+1 < rows {
					d.AddEdge(v, v+cols)
				}
			}
		}
		return nil
	}
}
