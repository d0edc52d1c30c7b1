// SPDX-License-Identifier: MIT

// Package graph defines the immutable undirected simple Graph that every other
// qigraph package reads from.
//
// A Graph is a dense adjacency matrix over vertices 0..n-1 stored as one
// bitset row per vertex, together with the critical block count k' that the
// qi invariant is measured against. It is built once through New and never
// mutated afterwards, so it may be shared freely between goroutines.
//
// Construction policy:
//
//   - n outside [1, MaxVertices] fails with ErrInvalidVertexCount.
//   - Out-of-range endpoints and self-loops are dropped, not fatal. The
//     dropped edges are kept and exposed via Dropped so that I/O layers can
//     report them.
//   - Duplicate and reversed duplicates collapse into a single edge.
//
// Complexity:
//
//   - HasEdge:    O(1)
//   - Neighbors:  O(n/64 + deg)
//   - Edges:      O(n²/64 + m)
//   - Memory:     n²/8 bytes for the matrix.
package graph
