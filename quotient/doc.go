// SPDX-License-Identifier: MIT

// Package quotient derives the quotient graph of a partition.
//
// Given a partition P of a graph G, the quotient graph Q has one vertex per
// block of P, and an edge between two blocks iff some vertex of one is
// adjacent in G to some vertex of the other. Q is a pure function of (P, G)
// and is rebuilt on demand; it is never cached across label mutations.
//
// Vertex order: quotient vertex i is the i-th smallest block label. Index
// maps a label back to its position.
//
// Complexity:
//
//   - Build: O(n²/64) word operations; each vertex row is OR-ed into its
//     block's neighbor-vertex set, then folded per block label.
//   - Adjacent: O(1). Mask: O(k/64).
package quotient
