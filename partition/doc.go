// SPDX-License-Identifier: MIT

// Package partition models a labeling of a graph's vertices into blocks.
//
// A Partition is a total map vertex -> label over exactly n vertices. Labels
// are non-negative and may be sparse; Renormalize compacts them to 0..k-1 in
// first-occurrence order. A block is the set of vertices sharing a label and
// k is the number of distinct labels.
//
// Derived properties (interior edge count, independence, per-block
// connectivity) are computed lazily against a *graph.Graph and cached behind
// a dirty flag. Any SetLabel that changes a label clears the cache, including
// the memoized qi entry. The cache is keyed on the graph pointer, so asking
// about a different graph recomputes.
//
// Ownership:
//
//   - A Partition is a plain value owned by its creator. It is not safe for
//     concurrent mutation; share clones instead.
//   - Clone is deep: labels, cached properties, qi entry and metadata.
//
// Canonical form and identity:
//
//   - Canonical returns the renormalized copy; two partitions with the same
//     blocks have identical canonical labels (SameBlocks).
//   - Fingerprint is a BLAKE3-256 digest of the canonical labels, used to
//     detect revisited block structures without keeping full copies.
//
// Metadata (Origin, Operation) is diagnostic only and never affects equality.
package partition
