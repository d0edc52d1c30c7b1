// SPDX-License-Identifier: MIT

// Package ops implements the partition-rewriting operators.
//
// Primitives (each returns a Result and never mutates its input):
//
//   - Sc  split-connected: move one spanning-tree leaf of a block component
//     of size >= 2 into a fresh block (max label + 1).
//   - Su  split-unconnected: keep a disconnected block's first component
//     and give every further component a fresh consecutive label.
//   - Mu  merge-unconnected: merge two blocks with no quotient edge.
//   - Mc  merge-connected: merge two quotient-adjacent blocks.
//
// Mu and Mc relabel the second block into the first and then renormalize
// labels to 0..k'-1 in first-occurrence order. For any two distinct blocks
// exactly one of Mu and Mc is legal.
//
// Composites:
//
//   - ScMu: Sc chosen greedily (qi == 2 with the most qi-pairs, then any
//     qi > 0, then the first candidate), followed by Mu on the qi-pair with
//     the smallest summed degree in the qi-pair graph.
//   - SuMc: the first Su candidate, then Mc on the first adjacent pair.
//   - RandomMc: Mc on a uniformly drawn adjacent pair; with no candidate it
//     returns an unsuccessful Result carrying the unmodified partition.
//
// A failed precondition is not an error: the Result has Success == false
// and a Description naming the reason.
//
// Randomness comes from an explicit Source. The default source is seeded
// once from system entropy; WithSeed makes runs reproducible.
package ops
