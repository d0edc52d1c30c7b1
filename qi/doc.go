// SPDX-License-Identifier: MIT

// Package qi computes the qi-number of a partition's quotient graph.
//
// For a quotient graph Q on k vertices, qi(Q) is the maximum over partitions
// of V(Q) into independent sets S1..Sm of Σ max(|Si|-1, 0). The sum
// telescopes to k - m, so qi(Q) = k - χ(Q). A single block has qi = 0.
//
// Strategies:
//
//   - Exact: branch-and-bound over uint64 block masks. The lowest remaining
//     block anchors a new set; every independent subset of its non-neighbors
//     may join it. A branch is cut when score + |remaining| - 1 cannot beat
//     the best seen. With a threshold the search stops as soon as best >= t.
//     Used when k <= the exact limit (default 15, at most 63).
//   - Fast: DSATUR greedy coloring (gonum graph/coloring) with c colors gives
//     qi_fast = k - c. Any proper coloring has c >= χ, so qi_fast <= qi: the
//     fast value is a sound lower bound, never an overestimate.
//
// Thresholded queries (AtLeast):
//
//   - t <= 0 degrades to Number.
//   - The fast value is tried first; if it reaches t it is returned.
//   - Otherwise small k runs exact search with early exit, and large k
//     returns Undetermined (-1). A fast value below t proves nothing.
//   - A coloring error falls back to exact search for small k and to
//     Undetermined for large k. Errors never escape as failures of the query.
//
// Memoization: Partition and PartitionAtLeast store a partition.QiEntry on
// the partition. An entry is reused when it is exact, when its value already
// meets the new threshold, or when the new threshold is not above the one
// that produced it. A higher threshold against an inexact entry recomputes.
//
// Undetermined is a value, not an error: it means the engine declined the
// cost of proving the threshold.
package qi
