// SPDX-License-Identifier: MIT

// Package validate drives a partition from the singleton partition P* down to
// the graph's critical block count k', checking after every step that
//
//	qi(P) >= k(P) - k' + 1
//
// WithStart replaces P* with a caller-supplied partition; the composite
// strategies (SuMc, ScMu) only find candidates from such a start.
//
// Each step applies a Strategy (RandomMc by default) and asks the qi engine
// for a thresholded answer. A step's verdict is PASS when the threshold is
// proven, FAIL when an exact value falls short, and PARTIAL when the engine
// returned Undetermined. The run stops on the first FAIL, when k reaches k'
// (TargetReached), when the strategy finds no candidate (Stalled), or when
// the step limit is hit (StepLimit). The run's Status is the verdict of the
// last evaluated partition.
package validate
