// SPDX-License-Identifier: MIT

// Package builder assembles graph.Graph fixtures from composable constructors.
//
// A Constructor appends one connected piece (cycle, wheel, Platonic shell,
// Mycielski graph, ...) to a Draft; BuildGraph runs constructors in order and
// freezes the Draft into an immutable *graph.Graph. Each constructor's
// vertices continue the Draft's numbering, so several constructors compose
// into a disjoint union.
//
// Components:
//
//   - BuildGraph(bopts, cons...): the single orchestrator.
//   - BuilderOption: WithSeed, WithRand for stochastic constructors and
//     WithCriticalK for the threshold carried by the built graph.
//   - Topologies: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
//     Grid, RandomSparse, PlatonicSolid, Petersen, Grotzsch, Chvatal,
//     Mycielski.
//   - Families: named presets with the critical k used by validation runs
//     (see Preset and Families).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give the same
//     vertex numbering and edge set.
//   - Constructors validate parameters and return wrapped sentinels; they
//     never panic. Option constructors panic on meaningless values.
package builder
