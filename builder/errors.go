// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("<Method>: n=3 < min=4: <sentinel>").
//   • Option constructors (WithX) panic instead of returning errors.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates an unknown enum value passed to a constructor.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates BuildGraph could not produce a graph
// (nil constructor, or the assembled draft was rejected by graph.New).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownFamily indicates Preset was asked for an unregistered family.
var ErrUnknownFamily = errors.New("builder: unknown family")
