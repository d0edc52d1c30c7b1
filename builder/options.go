// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCriticalK sets the critical k' stored on the built graph. Panics if k < 0.
func WithCriticalK(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithCriticalK(k<0)")
	}
	return func(c *builderConfig) { c.criticalK = k }
}
