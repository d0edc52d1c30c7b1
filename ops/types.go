// SPDX-License-Identifier: MIT

package ops

import (
	"errors"

	"github.com/katalvlaran/qigraph/partition"
	"github.com/katalvlaran/qigraph/qi"
)

// ErrGraphNil is returned by New when no graph is supplied.
var ErrGraphNil = errors.New("ops: graph is nil")

// Kind names an operator.
type Kind int

const (
	// Sc splits a leaf off a connected component.
	Sc Kind = iota
	// Su splits a disconnected block into its components.
	Su
	// Mu merges two non-adjacent blocks.
	Mu
	// Mc merges two adjacent blocks.
	Mc
	// ScMu is Sc followed by Mu.
	ScMu
	// SuMc is Su followed by Mc.
	SuMc
)

// String returns the operator mnemonic.
func (k Kind) String() string {
	switch k {
	case Sc:
		return "Sc"
	case Su:
		return "Su"
	case Mu:
		return "Mu"
	case Mc:
		return "Mc"
	case ScMu:
		return "ScMu"
	case SuMc:
		return "SuMc"
	default:
		return "unknown"
	}
}

// Result is the outcome of one attempted transformation.
type Result struct {
	// Kind is the operator that produced this result.
	Kind Kind

	// Success reports whether Partition holds a transformed partition.
	Success bool

	// Partition is the new partition on success. RandomMc without
	// candidates sets it to a copy of the input.
	Partition *partition.Partition

	// Description is a human-readable account, or the failure reason.
	Description string

	// InteriorEdgeDelta is interior edges after minus before.
	InteriorEdgeDelta int

	// Block1 and Block2 are the targeted labels; -1 when not applicable.
	Block1, Block2 int

	// Moved lists vertices whose label changed, in operation order.
	Moved []int
}

// Source draws uniform integers in [0, n). Implementations used from
// several goroutines must be safe for concurrent use.
type Source interface {
	Intn(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed uses a deterministic source; seed 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.src = NewSource(seed) }
}

// WithSource injects a random source. Panics if src is nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("ops: WithSource: nil source")
	}
	return func(e *Engine) { e.src = src }
}

// WithQiEngine sets the engine used by ScMu candidate ranking. Panics if q is nil.
func WithQiEngine(q *qi.Engine) Option {
	if q == nil {
		panic("ops: WithQiEngine: nil engine")
	}
	return func(e *Engine) { e.qi = q }
}
