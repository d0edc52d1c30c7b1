// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/qigraph/ops"
	"github.com/katalvlaran/qigraph/partition"
	"github.com/katalvlaran/qigraph/qi"
)

// Sentinel errors.
var (
	// ErrGraphNil indicates New was handed a nil graph.
	ErrGraphNil = errors.New("validate: graph is nil")

	// ErrCriticalUnset indicates the graph carries no critical k' (k' < 1).
	ErrCriticalUnset = errors.New("validate: critical k is not set")

	// ErrUnknownStrategy indicates StrategyByName got an unregistered name.
	ErrUnknownStrategy = errors.New("validate: unknown strategy")

	// ErrStartMismatch indicates a WithStart partition does not cover the graph.
	ErrStartMismatch = errors.New("validate: start partition does not match graph")
)

// Status is the tri-state verdict of a step or a run.
type Status int

const (
	// StatusPass means qi >= required was proven.
	StatusPass Status = iota
	// StatusPartial means qi came back Undetermined.
	StatusPartial
	// StatusFail means an exact qi fell below required.
	StatusFail
)

// String returns PASS, PARTIAL or FAIL.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusPartial:
		return "PARTIAL"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "PASS":
		return StatusPass, true
	case "PARTIAL":
		return StatusPartial, true
	case "FAIL":
		return StatusFail, true
	default:
		return 0, false
	}
}

// StopReason tells why a run ended.
type StopReason int

const (
	// StopTargetReached means k(P) == k'.
	StopTargetReached StopReason = iota
	// StopStalled means the strategy had no candidate.
	StopStalled
	// StopFailed means a step's verdict was FAIL.
	StopFailed
	// StopStepLimit means the configured step limit was reached.
	StopStepLimit
	// StopCanceled means the context was canceled.
	StopCanceled
)

// String returns a stable lowercase name.
func (r StopReason) String() string {
	switch r {
	case StopTargetReached:
		return "target-reached"
	case StopStalled:
		return "stalled"
	case StopFailed:
		return "failed"
	case StopStepLimit:
		return "step-limit"
	case StopCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Step is one evaluated partition. Step 0 is P*.
type Step struct {
	Index     int
	Blocks    int
	Qi        int
	Required  int
	Method    qi.Method
	Exact     bool
	Verdict   Status
	Operation string
	// Fingerprint is the hex blake3 digest of the canonical labeling.
	Fingerprint string
	Elapsed     time.Duration
}

// Outcome summarizes a run.
type Outcome struct {
	Vertices    int
	CriticalK   int
	Seed        int64
	Strategy    string
	Steps       int
	Status      Status
	Stop        StopReason
	FinalBlocks int
	FinalQi     int
	Required    int
	Trace       []Step
	Final       *partition.Partition
	Started     time.Time
	Elapsed     time.Duration
}

// Observer receives each step and the final outcome of every run.
type Observer interface {
	ObserveStep(Step)
	ObserveRun(Outcome)
}

// Strategy rewrites p one step toward fewer blocks.
type Strategy func(e *ops.Engine, p *partition.Partition) ops.Result

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("validate: WithLogger(nil)")
	}
	return func(v *Validator) { v.log = log }
}

// WithSeed fixes the operator random source. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(v *Validator) {
		v.seed = seed
		v.seeded = true
	}
}

// WithQiEngine sets the qi engine. Panics on nil.
func WithQiEngine(q *qi.Engine) Option {
	if q == nil {
		panic("validate: WithQiEngine(nil)")
	}
	return func(v *Validator) { v.qi = q }
}

// WithMaxSteps bounds the number of operator steps; 0 means unbounded.
// Panics if n < 0.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic("validate: WithMaxSteps(n<0)")
	}
	return func(v *Validator) { v.maxSteps = n }
}

// WithStrategy sets the per-step operator under a display name. Panics on nil.
func WithStrategy(name string, s Strategy) Option {
	if s == nil {
		panic("validate: WithStrategy(nil)")
	}
	return func(v *Validator) {
		v.strategyName = name
		v.strategy = s
	}
}

// WithObserver registers an observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		if o != nil {
			v.observers = append(v.observers, o)
		}
	}
}

// WithStart begins the run from p instead of P*. p is cloned by Run and
// never modified.
func WithStart(p *partition.Partition) Option {
	return func(v *Validator) { v.start = p }
}

// WithTrace controls whether Outcome.Trace is kept. Default true.
func WithTrace(on bool) Option {
	return func(v *Validator) { v.trace = on }
}
