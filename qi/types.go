// SPDX-License-Identifier: MIT

package qi

import (
	"errors"

	"github.com/katalvlaran/qigraph/quotient"
)

// Undetermined is the qi value reported when the computation was abandoned.
const Undetermined = -1

// DefaultExactLimit is the largest quotient size searched exactly by default.
const DefaultExactLimit = 15

// MaxExactLimit bounds exact search to single-word block masks.
const MaxExactLimit = 63

// Sentinel errors for qi computation.
var (
	// ErrNilQuotient is returned when a nil quotient graph is passed.
	ErrNilQuotient = errors.New("qi: quotient graph is nil")

	// ErrTooLarge is returned by Exact when k exceeds MaxExactLimit.
	ErrTooLarge = errors.New("qi: quotient too large for exact search")

	// ErrNilInput is returned when a nil partition or graph is passed.
	ErrNilInput = errors.New("qi: nil partition or graph")
)

// Method tells how a Result was obtained.
type Method int

const (
	// MethodTrivial is k <= 1: qi = 0 without search.
	MethodTrivial Method = iota
	// MethodExact is branch-and-bound search.
	MethodExact
	// MethodFast is the DSATUR lower bound.
	MethodFast
	// MethodUndetermined means no sufficient value was computed.
	MethodUndetermined
	// MethodCached is a memoized partition entry.
	MethodCached
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case MethodTrivial:
		return "trivial"
	case MethodExact:
		return "exact"
	case MethodFast:
		return "fast"
	case MethodUndetermined:
		return "undetermined"
	case MethodCached:
		return "cached"
	default:
		return "unknown"
	}
}

// Result is one qi answer.
type Result struct {
	// Value is the qi-number, a lower bound, or Undetermined.
	Value int

	// Method tells how Value was obtained.
	Method Method

	// K is the quotient size.
	K int

	// Threshold is the requested minimum (<= 0 for a plain query).
	Threshold int

	// Exact is true when Value is the true qi-number.
	Exact bool
}

// Determined reports whether Value is not Undetermined.
func (r Result) Determined() bool { return r.Value != Undetermined }

// Meets reports whether the result proves qi >= t.
func (r Result) Meets(t int) bool { return r.Determined() && r.Value >= t }

// Colorer returns the number of colors of a proper coloring of q.
type Colorer func(q *quotient.Graph) (int, error)

// Observer receives every Result produced by an Engine, cached ones included.
type Observer interface {
	ObserveQi(Result)
}

// Option configures an Engine.
type Option func(*Engine)

// WithExactLimit sets the largest k searched exactly.
// Panics if limit is outside [1, MaxExactLimit].
func WithExactLimit(limit int) Option {
	if limit < 1 || limit > MaxExactLimit {
		panic("qi: WithExactLimit: limit must be in [1, 63]")
	}
	return func(e *Engine) { e.exactLimit = limit }
}

// WithFastFirst controls whether AtLeast tries DSATUR before exact search
// for small k. Large k always uses DSATUR. Default true.
func WithFastFirst(on bool) Option {
	return func(e *Engine) { e.fastFirst = on }
}

// WithColorer replaces the DSATUR colorer. Panics if c is nil.
func WithColorer(c Colorer) Option {
	if c == nil {
		panic("qi: WithColorer: nil colorer")
	}
	return func(e *Engine) { e.colorer = c }
}

// WithObserver registers an observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}
