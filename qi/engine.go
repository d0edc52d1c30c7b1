// SPDX-License-Identifier: MIT

package qi

import (
	"fmt"

	"github.com/katalvlaran/qigraph/graph"
	"github.com/katalvlaran/qigraph/partition"
	"github.com/katalvlaran/qigraph/quotient"
)

// Engine selects between exact and fast strategies by quotient size.
// An Engine holds no mutable state besides its observers and is safe for
// concurrent use when they are.
type Engine struct {
	exactLimit int
	fastFirst  bool
	colorer    Colorer
	observers  []Observer
}

// NewEngine returns an Engine with DefaultExactLimit, fast-first thresholded
// queries and the DSATUR colorer, then applies opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		exactLimit: DefaultExactLimit,
		fastFirst:  true,
		colorer:    DsaturColors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExactLimit returns the largest k searched exactly.
func (e *Engine) ExactLimit() int { return e.exactLimit }

// Number computes qi(q) without a threshold: exact for k <= ExactLimit,
// the fast lower bound above it, Undetermined if coloring fails there.
func (e *Engine) Number(q *quotient.Graph) Result {
	return e.emit(e.number(q))
}

// AtLeast answers "is qi(q) >= t?" as cheaply as possible. A determined
// Value below t is a proven exact maximum; Undetermined proves nothing.
func (e *Engine) AtLeast(q *quotient.Graph, t int) Result {
	return e.emit(e.atLeast(q, t))
}

func (e *Engine) number(q *quotient.Graph) Result {
	k := q.K()
	if k <= 1 {
		return Result{Value: 0, Method: MethodTrivial, K: k, Exact: true}
	}
	if k <= e.exactLimit {
		v, _, err := exactAtLeast(q, 0)
		if err == nil {
			return Result{Value: v, Method: MethodExact, K: k, Exact: true}
		}
	}
	if c, err := e.colorer(q); err == nil {
		return Result{Value: k - c, Method: MethodFast, K: k}
	}
	return Result{Value: Undetermined, Method: MethodUndetermined, K: k}
}

func (e *Engine) atLeast(q *quotient.Graph, t int) Result {
	if t <= 0 {
		return e.number(q)
	}
	k := q.K()
	if k <= 1 {
		return Result{Value: 0, Method: MethodTrivial, K: k, Threshold: t, Exact: true}
	}

	small := k <= e.exactLimit
	if e.fastFirst || !small {
		if c, err := e.colorer(q); err == nil && k-c >= t {
			return Result{Value: k - c, Method: MethodFast, K: k, Threshold: t}
		}
	}
	if small {
		v, complete, err := exactAtLeast(q, t)
		if err == nil {
			return Result{Value: v, Method: MethodExact, K: k, Threshold: t, Exact: complete}
		}
	}
	return Result{Value: Undetermined, Method: MethodUndetermined, K: k, Threshold: t}
}

// Partition computes qi for p over g, reusing the memo on p when possible.
func (e *Engine) Partition(p *partition.Partition, g *graph.Graph) (Result, error) {
	return e.PartitionAtLeast(p, g, 0)
}

// PartitionAtLeast is AtLeast over the quotient of p, memoized on p.
func (e *Engine) PartitionAtLeast(p *partition.Partition, g *graph.Graph, t int) (Result, error) {
	if p == nil || g == nil {
		return Result{}, ErrNilInput
	}
	if entry, ok := p.CachedQi(g); ok && reusable(entry, t) {
		return e.emit(Result{
			Value:     entry.Value,
			Method:    MethodCached,
			K:         p.NumBlocks(),
			Threshold: t,
			Exact:     entry.Exact,
		}), nil
	}

	q, err := quotient.Build(p, g)
	if err != nil {
		return Result{}, fmt.Errorf("qi: PartitionAtLeast: %w", err)
	}
	r := e.atLeast(q, t)
	p.StoreQi(g, partition.QiEntry{Value: r.Value, Threshold: t, Exact: r.Exact})
	return e.emit(r), nil
}

// reusable decides whether a memoized entry answers a query with threshold t.
func reusable(entry partition.QiEntry, t int) bool {
	if entry.Exact {
		return true
	}
	if t <= 0 {
		return entry.Threshold <= 0
	}
	if entry.Value != Undetermined && entry.Value >= t {
		return true
	}
	return entry.Threshold > 0 && t <= entry.Threshold
}

func (e *Engine) emit(r Result) Result {
	for _, o := range e.observers {
		o.ObserveQi(r)
	}
	return r
}
