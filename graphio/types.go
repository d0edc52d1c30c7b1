// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrSyntax indicates a line that cannot be parsed.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrMissingHeader indicates the input has no vertex-count line.
	ErrMissingHeader = errors.New("graphio: missing vertex count")

	// ErrNilGraph indicates Write was handed a nil graph.
	ErrNilGraph = errors.New("graphio: graph is nil")
)

// CriticalPrefix introduces the critical k' line.
const CriticalPrefix = "k="

// Option configures a Read or Load call.
type Option func(*options)

type options struct {
	log       *zap.Logger
	criticalK int
}

func newOptions(opts ...Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes dropped-edge warnings to log. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("graphio: WithLogger(nil)")
	}
	return func(o *options) { o.log = log }
}

// WithCriticalK sets k' for inputs without a k= line. Panics if k < 0.
func WithCriticalK(k int) Option {
	if k < 0 {
		panic("graphio: WithCriticalK(k<0)")
	}
	return func(o *options) { o.criticalK = k }
}
