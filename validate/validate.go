// SPDX-License-Identifier: MIT

package validate

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/qigraph/graph"
	"github.com/katalvlaran/qigraph/ops"
	"github.com/katalvlaran/qigraph/partition"
	"github.com/katalvlaran/qigraph/qi"
)

// Validator runs the qi invariant check over one graph.
type Validator struct {
	g            *graph.Graph
	log          *zap.Logger
	qi           *qi.Engine
	ops          *ops.Engine
	seed         int64
	seeded       bool
	maxSteps     int
	strategyName string
	strategy     Strategy
	observers    []Observer
	trace        bool
	start        *partition.Partition
}

// New prepares a Validator for g. Without WithSeed a seed is drawn from
// system entropy and reported in Outcome.Seed.
func New(g *graph.Graph, opts ...Option) (*Validator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.CriticalK() < 1 {
		return nil, fmt.Errorf("New: k'=%d: %w", g.CriticalK(), ErrCriticalUnset)
	}
	v := &Validator{
		g:            g,
		log:          zap.NewNop(),
		strategyName: DefaultStrategy,
		strategy:     RandomMc,
		trace:        true,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.start != nil && v.start.Len() != g.VertexCount() {
		return nil, fmt.Errorf("New: start %d, graph %d: %w", v.start.Len(), g.VertexCount(), ErrStartMismatch)
	}
	if v.qi == nil {
		v.qi = qi.NewEngine()
	}
	if !v.seeded {
		v.seed = ops.EntropySeed()
	}
	eng, err := ops.New(g, ops.WithSeed(v.seed), ops.WithQiEngine(v.qi))
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	v.ops = eng
	return v, nil
}

// Seed returns the seed of the operator random source.
func (v *Validator) Seed() int64 { return v.seed }

// Run validates from P* (or the WithStart partition) until a stop condition. A canceled ctx ends the run
// with StopCanceled and returns the partial Outcome alongside ctx.Err().
func (v *Validator) Run(ctx context.Context) (Outcome, error) {
	start := time.Now()
	critical := v.g.CriticalK()
	out := Outcome{
		Vertices:  v.g.VertexCount(),
		CriticalK: critical,
		Seed:      v.seed,
		Strategy:  v.strategyName,
		Stop:      StopTargetReached,
		Started:   start,
	}
	log := v.log.With(
		zap.Int("n", out.Vertices),
		zap.Int("critical_k", critical),
		zap.Int64("seed", v.seed),
	)

	cur, err := v.initial()
	if err != nil {
		return out, fmt.Errorf("Run: %w", err)
	}

	last, err := v.evaluate(cur, 0)
	if err != nil {
		return out, fmt.Errorf("Run: %w", err)
	}
	v.record(&out, last, log)

	var runErr error
	if last.Verdict == StatusFail {
		out.Stop = StopFailed
	}
	for out.Stop == StopTargetReached && cur.NumBlocks() > critical {
		if err := ctx.Err(); err != nil {
			out.Stop = StopCanceled
			runErr = err
			break
		}
		if v.maxSteps > 0 && out.Steps >= v.maxSteps {
			out.Stop = StopStepLimit
			break
		}

		res := v.strategy(v.ops, cur)
		if !res.Success {
			log.Info("no further operation applies",
				zap.Int("blocks", cur.NumBlocks()),
				zap.String("reason", res.Description),
			)
			out.Stop = StopStalled
			break
		}

		next := res.Partition
		next.Origin = out.Steps
		step, err := v.evaluate(next, out.Steps+1)
		if err != nil {
			return out, fmt.Errorf("Run: step %d: %w", out.Steps+1, err)
		}
		out.Steps++
		v.record(&out, step, log)

		cur, last = next, step
		if step.Verdict == StatusFail {
			out.Stop = StopFailed
		}
	}

	out.Status = last.Verdict
	out.FinalBlocks = cur.NumBlocks()
	out.FinalQi = last.Qi
	out.Required = last.Required
	out.Final = cur
	out.Elapsed = time.Since(start)

	log.Info("validation finished",
		zap.Stringer("status", out.Status),
		zap.Stringer("stop", out.Stop),
		zap.Int("steps", out.Steps),
		zap.Int("final_blocks", out.FinalBlocks),
		zap.Int("final_qi", out.FinalQi),
		zap.Int("required", out.Required),
		zap.Duration("elapsed", out.Elapsed),
	)
	for _, o := range v.observers {
		o.ObserveRun(out)
	}
	return out, runErr
}

func (v *Validator) initial() (*partition.Partition, error) {
	if v.start != nil {
		p := v.start.Clone()
		p.Origin = -1
		p.Operation = "start"
		return p, nil
	}
	p, err := partition.Singletons(v.g.VertexCount())
	if err != nil {
		return nil, err
	}
	p.Operation = "P*"
	return p, nil
}

// evaluate answers qi >= k - k' + 1 for p.
func (v *Validator) evaluate(p *partition.Partition, index int) (Step, error) {
	t0 := time.Now()
	required := p.NumBlocks() - v.g.CriticalK() + 1
	r, err := v.qi.PartitionAtLeast(p, v.g, required)
	if err != nil {
		return Step{}, err
	}
	fp := p.Fingerprint()
	return Step{
		Index:       index,
		Blocks:      p.NumBlocks(),
		Qi:          r.Value,
		Required:    required,
		Method:      r.Method,
		Exact:       r.Exact,
		Verdict:     Verdict(r, required),
		Operation:   p.Operation,
		Fingerprint: hex.EncodeToString(fp[:]),
		Elapsed:     time.Since(t0),
	}, nil
}

func (v *Validator) record(out *Outcome, s Step, log *zap.Logger) {
	if v.trace {
		out.Trace = append(out.Trace, s)
	}
	log.Debug("step",
		zap.Int("step", s.Index),
		zap.Int("blocks", s.Blocks),
		zap.Int("qi", s.Qi),
		zap.Int("required", s.Required),
		zap.Stringer("method", s.Method),
		zap.Stringer("verdict", s.Verdict),
		zap.String("operation", s.Operation),
	)
	for _, o := range v.observers {
		o.ObserveStep(s)
	}
}

// Verdict classifies a qi result against required.
func Verdict(r qi.Result, required int) Status {
	switch {
	case r.Meets(required):
		return StatusPass
	case !r.Determined():
		return StatusPartial
	default:
		return StatusFail
	}
}
