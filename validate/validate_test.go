// SPDX-License-Identifier: MIT

package validate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/qigraph/builder"
	"github.com/katalvlaran/qigraph/graph"
	"github.com/katalvlaran/qigraph/partition"
	"github.com/katalvlaran/qigraph/qi"
	"github.com/katalvlaran/qigraph/quotient"
	"github.com/katalvlaran/qigraph/validate"
)

// recorder counts observer callbacks.
type recorder struct {
	steps []validate.Step
	runs  []validate.Outcome
}

func (r *recorder) ObserveStep(s validate.Step)    { r.steps = append(r.steps, s) }
func (r *recorder) ObserveRun(o validate.Outcome) { r.runs = append(r.runs, o) }

func build(t *testing.T, critical int, c builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithCriticalK(critical)}, c)
	require.NoError(t, err)
	return g
}

func run(t *testing.T, g *graph.Graph, opts ...validate.Option) validate.Outcome {
	t.Helper()
	v, err := validate.New(g, append([]validate.Option{validate.WithLogger(zaptest.NewLogger(t))}, opts...)...)
	require.NoError(t, err)
	out, err := v.Run(context.Background())
	require.NoError(t, err)
	return out
}

func TestNew_Errors(t *testing.T) {
	_, err := validate.New(nil)
	require.ErrorIs(t, err, validate.ErrGraphNil)

	g, err := graph.New(3, nil)
	require.NoError(t, err)
	_, err = validate.New(g)
	require.ErrorIs(t, err, validate.ErrCriticalUnset)
}

func TestRun_CyclePasses(t *testing.T) {
	// Merging adjacent arcs of a cycle leaves a cycle quotient, so every
	// step meets k - 4 + 1.
	g := build(t, 4, builder.Cycle(7))
	out := run(t, g, validate.WithSeed(3))

	assert.Equal(t, validate.StatusPass, out.Status)
	assert.Equal(t, validate.StopTargetReached, out.Stop)
	assert.Equal(t, 3, out.Steps)
	assert.Equal(t, 4, out.FinalBlocks)
	assert.Equal(t, 1, out.Required)
	assert.Equal(t, 2, out.FinalQi)
	assert.Equal(t, int64(3), out.Seed)
	require.Len(t, out.Trace, 4)
	assert.Equal(t, "P*", out.Trace[0].Operation)
	for i, s := range out.Trace {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, 7-i, s.Blocks)
		assert.Equal(t, validate.StatusPass, s.Verdict)
		assert.Len(t, s.Fingerprint, 64)
	}
	assert.True(t, out.Final.IsNonDegenerate())
}

func TestRun_TargetAlreadyReached(t *testing.T) {
	g, err := builder.Preset("wheel", 6)
	require.NoError(t, err)
	out := run(t, g, validate.WithSeed(1))
	assert.Equal(t, validate.StatusPass, out.Status)
	assert.Equal(t, validate.StopTargetReached, out.Stop)
	assert.Zero(t, out.Steps)
	assert.Equal(t, 2, out.FinalQi)
}

func TestRun_FailsWhenMergeRaisesChromatic(t *testing.T) {
	// Any Mc on C6 yields a C5 quotient: qi 2 < 5 - 3 + 1.
	g := build(t, 3, builder.Cycle(6))
	out := run(t, g, validate.WithSeed(9))

	assert.Equal(t, validate.StatusFail, out.Status)
	assert.Equal(t, validate.StopFailed, out.Stop)
	assert.Equal(t, 1, out.Steps)
	assert.Equal(t, 5, out.FinalBlocks)
	assert.Equal(t, 2, out.FinalQi)
	assert.Equal(t, 3, out.Required)
	assert.True(t, out.Trace[1].Exact)
}

func TestRun_InitialFailure(t *testing.T) {
	g := build(t, 3, builder.Complete(5))
	out := run(t, g, validate.WithSeed(1))
	assert.Equal(t, validate.StatusFail, out.Status)
	assert.Equal(t, validate.StopFailed, out.Stop)
	assert.Zero(t, out.Steps)
}

func TestRun_PartialWhenUndetermined(t *testing.T) {
	weak := qi.NewEngine(
		qi.WithExactLimit(1),
		qi.WithColorer(func(q *quotient.Graph) (int, error) { return q.K(), nil }),
	)
	g := build(t, 4, builder.Cycle(7))
	out := run(t, g, validate.WithSeed(2), validate.WithQiEngine(weak))

	assert.Equal(t, validate.StatusPartial, out.Status)
	assert.Equal(t, validate.StopTargetReached, out.Stop)
	assert.Equal(t, 3, out.Steps)
	assert.Equal(t, qi.Undetermined, out.FinalQi)
	for _, s := range out.Trace {
		assert.Equal(t, validate.StatusPartial, s.Verdict)
	}
}

func TestRun_Stalled(t *testing.T) {
	g, err := graph.New(4, nil, graph.WithCriticalK(2))
	require.NoError(t, err)
	out := run(t, g, validate.WithSeed(1))
	assert.Equal(t, validate.StatusPass, out.Status)
	assert.Equal(t, validate.StopStalled, out.Stop)
	assert.Zero(t, out.Steps)
	assert.Equal(t, 4, out.FinalBlocks)
}

func TestRun_StepLimit(t *testing.T) {
	g := build(t, 4, builder.Cycle(7))
	out := run(t, g, validate.WithSeed(1), validate.WithMaxSteps(1))
	assert.Equal(t, validate.StopStepLimit, out.Stop)
	assert.Equal(t, 1, out.Steps)
	assert.Equal(t, 6, out.FinalBlocks)
}

func TestRun_Canceled(t *testing.T) {
	g := build(t, 4, builder.Cycle(7))
	v, err := validate.New(g, validate.WithSeed(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := v.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, validate.StopCanceled, out.Stop)
	assert.Len(t, out.Trace, 1)
}

func TestRun_SameSeedSameTrace(t *testing.T) {
	g, err := builder.Preset("petersen", 0)
	require.NoError(t, err)

	a := run(t, g, validate.WithSeed(77))
	b := run(t, g, validate.WithSeed(77))
	require.Equal(t, len(a.Trace), len(b.Trace))
	for i := range a.Trace {
		assert.Equal(t, a.Trace[i].Fingerprint, b.Trace[i].Fingerprint)
		assert.Equal(t, a.Trace[i].Qi, b.Trace[i].Qi)
	}
	assert.Equal(t, a.Status, b.Status)
}

func TestRun_ObserversAndLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	rec := &recorder{}
	g := build(t, 4, builder.Cycle(9))

	v, err := validate.New(g,
		validate.WithSeed(5),
		validate.WithLogger(zap.New(core)),
		validate.WithObserver(rec),
		validate.WithObserver(nil),
		validate.WithTrace(false),
	)
	require.NoError(t, err)
	out, err := v.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.Trace)
	assert.Len(t, rec.steps, out.Steps+1)
	require.Len(t, rec.runs, 1)
	assert.Equal(t, out.Status, rec.runs[0].Status)

	done := logs.FilterMessage("validation finished").All()
	require.Len(t, done, 1)
	assert.Equal(t, "PASS", done[0].ContextMap()["status"])
	assert.Equal(t, "target-reached", done[0].ContextMap()["stop"])
}

func TestRun_SuMcStallsOnSingletons(t *testing.T) {
	s, err := validate.StrategyByName("sumc")
	require.NoError(t, err)
	g := build(t, 4, builder.Cycle(7))
	out := run(t, g, validate.WithSeed(1), validate.WithStrategy("sumc", s))
	assert.Equal(t, validate.StopStalled, out.Stop)
	assert.Equal(t, "sumc", out.Strategy)
}

func TestRun_ScMuFromStartPartition(t *testing.T) {
	s, err := validate.StrategyByName("scmu")
	require.NoError(t, err)
	g := build(t, 4, builder.Cycle(7))

	out := run(t, g, validate.WithSeed(1), validate.WithStrategy("scmu", s))
	assert.Equal(t, validate.StopStalled, out.Stop)
	assert.Zero(t, out.Steps)

	start, err := partition.New([]int{0, 0, 1, 1, 2, 3, 4})
	require.NoError(t, err)
	out = run(t, g, validate.WithSeed(1), validate.WithStrategy("scmu", s),
		validate.WithStart(start), validate.WithMaxSteps(2))

	require.GreaterOrEqual(t, out.Steps, 1)
	require.NotEmpty(t, out.Trace)
	assert.Equal(t, "start", out.Trace[0].Operation)
	assert.Equal(t, validate.StatusPass, out.Trace[0].Verdict)
	for _, st := range out.Trace {
		assert.Equal(t, 5, st.Blocks, "ScMu keeps the block count")
	}
	assert.Equal(t, []int{0, 0, 1, 1, 2, 3, 4}, start.Labels())
}

func TestNew_StartMismatch(t *testing.T) {
	g := build(t, 4, builder.Cycle(7))
	start, err := partition.New([]int{0, 1, 2})
	require.NoError(t, err)
	_, err = validate.New(g, validate.WithStart(start))
	require.ErrorIs(t, err, validate.ErrStartMismatch)
}

func TestStrategies(t *testing.T) {
	assert.Equal(t, []string{"random-mc", "scmu", "sumc"}, validate.Strategies())
	_, err := validate.StrategyByName("greedy")
	require.ErrorIs(t, err, validate.ErrUnknownStrategy)
}

func TestVerdictAndStatus(t *testing.T) {
	assert.Equal(t, validate.StatusPass, validate.Verdict(qi.Result{Value: 3}, 3))
	assert.Equal(t, validate.StatusFail, validate.Verdict(qi.Result{Value: 2, Exact: true}, 3))
	assert.Equal(t, validate.StatusPartial, validate.Verdict(qi.Result{Value: qi.Undetermined}, 3))

	for _, s := range []validate.Status{validate.StatusPass, validate.StatusPartial, validate.StatusFail} {
		got, ok := validate.ParseStatus(s.String())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := validate.ParseStatus("MAYBE")
	assert.False(t, ok)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { validate.WithLogger(nil) })
	assert.Panics(t, func() { validate.WithQiEngine(nil) })
	assert.Panics(t, func() { validate.WithMaxSteps(-1) })
	assert.Panics(t, func() { validate.WithStrategy("x", nil) })
}
