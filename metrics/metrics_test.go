// SPDX-License-Identifier: MIT

package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qigraph/builder"
	"github.com/katalvlaran/qigraph/metrics"
	"github.com/katalvlaran/qigraph/qi"
	"github.com/katalvlaran/qigraph/validate"
)

func TestCollector_ObserveDirect(t *testing.T) {
	c := metrics.NewCollector("test")

	c.ObserveQi(qi.Result{Value: 2, Method: qi.MethodExact, K: 5, Exact: true})
	c.ObserveQi(qi.Result{Value: 2, Method: qi.MethodExact, K: 4, Exact: true})
	c.ObserveQi(qi.Result{Value: qi.Undetermined, Method: qi.MethodUndetermined, K: 40})
	c.ObserveStep(validate.Step{Verdict: validate.StatusPass, Elapsed: time.Millisecond})
	c.ObserveStep(validate.Step{Verdict: validate.StatusPartial})
	c.ObserveRun(validate.Outcome{Status: validate.StatusPartial, Stop: validate.StopStalled, FinalBlocks: 6})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.QiQueries.WithLabelValues("exact")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.QiQueries.WithLabelValues("undetermined")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Steps.WithLabelValues("PASS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Steps.WithLabelValues("PARTIAL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Runs.WithLabelValues("PARTIAL", "stalled")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.QiQueries))
}

func TestCollector_PrivateRegistries(t *testing.T) {
	a := metrics.NewCollector(metrics.DefaultNamespace)
	b := metrics.NewCollector(metrics.DefaultNamespace)
	a.ObserveStep(validate.Step{Verdict: validate.StatusFail})
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Steps.WithLabelValues("FAIL")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Steps.WithLabelValues("FAIL")))
}

func TestCollector_WiredIntoRun(t *testing.T) {
	c := metrics.NewCollector(metrics.DefaultNamespace)
	g, err := builder.Preset("cycle", 9)
	require.NoError(t, err)

	v, err := validate.New(g,
		validate.WithSeed(4),
		validate.WithQiEngine(qi.NewEngine(qi.WithObserver(c))),
		validate.WithObserver(c),
	)
	require.NoError(t, err)
	out, err := v.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(out.Steps+1), testutil.ToFloat64(c.Steps.WithLabelValues("PASS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Runs.WithLabelValues("PASS", "target-reached")))

	n, err := testutil.GatherAndCount(c.Registry(), "qigraph_qi_queries_total")
	require.NoError(t, err)
	assert.Positive(t, n)
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := metrics.NewCollector(metrics.DefaultNamespace)
	c.ObserveRun(validate.Outcome{Status: validate.StatusPass, Stop: validate.StopTargetReached, FinalBlocks: 4})

	path := filepath.Join(t.TempDir(), "qigraph.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data),
		`qigraph_validate_runs_total{status="PASS",stop="target-reached"} 1`))
}
