// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/qigraph/qi"
	"github.com/katalvlaran/qigraph/validate"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "qigraph"

// Collector holds the Prometheus metrics of qi queries and validation runs.
type Collector struct {
	registry *prometheus.Registry

	QiQueries    *prometheus.CounterVec
	QuotientSize prometheus.Histogram

	Steps        *prometheus.CounterVec
	StepDuration prometheus.Histogram
	Runs         *prometheus.CounterVec
	RunDuration  prometheus.Histogram
	FinalBlocks  prometheus.Histogram
}

var (
	_ qi.Observer       = (*Collector)(nil)
	_ validate.Observer = (*Collector)(nil)
)

// NewCollector creates a Collector registered on its own registry.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	qiQueries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "qi",
			Name:      "queries_total",
			Help:      "Total number of qi answers by method",
		},
		[]string{"method"},
	)

	quotientSize := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "qi",
			Name:      "quotient_size",
			Help:      "Quotient graph vertex count per qi answer",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
		},
	)

	steps := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validate",
			Name:      "steps_total",
			Help:      "Total number of evaluated partitions by verdict",
		},
		[]string{"verdict"},
	)

	stepDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "validate",
			Name:      "step_duration_seconds",
			Help:      "Time spent answering one step's qi query",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validate",
			Name:      "runs_total",
			Help:      "Total number of validation runs by status and stop reason",
		},
		[]string{"status", "stop"},
	)

	runDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "validate",
			Name:      "run_duration_seconds",
			Help:      "Validation run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	finalBlocks := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "validate",
			Name:      "final_blocks",
			Help:      "Block count of the last evaluated partition",
			Buckets:   prometheus.LinearBuckets(1, 1, 12),
		},
	)

	registry.MustRegister(qiQueries, quotientSize, steps, stepDuration, runs, runDuration, finalBlocks)

	return &Collector{
		registry:     registry,
		QiQueries:    qiQueries,
		QuotientSize: quotientSize,
		Steps:        steps,
		StepDuration: stepDuration,
		Runs:         runs,
		RunDuration:  runDuration,
		FinalBlocks:  finalBlocks,
	}
}

// Registry returns the collector's private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveQi counts one qi answer.
func (c *Collector) ObserveQi(r qi.Result) {
	c.QiQueries.WithLabelValues(r.Method.String()).Inc()
	c.QuotientSize.Observe(float64(r.K))
}

// ObserveStep counts one evaluated partition.
func (c *Collector) ObserveStep(s validate.Step) {
	c.Steps.WithLabelValues(s.Verdict.String()).Inc()
	c.StepDuration.Observe(s.Elapsed.Seconds())
}

// ObserveRun counts one finished run.
func (c *Collector) ObserveRun(o validate.Outcome) {
	c.Runs.WithLabelValues(o.Status.String(), o.Stop.String()).Inc()
	c.RunDuration.Observe(o.Elapsed.Seconds())
	c.FinalBlocks.Observe(float64(o.FinalBlocks))
}

// WriteTextfile writes the registry to path in text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("WriteTextfile: %w", err)
	}
	return nil
}
