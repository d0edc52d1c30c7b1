// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qigraph/graph"
	"github.com/katalvlaran/qigraph/graphio"
	"github.com/katalvlaran/qigraph/metrics"
	"github.com/katalvlaran/qigraph/qi"
	"github.com/katalvlaran/qigraph/report"
	"github.com/katalvlaran/qigraph/validate"
)

func newRunCmd(a *app) *cobra.Command {
	var critical int
	cmd := &cobra.Command{
		Use:   "run <graph-file>",
		Short: "Validate one graph from P* down to its critical block count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			g, err := graphio.Load(path, graphio.WithLogger(a.log), graphio.WithCriticalK(critical))
			if err != nil {
				return err
			}

			col := a.collector()
			out, _, err := a.validateOne(cmd.Context(), g, graphName(path), 0, col)
			if err != nil {
				return err
			}
			printOutcome(cmd.OutOrStdout(), out)
			if err := a.exportMetrics(col); err != nil {
				return err
			}
			if out.Status != validate.StatusPass {
				return fmt.Errorf("%s: %s: %w", path, out.Status, errVerdict)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&critical, "critical", 0, "critical k' for files without a k= line")
	return cmd
}

// validateOne runs one validation, saving a report when a report dir is set.
// seed 0 falls back to the configured seed.
func (a *app) validateOne(ctx context.Context, g *graph.Graph, name string, seed int64, col *metrics.Collector) (validate.Outcome, report.Record, error) {
	qopts := a.cfg.QiOptions()
	vopts, err := a.cfg.ValidateOptions(seed)
	if err != nil {
		return validate.Outcome{}, report.Record{}, err
	}
	if col != nil {
		qopts = append(qopts, qi.WithObserver(col))
		vopts = append(vopts, validate.WithObserver(col))
	}
	vopts = append(vopts,
		validate.WithQiEngine(qi.NewEngine(qopts...)),
		validate.WithLogger(a.log.With(zap.String("graph", name))),
	)

	v, err := validate.New(g, vopts...)
	if err != nil {
		return validate.Outcome{}, report.Record{}, fmt.Errorf("%s: %w", name, err)
	}
	out, err := v.Run(ctx)
	if err != nil {
		return out, report.Record{}, fmt.Errorf("%s: %w", name, err)
	}

	rec := report.FromOutcome(out, name, a.cfg.Trace)
	if a.cfg.ReportDir != "" {
		if err := report.Save(filepath.Join(a.cfg.ReportDir, name+".yaml"), rec); err != nil {
			return out, rec, err
		}
	}
	return out, rec, nil
}

// collector returns a metrics collector when a metrics file is configured.
func (a *app) collector() *metrics.Collector {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	return metrics.NewCollector(metrics.DefaultNamespace)
}

func (a *app) exportMetrics(col *metrics.Collector) error {
	if col == nil {
		return nil
	}
	return col.WriteTextfile(a.cfg.MetricsFile)
}

// graphName strips the extension and any leading "/" or "../" so the name
// can be joined under a report directory.
func graphName(path string) string {
	name := filepath.ToSlash(filepath.Clean(strings.TrimSuffix(path, filepath.Ext(path))))
	for strings.HasPrefix(name, "../") {
		name = strings.TrimPrefix(name, "../")
	}
	return strings.TrimLeft(name, "/")
}

// printOutcome writes the step trace and verdict.
func printOutcome(w io.Writer, out validate.Outcome) {
	fmt.Fprintf(w, "Loaded graph with %d vertices, k'=%d (seed %d, strategy %s)\n",
		out.Vertices, out.CriticalK, out.Seed, out.Strategy)
	for _, s := range out.Trace {
		label := fmt.Sprintf("Step %d", s.Index)
		if s.Index == 0 {
			label = "Initial partition"
		}
		fmt.Fprintf(w, "%s (size %d): qi = %d (qi >= %d required, %s) %s\n",
			label, s.Blocks, s.Qi, s.Required, s.Method, s.Verdict)
	}
	fmt.Fprintf(w, "Final partition size: %d\n", out.FinalBlocks)
	fmt.Fprintf(w, "Final qi number: %d\n", out.FinalQi)
	fmt.Fprintf(w, "Required final qi: %d\n", out.Required)
	fmt.Fprintf(w, "Status: %s (%s after %d steps)\n", out.Status, out.Stop, out.Steps)
}
