// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qigraph/graphio"
	"github.com/katalvlaran/qigraph/ops"
	"github.com/katalvlaran/qigraph/report"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		excludes    []string
		critical    int
		summaryPath string
	)
	cmd := &cobra.Command{
		Use:   "batch <pattern>...",
		Short: "Validate every graph file matching the glob patterns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expand(args, excludes)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("batch: no graph files match %v", args)
			}

			base := a.cfg.Seed
			if base == 0 {
				base = ops.EntropySeed()
			}
			col := a.collector()

			var (
				mu      sync.Mutex
				records []report.Record
				errs    []error
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Concurrency)
			for i, path := range paths {
				g.Go(func() error {
					gr, err := graphio.Load(path, graphio.WithLogger(a.log), graphio.WithCriticalK(critical))
					if err == nil {
						var rec report.Record
						_, rec, err = a.validateOne(ctx, gr, graphName(path), ops.DeriveSeed(base, uint64(i)), col)
						if err == nil {
							mu.Lock()
							records = append(records, rec)
							mu.Unlock()
							return nil
						}
					}
					if ctx.Err() != nil {
						return ctx.Err()
					}
					a.log.Warn("graph skipped", zap.String("path", path), zap.Error(err))
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			sum := report.Summarize(records, errs)
			if err := writeSummary(cmd, summaryPath, sum); err != nil {
				return err
			}
			if err := a.exportMetrics(col); err != nil {
				return err
			}
			a.log.Info("batch finished",
				zap.Int64("seed", base),
				zap.Int("total", sum.Total),
				zap.Int("pass", sum.Pass),
				zap.Int("partial", sum.Partial),
				zap.Int("fail", sum.Fail),
				zap.Int("errors", len(sum.Errors)),
			)
			if !sum.OK() {
				return errVerdict
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "glob patterns to skip")
	cmd.Flags().IntVar(&critical, "critical", 0, "critical k' for files without a k= line")
	cmd.Flags().StringVar(&summaryPath, "summary", "", "write the YAML summary here instead of stdout")
	return cmd
}

// expand resolves doublestar patterns to a sorted, de-duplicated file list.
func expand(patterns, excludes []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup || excluded(m, excludes) {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}

func excluded(path string, excludes []string) bool {
	slash := filepath.ToSlash(path)
	for _, ex := range excludes {
		if ok, _ := doublestar.Match(ex, slash); ok {
			return true
		}
	}
	return false
}

func writeSummary(cmd *cobra.Command, path string, sum report.Summary) error {
	if path == "" {
		return report.WriteSummary(cmd.OutOrStdout(), sum)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteSummary(f, sum); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
