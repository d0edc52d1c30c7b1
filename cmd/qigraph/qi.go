// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qigraph/graphio"
	"github.com/katalvlaran/qigraph/partition"
	"github.com/katalvlaran/qigraph/qi"
	"github.com/katalvlaran/qigraph/quotient"
)

// chromaticLimit bounds the quotient size for the exact χ printout.
const chromaticLimit = 40

func newQiCmd(a *app) *cobra.Command {
	var (
		labels    string
		atLeast   int
		chromatic bool
	)
	cmd := &cobra.Command{
		Use:   "qi <graph-file>",
		Short: "Compute the qi-number of a partition (singletons by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.Load(args[0], graphio.WithLogger(a.log))
			if err != nil {
				return err
			}

			var p *partition.Partition
			if labels == "" {
				p, err = partition.Singletons(g.VertexCount())
			} else {
				var ls []int
				if ls, err = parseLabels(labels); err == nil {
					p, err = partition.New(ls)
				}
			}
			if err != nil {
				return err
			}

			eng := qi.NewEngine(a.cfg.QiOptions()...)
			r, err := eng.PartitionAtLeast(p, g, atLeast)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, p.DebugString(g))
			fmt.Fprintf(w, "qi=%d method=%s exact=%v k=%d\n", r.Value, r.Method, r.Exact, r.K)
			if atLeast > 0 {
				fmt.Fprintf(w, "qi >= %d: %v\n", atLeast, r.Meets(atLeast))
			}
			if chromatic {
				q, err := quotient.Build(p, g)
				if err != nil {
					return err
				}
				if q.K() > chromaticLimit {
					return fmt.Errorf("qi: chromatic number skipped: k=%d > %d", q.K(), chromaticLimit)
				}
				chi, err := qi.Chromatic(q)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "chi=%d quotient_edges=%d\n", chi, q.EdgeCount())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&labels, "labels", "", "comma-separated block label per vertex")
	cmd.Flags().IntVar(&atLeast, "at-least", 0, "only prove qi >= this threshold")
	cmd.Flags().BoolVar(&chromatic, "chromatic", false, "also print the exact chromatic number of the quotient")
	return cmd
}

func parseLabels(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("labels: %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
