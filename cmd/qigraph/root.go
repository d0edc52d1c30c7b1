// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/qigraph/config"
)

// errVerdict marks a completed run whose status was not PASS.
var errVerdict = errors.New("validation did not pass")

// app is the state shared by all subcommands.
type app struct {
	cfgPath string
	cfg     config.Config
	log     *zap.Logger

	// flag targets, applied over cfg when changed
	seed        int64
	exactLimit  int
	fastFirst   bool
	maxSteps    int
	strategy    string
	concurrency int
	trace       bool
	reportDir   string
	metricsFile string
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	def := config.Default()

	root := &cobra.Command{
		Use:           "qigraph",
		Short:         "qi-number engine and partition validator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.Int64Var(&a.seed, "seed", def.Seed, "operator random seed (0 draws from system entropy)")
	pf.IntVar(&a.exactLimit, "exact-limit", def.ExactLimit, "largest quotient searched exactly (1..63)")
	pf.BoolVar(&a.fastFirst, "fast-first", def.FastFirst, "try DSATUR before exact search")
	pf.IntVar(&a.maxSteps, "max-steps", def.MaxSteps, "operator step limit per run (0 = none)")
	pf.StringVar(&a.strategy, "strategy", def.Strategy, "per-step operator: random-mc, sumc, scmu")
	pf.IntVar(&a.concurrency, "concurrency", def.Concurrency, "parallel runs in batch mode")
	pf.BoolVar(&a.trace, "trace", def.Trace, "keep the step trace in reports")
	pf.StringVar(&a.reportDir, "report-dir", def.ReportDir, "directory for YAML run reports")
	pf.StringVar(&a.metricsFile, "metrics-file", def.MetricsFile, "Prometheus textfile output")
	pf.StringVar(&a.logLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", def.LogFormat, "json or console")

	root.AddCommand(
		newRunCmd(a),
		newBatchCmd(a),
		newGenerateCmd(a),
		newQiCmd(a),
	)
	return root
}

// setup loads the config file, applies changed flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("exact-limit") {
		cfg.ExactLimit = a.exactLimit
	}
	if flags.Changed("fast-first") {
		cfg.FastFirst = a.fastFirst
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = a.maxSteps
	}
	if flags.Changed("strategy") {
		cfg.Strategy = a.strategy
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = a.concurrency
	}
	if flags.Changed("trace") {
		cfg.Trace = a.trace
	}
	if flags.Changed("report-dir") {
		cfg.ReportDir = a.reportDir
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// newLogger builds a production (json) or development (console) logger.
func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	var zc zap.Config
	if format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
