// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qigraph/config"
	"github.com/katalvlaran/qigraph/validate"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15, cfg.ExactLimit)
	assert.True(t, cfg.FastFirst)
	assert.Equal(t, validate.DefaultStrategy, cfg.Strategy)
}

func TestParse_Overlay(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
seed: 42
exact_limit: 20
fast_first: false
max_steps: 100
strategy: sumc
report_dir: out/reports
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 20, cfg.ExactLimit)
	assert.False(t, cfg.FastFirst)
	assert.Equal(t, 100, cfg.MaxSteps)
	assert.Equal(t, "sumc", cfg.Strategy)
	assert.Equal(t, "out/reports", cfg.ReportDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Concurrency, "unset keys keep defaults")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		invalid bool
	}{
		{"exact limit too high", "exact_limit: 64\n", true},
		{"exact limit zero", "exact_limit: 0\n", true},
		{"negative steps", "max_steps: -1\n", true},
		{"unknown strategy", "strategy: greedy\n", true},
		{"bad level", "log_level: trace\n", true},
		{"zero concurrency", "concurrency: 0\n", true},
		{"unknown key", "colour: blue\n", false},
		{"bad yaml", "seed: [\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(tt.in))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "qigraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("concurrency: 8\n"), 0o644))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Concurrency)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	assert.Len(t, cfg.QiOptions(), 2)

	opts, err := cfg.ValidateOptions(0)
	require.NoError(t, err)
	assert.Len(t, opts, 3, "no seed configured")

	opts, err = cfg.ValidateOptions(9)
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	cfg.Strategy = "greedy"
	_, err = cfg.ValidateOptions(0)
	require.ErrorIs(t, err, validate.ErrUnknownStrategy)
}
