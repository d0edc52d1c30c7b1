// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qigraph/qi"
	"github.com/katalvlaran/qigraph/validate"
)

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var check = validator.New()

// Config holds every tunable of a run or batch.
type Config struct {
	// Seed of the operator random source; 0 draws one from system entropy.
	Seed int64 `yaml:"seed"`
	// ExactLimit is the largest quotient searched exactly.
	ExactLimit int `yaml:"exact_limit" validate:"min=1,max=63"`
	// FastFirst tries DSATUR before exact search for small quotients.
	FastFirst bool `yaml:"fast_first"`
	// MaxSteps bounds operator steps per run; 0 is unbounded.
	MaxSteps int `yaml:"max_steps" validate:"min=0"`
	// Strategy names the per-step operator.
	Strategy string `yaml:"strategy" validate:"oneof=random-mc sumc scmu"`
	// Concurrency bounds parallel runs in batch mode.
	Concurrency int `yaml:"concurrency" validate:"min=1,max=256"`
	// Trace keeps the per-step trace in reports.
	Trace bool `yaml:"trace"`
	// ReportDir receives one YAML record per run; empty disables reports.
	ReportDir string `yaml:"report_dir"`
	// MetricsFile receives a Prometheus textfile export; empty disables it.
	MetricsFile string `yaml:"metrics_file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// LogFormat selects the zap encoder.
	LogFormat string `yaml:"log_format" validate:"oneof=json console"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ExactLimit:  qi.DefaultExactLimit,
		FastFirst:   true,
		Strategy:    validate.DefaultStrategy,
		Concurrency: 4,
		Trace:       true,
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := check.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				parts = append(parts, fmt.Sprintf("%s: %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(parts, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Parse overlays YAML from r on Default and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("Parse: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("Load %s: %w", path, err)
	}
	return cfg, nil
}

// QiOptions translates the qi settings.
func (c Config) QiOptions() []qi.Option {
	return []qi.Option{
		qi.WithExactLimit(c.ExactLimit),
		qi.WithFastFirst(c.FastFirst),
	}
}

// ValidateOptions translates the run settings. seed overrides c.Seed when
// non-zero; batch runs pass a per-file derived seed.
func (c Config) ValidateOptions(seed int64) ([]validate.Option, error) {
	s, err := validate.StrategyByName(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("ValidateOptions: %w", err)
	}
	opts := []validate.Option{
		validate.WithStrategy(c.Strategy, s),
		validate.WithMaxSteps(c.MaxSteps),
		validate.WithTrace(c.Trace),
	}
	if seed == 0 {
		seed = c.Seed
	}
	if seed != 0 {
		opts = append(opts, validate.WithSeed(seed))
	}
	return opts, nil
}
