// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qigraph/validate"
)

// ErrInvalidRecord indicates a record failed validation.
var ErrInvalidRecord = errors.New("report: invalid record")

var check = validator.New()

// Record is the persisted form of one validation run.
type Record struct {
	RunID       string       `yaml:"run_id" validate:"required,uuid"`
	Graph       string       `yaml:"graph,omitempty"`
	Vertices    int          `yaml:"vertices" validate:"min=1"`
	CriticalK   int          `yaml:"critical_k" validate:"min=1"`
	Steps       int          `yaml:"steps" validate:"min=0"`
	Status      string       `yaml:"status" validate:"oneof=PASS PARTIAL FAIL"`
	Stop        string       `yaml:"stop" validate:"required"`
	FinalBlocks int          `yaml:"final_blocks" validate:"min=1"`
	FinalQi     int          `yaml:"final_qi" validate:"min=-1"`
	Required    int          `yaml:"required"`
	Seed        int64        `yaml:"seed"`
	Strategy    string       `yaml:"strategy,omitempty"`
	Started     time.Time    `yaml:"started"`
	ElapsedMS   int64        `yaml:"elapsed_ms" validate:"min=0"`
	Trace       []StepRecord `yaml:"trace,omitempty" validate:"dive"`
}

// StepRecord is one traced step.
type StepRecord struct {
	Step        int    `yaml:"step" validate:"min=0"`
	Blocks      int    `yaml:"blocks" validate:"min=1"`
	Qi          int    `yaml:"qi" validate:"min=-1"`
	Required    int    `yaml:"required"`
	Method      string `yaml:"method"`
	Verdict     string `yaml:"verdict" validate:"oneof=PASS PARTIAL FAIL"`
	Operation   string `yaml:"operation,omitempty"`
	Fingerprint string `yaml:"fingerprint,omitempty" validate:"omitempty,len=64,hexadecimal"`
}

// FromOutcome converts a run outcome under a fresh run id. withTrace
// controls whether the step trace is copied.
func FromOutcome(o validate.Outcome, graphName string, withTrace bool) Record {
	r := Record{
		RunID:       uuid.NewString(),
		Graph:       graphName,
		Vertices:    o.Vertices,
		CriticalK:   o.CriticalK,
		Steps:       o.Steps,
		Status:      o.Status.String(),
		Stop:        o.Stop.String(),
		FinalBlocks: o.FinalBlocks,
		FinalQi:     o.FinalQi,
		Required:    o.Required,
		Seed:        o.Seed,
		Strategy:    o.Strategy,
		Started:     o.Started.UTC(),
		ElapsedMS:   o.Elapsed.Milliseconds(),
	}
	if withTrace {
		r.Trace = make([]StepRecord, 0, len(o.Trace))
		for _, s := range o.Trace {
			r.Trace = append(r.Trace, StepRecord{
				Step:        s.Index,
				Blocks:      s.Blocks,
				Qi:          s.Qi,
				Required:    s.Required,
				Method:      s.Method.String(),
				Verdict:     s.Verdict.String(),
				Operation:   s.Operation,
				Fingerprint: s.Fingerprint,
			})
		}
	}
	return r
}

// Validate checks the record's field constraints.
func (r Record) Validate() error {
	if err := check.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, describe(err))
	}
	return nil
}

// describe flattens validator errors into "field tag" phrases.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Namespace()+" is required")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", fe.Namespace(), fe.Param()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", fe.Namespace(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// Write validates r and encodes it as YAML.
func Write(w io.Writer, r Record) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}

// Read decodes and validates one record.
func Read(rd io.Reader) (Record, error) {
	var r Record
	if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
		return Record{}, fmt.Errorf("Read: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Record{}, fmt.Errorf("Read: %w", err)
	}
	return r, nil
}

// Save writes r to path, creating parent directories.
func Save(path string, r Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := Write(f, r); err != nil {
		f.Close()
		return fmt.Errorf("Save %s: %w", path, err)
	}
	return f.Close()
}

// Load reads the record stored at path.
func Load(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()
	r, err := Read(f)
	if err != nil {
		return Record{}, fmt.Errorf("Load %s: %w", path, err)
	}
	return r, nil
}
