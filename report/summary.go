// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Summary aggregates the records of a batch run.
type Summary struct {
	Total   int      `yaml:"total"`
	Pass    int      `yaml:"pass"`
	Partial int      `yaml:"partial"`
	Fail    int      `yaml:"fail"`
	Errors  []string `yaml:"errors,omitempty"`
	Records []Record `yaml:"records"`
}

// Summarize counts statuses and sorts records by graph name. errs are
// per-input failures that produced no record.
func Summarize(records []Record, errs []error) Summary {
	s := Summary{Records: append([]Record(nil), records...)}
	sort.SliceStable(s.Records, func(i, j int) bool { return s.Records[i].Graph < s.Records[j].Graph })
	for _, r := range s.Records {
		switch r.Status {
		case "PASS":
			s.Pass++
		case "PARTIAL":
			s.Partial++
		case "FAIL":
			s.Fail++
		}
	}
	for _, err := range errs {
		s.Errors = append(s.Errors, err.Error())
	}
	s.Total = len(s.Records) + len(s.Errors)
	return s
}

// OK reports whether every input produced a PASS record.
func (s Summary) OK() bool {
	return s.Partial == 0 && s.Fail == 0 && len(s.Errors) == 0
}

// WriteSummary encodes s as YAML.
func WriteSummary(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("WriteSummary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteSummary: %w", err)
	}
	return nil
}
