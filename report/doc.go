// SPDX-License-Identifier: MIT

// Package report persists validation outcomes as YAML records.
//
// A Record carries the vertex count, critical k', step count and the
// tri-state status {PASS, PARTIAL, FAIL}, plus a run id, seed, strategy,
// timings and optionally the step trace. Records are validated with
// go-playground/validator before every write and after every read.
// A Summary aggregates records of a batch run.
package report
