// SPDX-License-Identifier: MIT

// Package config loads qigraph run settings from YAML.
//
// Load starts from Default, overlays the file (unknown keys are rejected)
// and validates the result with go-playground/validator. The CLI applies
// flag overrides on top of the loaded value before calling Validate again.
package config
