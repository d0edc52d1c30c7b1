// SPDX-License-Identifier: MIT

// Package metrics exposes qi and validation counters through Prometheus.
//
// A Collector owns a private registry (nothing is registered globally) and
// implements both qi.Observer and validate.Observer, so one Collector can be
// attached to every engine and validator of a batch run. WriteTextfile
// exports the registry in the node_exporter textfile format.
package metrics
