// SPDX-License-Identifier: MIT

package partition

import (
	"errors"

	"github.com/katalvlaran/qigraph/graph"
)

// Sentinel errors for partition construction and queries.
var (
	// ErrEmptyPartition is returned when a partition would cover zero vertices.
	ErrEmptyPartition = errors.New("partition: no vertices")

	// ErrNegativeLabel is returned when a label is below zero.
	ErrNegativeLabel = errors.New("partition: negative label")

	// ErrVertexOutOfRange is returned when a vertex index is outside [0, n).
	ErrVertexOutOfRange = errors.New("partition: vertex out of range")

	// ErrGraphNil is returned when a nil graph is passed to a property query.
	ErrGraphNil = errors.New("partition: graph is nil")

	// ErrSizeMismatch is returned when the graph and partition vertex counts differ.
	ErrSizeMismatch = errors.New("partition: graph vertex count mismatch")

	// ErrBlockNotFound is returned when a label is not in use.
	ErrBlockNotFound = errors.New("partition: block not found")
)

// Properties are the graph-relative facts cached on a Partition.
type Properties struct {
	// InteriorEdges counts edges whose endpoints share a label.
	InteriorEdges int

	// Independent is true iff InteriorEdges == 0.
	Independent bool

	// Connected is true iff every block induces a connected subgraph.
	Connected bool
}

// QiEntry is a memoized qi result together with the query that produced it.
type QiEntry struct {
	// Value is the qi-number, or -1 when the computation was abandoned.
	Value int

	// Threshold is the minimum that was requested; <= 0 means a plain query.
	Threshold int

	// Exact is true when Value is the true maximum, not a lower bound or an
	// early-exit witness.
	Exact bool
}

// Partition assigns every vertex of a graph to exactly one block.
type Partition struct {
	labels []int

	// property cache, valid for propsGraph while !dirty
	propsGraph *graph.Graph
	props      Properties
	dirty      bool

	// qi memo, valid for qiGraph while qiSet
	qiGraph *graph.Graph
	qi      QiEntry
	qiSet   bool

	// Origin is a diagnostic index of the candidate this partition came from
	// (-1 when unset).
	Origin int

	// Operation describes the transformation that produced this partition.
	Operation string
}
