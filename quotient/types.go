// SPDX-License-Identifier: MIT

package quotient

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for quotient construction.
var (
	// ErrNilInput is returned when the partition or graph is nil.
	ErrNilInput = errors.New("quotient: nil partition or graph")

	// ErrSizeMismatch is returned when partition and graph cover different vertex counts.
	ErrSizeMismatch = errors.New("quotient: partition and graph sizes differ")

	// ErrIndexOutOfRange is returned for quotient vertex indices outside [0, k).
	ErrIndexOutOfRange = errors.New("quotient: index out of range")

	// ErrMaskTooWide is returned by Mask when k exceeds 64.
	ErrMaskTooWide = errors.New("quotient: more than 64 blocks")
)

// Graph is an immutable quotient graph over k block labels.
type Graph struct {
	labels []int
	index  map[int]int
	rows   []*bitset.BitSet
	edges  int
}

// Pair is an unordered pair of block labels with A < B.
type Pair struct {
	A, B int
}
