// SPDX-License-Identifier: MIT

package partition

import (
	"encoding/binary"

	"lukechampine.com/blake3"
)

// Renormalize relabels blocks to 0..k-1 in order of first occurrence.
// Block structure is unchanged, so cached properties and the qi memo stay valid.
func (p *Partition) Renormalize() {
	p.labels = canonicalLabels(p.labels)
}

// Canonical returns a renormalized clone.
func (p *Partition) Canonical() *Partition {
	c := p.Clone()
	c.Renormalize()
	return c
}

// IsNonDegenerate reports whether the labels in use are exactly {0..k-1}.
func (p *Partition) IsNonDegenerate() bool {
	return p.MaxLabel() == p.NumBlocks()-1
}

// IsCanonical reports whether labels first appear in the order 0, 1, 2, ...
func (p *Partition) IsCanonical() bool {
	next := 0
	for _, l := range p.labels {
		switch {
		case l == next:
			next++
		case l > next:
			return false
		}
	}
	return true
}

// Equal reports whether both partitions carry identical labels.
func (p *Partition) Equal(o *Partition) bool {
	if o == nil || len(p.labels) != len(o.labels) {
		return false
	}
	for v := range p.labels {
		if p.labels[v] != o.labels[v] {
			return false
		}
	}
	return true
}

// SameBlocks reports whether both partitions group the vertices identically,
// regardless of label numbering.
func (p *Partition) SameBlocks(o *Partition) bool {
	if o == nil || len(p.labels) != len(o.labels) {
		return false
	}
	a, b := canonicalLabels(p.labels), canonicalLabels(o.labels)
	for v := range a {
		if a[v] != b[v] {
			return false
		}
	}
	return true
}

// Fingerprint is the BLAKE3-256 digest of the canonical labels as uvarints.
// Partitions with the same blocks share a fingerprint.
func (p *Partition) Fingerprint() [32]byte {
	canon := canonicalLabels(p.labels)
	buf := make([]byte, 0, binary.MaxVarintLen64*(len(canon)+1))
	buf = binary.AppendUvarint(buf, uint64(len(canon)))
	for _, l := range canon {
		buf = binary.AppendUvarint(buf, uint64(l))
	}
	return blake3.Sum256(buf)
}

func canonicalLabels(labels []int) []int {
	remap := make(map[int]int, len(labels))
	out := make([]int, len(labels))
	for v, l := range labels {
		nl, ok := remap[l]
		if !ok {
			nl = len(remap)
			remap[l] = nl
		}
		out[v] = nl
	}
	return out
}
