// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"sort"
)

// New builds a Partition from a copy of labels. Every label must be >= 0.
func New(labels []int) (*Partition, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyPartition
	}
	var v, l int
	for v, l = range labels {
		if l < 0 {
			return nil, fmt.Errorf("partition: New vertex %d label %d: %w", v, l, ErrNegativeLabel)
		}
	}
	return &Partition{
		labels: append([]int(nil), labels...),
		dirty:  true,
		Origin: -1,
	}, nil
}

// Singletons returns P*: every vertex in its own block, label(v) = v.
func Singletons(n int) (*Partition, error) {
	if n < 1 {
		return nil, ErrEmptyPartition
	}
	labels := make([]int, n)
	for v := range labels {
		labels[v] = v
	}
	return &Partition{labels: labels, dirty: true, Origin: -1}, nil
}

// Len returns the number of vertices covered.
func (p *Partition) Len() int { return len(p.labels) }

// Label returns the label of v.
func (p *Partition) Label(v int) (int, error) {
	if v < 0 || v >= len(p.labels) {
		return 0, fmt.Errorf("partition: Label(%d): %w", v, ErrVertexOutOfRange)
	}
	return p.labels[v], nil
}

// SetLabel relabels v. A changed label invalidates every cached property
// and the qi memo; setting the same label is a no-op.
func (p *Partition) SetLabel(v, label int) error {
	if v < 0 || v >= len(p.labels) {
		return fmt.Errorf("partition: SetLabel(%d): %w", v, ErrVertexOutOfRange)
	}
	if label < 0 {
		return fmt.Errorf("partition: SetLabel(%d, %d): %w", v, label, ErrNegativeLabel)
	}
	if p.labels[v] == label {
		return nil
	}
	p.labels[v] = label
	p.invalidate()
	return nil
}

// Relabel moves every vertex of block from into block to. Unknown from is a no-op.
func (p *Partition) Relabel(from, to int) error {
	if to < 0 {
		return fmt.Errorf("partition: Relabel(%d, %d): %w", from, to, ErrNegativeLabel)
	}
	if from == to {
		return nil
	}
	changed := false
	for v, l := range p.labels {
		if l == from {
			p.labels[v] = to
			changed = true
		}
	}
	if changed {
		p.invalidate()
	}
	return nil
}

func (p *Partition) invalidate() {
	p.dirty = true
	p.propsGraph = nil
	p.qiSet = false
	p.qiGraph = nil
}

// Labels returns a copy of the label slice.
func (p *Partition) Labels() []int { return append([]int(nil), p.labels...) }

// BlockLabels returns the labels in use, ascending.
func (p *Partition) BlockLabels() []int {
	seen := make(map[int]struct{}, len(p.labels))
	out := make([]int, 0)
	for _, l := range p.labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// NumBlocks returns k, the number of distinct labels.
func (p *Partition) NumBlocks() int {
	seen := make(map[int]struct{}, len(p.labels))
	for _, l := range p.labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}

// Blocks maps each label to its vertices in ascending order.
func (p *Partition) Blocks() map[int][]int {
	out := make(map[int][]int)
	for v, l := range p.labels {
		out[l] = append(out[l], v)
	}
	return out
}

// BlockVertices returns the vertices labeled label, ascending.
// An unused label yields an empty slice.
func (p *Partition) BlockVertices(label int) []int {
	var out []int
	for v, l := range p.labels {
		if l == label {
			out = append(out, v)
		}
	}
	return out
}

// BlockSize returns the number of vertices labeled label.
func (p *Partition) BlockSize(label int) int {
	var c int
	for _, l := range p.labels {
		if l == label {
			c++
		}
	}
	return c
}

// HasBlock reports whether label is in use.
func (p *Partition) HasBlock(label int) bool {
	for _, l := range p.labels {
		if l == label {
			return true
		}
	}
	return false
}

// MaxLabel returns the largest label in use.
func (p *Partition) MaxLabel() int {
	m := p.labels[0]
	for _, l := range p.labels[1:] {
		if l > m {
			m = l
		}
	}
	return m
}

// Clone returns a deep copy, caches and metadata included.
func (p *Partition) Clone() *Partition {
	c := *p
	c.labels = append([]int(nil), p.labels...)
	return &c
}

// String renders the labels, e.g. "[0 0 1 2]".
func (p *Partition) String() string { return fmt.Sprint(p.labels) }
