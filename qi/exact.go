// SPDX-License-Identifier: MIT

package qi

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/qigraph/quotient"
)

// search holds branch-and-bound state over block masks.
type search struct {
	adj       []uint64
	best      int
	threshold int
}

// Exact returns the true qi-number of q by exhaustive branch-and-bound.
func Exact(q *quotient.Graph) (int, error) {
	v, _, err := exactAtLeast(q, 0)
	return v, err
}

// ExactSearch runs branch-and-bound over an adjacency given as bitmasks
// (adj[i] bit j set iff i~j). With threshold > 0 it returns as soon as the
// best score reaches threshold; complete reports whether the search was
// exhaustive, i.e. whether the value is the true maximum.
func ExactSearch(adj []uint64, threshold int) (value int, complete bool) {
	k := len(adj)
	if k <= 1 {
		return 0, true
	}
	s := &search{adj: adj, threshold: threshold}
	// k == 64 wraps to all ones
	all := uint64(1)<<uint(k) - 1
	hit := s.run(all, 0)
	return s.best, !hit
}

func exactAtLeast(q *quotient.Graph, threshold int) (int, bool, error) {
	if q == nil {
		return 0, false, ErrNilQuotient
	}
	k := q.K()
	if k > MaxExactLimit {
		return 0, false, fmt.Errorf("qi: exact search k=%d: %w", k, ErrTooLarge)
	}
	adj := make([]uint64, k)
	var i int
	var err error
	for i = 0; i < k; i++ {
		if adj[i], err = q.Mask(i); err != nil {
			return 0, false, fmt.Errorf("qi: exact search: %w", err)
		}
	}
	v, complete := ExactSearch(adj, threshold)
	return v, complete, nil
}

// run explores rest with the running score. It returns true when the
// threshold has been reached and the whole search must unwind.
func (s *search) run(rest uint64, score int) bool {
	if rest == 0 {
		if score > s.best {
			s.best = score
		}
		return s.threshold > 0 && s.best >= s.threshold
	}
	// everything left in one set is the best any completion can add
	if score+bits.OnesCount64(rest)-1 <= s.best {
		return false
	}

	anchor := uint(bits.TrailingZeros64(rest))
	others := rest &^ (uint64(1) << anchor)
	cand := others &^ s.adj[anchor]

	// larger joining sets first; sub == 0 (anchor alone) is visited last
	for sub := cand; ; sub = (sub - 1) & cand {
		if s.independent(sub) && s.run(others&^sub, score+bits.OnesCount64(sub)) {
			return true
		}
		if sub == 0 {
			return false
		}
	}
}

func (s *search) independent(set uint64) bool {
	for m := set; m != 0; m &= m - 1 {
		if s.adj[bits.TrailingZeros64(m)]&set != 0 {
			return false
		}
	}
	return true
}
