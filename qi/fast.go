// SPDX-License-Identifier: MIT

package qi

import (
	"fmt"

	"gonum.org/v1/gonum/graph/coloring"

	"github.com/katalvlaran/qigraph/quotient"
)

// DsaturColors colors q with gonum's DSATUR heuristic and returns the
// number of colors used.
func DsaturColors(q *quotient.Graph) (int, error) {
	if q == nil {
		return 0, ErrNilQuotient
	}
	c, _, err := coloring.Dsatur(q.Undirected(), nil)
	if err != nil {
		return 0, fmt.Errorf("qi: dsatur: %w", err)
	}
	return c, nil
}

// Fast returns k - c for a DSATUR coloring with c colors: a lower bound on qi.
func Fast(q *quotient.Graph) (int, error) {
	c, err := DsaturColors(q)
	if err != nil {
		return 0, err
	}
	if q.K() <= 1 {
		return 0, nil
	}
	return q.K() - c, nil
}

// Chromatic returns χ(q) from gonum's exact DSATUR search. It is exponential
// and meant for cross-checking qi = k - χ on small quotients.
func Chromatic(q *quotient.Graph) (int, error) {
	if q == nil {
		return 0, ErrNilQuotient
	}
	if q.K() == 0 {
		return 0, nil
	}
	c, _, err := coloring.DsaturExact(nil, q.Undirected())
	if err != nil {
		return 0, fmt.Errorf("qi: exact coloring: %w", err)
	}
	return c, nil
}
