// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qigraph/ops"
	"github.com/katalvlaran/qigraph/partition"
)

// DefaultStrategy is the name of RandomMc.
const DefaultStrategy = "random-mc"

var strategies = map[string]Strategy{
	DefaultStrategy: RandomMc,
	"sumc":          SuMc,
	"scmu":          ScMu,
}

// RandomMc merges a uniformly drawn quotient-adjacent pair.
func RandomMc(e *ops.Engine, p *partition.Partition) ops.Result { return e.RandomMc(p) }

// SuMc applies the SuMc composite. Su needs a disconnected block, so it
// stalls on P*; see WithStart.
func SuMc(e *ops.Engine, p *partition.Partition) ops.Result { return e.SuMc(p) }

// ScMu applies the ScMu composite. Sc needs a block of two or more vertices,
// so it stalls on P*. From a WithStart partition it keeps k unchanged and
// only stops through FAIL, a stall or WithMaxSteps.
func ScMu(e *ops.Engine, p *partition.Partition) ops.Result { return e.ScMu(p) }

// StrategyByName returns a registered strategy.
func StrategyByName(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("StrategyByName(%q): %w", name, ErrUnknownStrategy)
	}
	return s, nil
}

// Strategies lists registered strategy names, sorted.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
