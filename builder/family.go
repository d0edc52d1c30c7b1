// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// family.go: named validation presets with their critical k'.
//
// Presets follow the validation suite:
//   • cycle-N         C_N, k' = 4 for N ≥ 5 (3 below).
//   • wheel-N         W_N, k' = N.
//   • petersen        k' = 6.
//   • octahedral      k' = 5.
//   • icosahedral     k' = 6.
//   • dodecahedral    k' = 5.
//   • grotzsch        k' = 5.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qigraph/graph"
)

// Family is a parameterized preset. Size is ignored by fixed graphs.
type Family struct {
	// Name is the preset key used by Preset.
	Name string
	// Sized reports whether the preset takes a size parameter.
	Sized bool
	// Build returns the constructor and critical k' for size n.
	Build func(n int) (Constructor, int)
}

var families = map[string]Family{
	"cycle": {Name: "cycle", Sized: true, Build: func(n int) (Constructor, int) {
		if n >= 5 {
			return Cycle(n), 4
		}
		return Cycle(n), 3
	}},
	"wheel": {Name: "wheel", Sized: true, Build: func(n int) (Constructor, int) {
		return Wheel(n), n
	}},
	"petersen": {Name: "petersen", Build: func(int) (Constructor, int) {
		return Petersen(), 6
	}},
	"octahedral": {Name: "octahedral", Build: func(int) (Constructor, int) {
		return PlatonicSolid(Octahedron, false), 5
	}},
	"icosahedral": {Name: "icosahedral", Build: func(int) (Constructor, int) {
		return PlatonicSolid(Icosahedron, false), 6
	}},
	"dodecahedral": {Name: "dodecahedral", Build: func(int) (Constructor, int) {
		return PlatonicSolid(Dodecahedron, false), 5
	}},
	"grotzsch": {Name: "grotzsch", Build: func(int) (Constructor, int) {
		return Grotzsch(), 5
	}},
}

// Families returns the registered preset names, sorted.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Family, bool) {
	f, ok := families[name]
	return f, ok
}

// Preset builds the named family at size n with its critical k'.
// Additional options (e.g. WithSeed) are applied before the preset's k'.
func Preset(name string, n int, opts ...BuilderOption) (*graph.Graph, error) {
	f, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("Preset(%q): %w", name, ErrUnknownFamily)
	}
	cons, critical := f.Build(n)
	return BuildGraph(append(opts, WithCriticalK(critical)), cons)
}

// SuiteEntry names one graph of the default validation suite.
type SuiteEntry struct {
	// Path is the relative output path, e.g. "procedural/cycles/cycle_9.txt".
	Path string
	// Family and N select the preset.
	Family string
	N      int
}

// Suite lists the default validation graphs: cycles 7, 9, 11, 15, 20,
// wheels 6, 8, 10 and the special graphs.
func Suite() []SuiteEntry {
	var out []SuiteEntry
	for _, n := range []int{7, 9, 11, 15, 20} {
		out = append(out, SuiteEntry{Path: fmt.Sprintf("procedural/cycles/cycle_%d.txt", n), Family: "cycle", N: n})
	}
	for _, n := range []int{6, 8, 10} {
		out = append(out, SuiteEntry{Path: fmt.Sprintf("procedural/families/wheels/wheel_%d.txt", n), Family: "wheel", N: n})
	}
	for _, name := range []string{"petersen", "octahedral", "icosahedral", "dodecahedral", "grotzsch"} {
		out = append(out, SuiteEntry{Path: "special/" + name + ".txt", Family: name})
	}
	return out
}
