// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// variants_platonic.go: canonical data for the five Platonic graphs.
//
// Design:
//   • Single source of truth for vertex counts and shell edges.
//   • Every edge list is sorted lexicographically by (U,V) with U < V.
//   • Datasets are package-level and never mutated.

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// chord is an unordered shell edge by zero-based index.
type chord struct {
	U, V int
}

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][]chord{
	// K4 on 0..3.
	Tetrahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	},

	// Bottom face 0-1-2-3, top face 4-5-6-7, verticals i-i+4.
	Cube: {
		{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 4},
		{U: 1, V: 2}, {U: 1, V: 5},
		{U: 2, V: 3}, {U: 2, V: 6},
		{U: 3, V: 7},
		{U: 4, V: 5}, {U: 4, V: 7},
		{U: 5, V: 6},
		{U: 6, V: 7},
	},

	// Poles {0,1}; equator {2,3,4,5} with opposite pairs 2/3 and 4/5 unjoined.
	Octahedron: {
		{U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
		{U: 2, V: 4}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 3, V: 5},
	},

	// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19;
	// top spokes to even middle indices, bottom spokes to odd ones.
	Dodecahedron: {
		{U: 0, V: 1}, {U: 0, V: 4}, {U: 0, V: 10},
		{U: 1, V: 2}, {U: 1, V: 12},
		{U: 2, V: 3}, {U: 2, V: 14},
		{U: 3, V: 4}, {U: 3, V: 16},
		{U: 4, V: 18},
		{U: 5, V: 6}, {U: 5, V: 9}, {U: 5, V: 11},
		{U: 6, V: 7}, {U: 6, V: 13},
		{U: 7, V: 8}, {U: 7, V: 15},
		{U: 8, V: 9}, {U: 8, V: 17},
		{U: 9, V: 19},
		{U: 10, V: 11}, {U: 10, V: 19},
		{U: 11, V: 12}, {U: 12, V: 13}, {U: 13, V: 14}, {U: 14, V: 15},
		{U: 15, V: 16}, {U: 16, V: 17}, {U: 17, V: 18}, {U: 18, V: 19},
	},

	// Poles 0 and 11, top ring 1..5, bottom ring 6..10;
	// top Ti joins Bi and B(i+1 mod 5).
	Icosahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 5}, {U: 1, V: 6}, {U: 1, V: 7},
		{U: 2, V: 3}, {U: 2, V: 7}, {U: 2, V: 8},
		{U: 3, V: 4}, {U: 3, V: 8}, {U: 3, V: 9},
		{U: 4, V: 5}, {U: 4, V: 9}, {U: 4, V: 10},
		{U: 5, V: 6}, {U: 5, V: 10},
		{U: 6, V: 7}, {U: 6, V: 10}, {U: 6, V: 11},
		{U: 7, V: 8}, {U: 7, V: 11},
		{U: 8, V: 9}, {U: 8, V: 11},
		{U: 9, V: 10}, {U: 9, V: 11},
		{U: 10, V: 11},
	},
}
