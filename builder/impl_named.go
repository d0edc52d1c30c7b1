// SPDX-License-Identifier: MIT
// Package: qigraph/builder
//
// impl_named.go: fixed named graphs used as validation fixtures.
//
//   • Petersen: outer 5-cycle 0..4, spokes i-i+5, inner pentagram 5+i-5+(i+2)%5.
//   • Grotzsch: Mycielskian of C5 (11 vertices, triangle-free, χ = 4).
//   • Chvatal:  12 vertices, 4-regular, triangle-free, χ = 4.
//
// Complexity: O(1) each.

package builder

const (
	methodPetersen = "Petersen"
	methodGrotzsch = "Grotzsch"
	methodChvatal  = "Chvatal"
)

var chvatalEdges = []chord{
	{U: 0, V: 1}, {U: 0, V: 4}, {U: 0, V: 6}, {U: 0, V: 9},
	{U: 1, V: 2}, {U: 1, V: 5}, {U: 1, V: 7},
	{U: 2, V: 3}, {U: 2, V: 6}, {U: 2, V: 8},
	{U: 3, V: 4}, {U: 3, V: 7}, {U: 3, V: 9},
	{U: 4, V: 5}, {U: 4, V: 8},
	{U: 5, V: 10}, {U: 5, V: 11},
	{U: 6, V: 10}, {U: 6, V: 11},
	{U: 7, V: 8}, {U: 7, V: 11},
	{U: 8, V: 10},
	{U: 9, V: 10}, {U: 9, V: 11},
}

// Petersen returns a Constructor for the Petersen graph.
func Petersen() Constructor {
	return func(d *Draft, _ builderConfig) error {
		base := d.AddVertices(10)
		for i := 0; i < 5; i++ {
			d.AddEdge(base+i, base+(i+1)%5)
			d.AddEdge(base+i, base+i+5)
			d.AddEdge(base+5+i, base+5+(i+2)%5)
		}
		return nil
	}
}

// Grotzsch returns a Constructor for the Grötzsch graph (Mycielski M4).
func Grotzsch() Constructor {
	return Mycielski(4)
}

// Chvatal returns a Constructor for the Chvátal graph.
func Chvatal() Constructor {
	return func(d *Draft, _ builderConfig) error {
		base := d.AddVertices(12)
		for _, ch := range chvatalEdges {
			d.AddEdge(base+ch.U, base+ch.V)
		}
		return nil
	}
}
