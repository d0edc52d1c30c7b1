package dfs

import "errors"

// Sentinel errors for DFS spanning trees.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrEmptySubset is returned when no members are given.
	ErrEmptySubset = errors.New("dfs: empty vertex subset")

	// ErrVertexOutOfRange is returned when a member is not a vertex of the graph.
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")
)

// Tree is a DFS spanning forest of an induced subset rooted at Root.
// Vertices unreachable from Root are absent from Order and Parent.
type Tree struct {
	// Root is the first member of the subset.
	Root int

	// Order lists reached vertices in preorder.
	Order []int

	// Parent maps each reached vertex to its tree parent; Root maps to -1.
	Parent map[int]int

	members []int
	degree  map[int]int
}
