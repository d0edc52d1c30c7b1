package bfs

import "errors"

// Sentinel errors for BFS over induced subsets.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexOutOfRange is returned when a subset member is not a vertex of the graph.
	ErrVertexOutOfRange = errors.New("bfs: vertex out of range")
)
