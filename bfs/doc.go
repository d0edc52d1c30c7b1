// Package bfs discovers the connected components of the subgraph induced by a
// vertex subset of a graph.Graph.
//
// The subset is usually one partition block: a block is "connected" exactly
// when Components returns a single component for its vertices.
//
// Ordering contract:
//
//   - Components are emitted in the order their first member appears in the
//     input slice.
//   - Inside a component, vertices appear in BFS discovery order, and a
//     frontier vertex scans candidates in input-slice order.
//
// Complexity:
//
//   - Time:   O(s²) adjacency probes for a subset of size s (dense matrix).
//   - Memory: O(n/64 + s).
package bfs
