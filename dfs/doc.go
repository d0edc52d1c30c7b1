// Package dfs builds depth-first spanning trees over the subgraph induced by
// a vertex subset of a graph.Graph.
//
// The tree is used to pick vertices that can leave a connected block without
// disconnecting the remainder: removing a leaf of a spanning tree keeps the
// rest of the tree, and therefore the rest of the block, connected.
//
// Traversal contract:
//
//   - The root is members[0].
//   - From the current vertex, the next child is the first unvisited
//     neighbor in members order (recursive DFS semantics).
//   - The walk is iterative, so deep subsets do not grow the goroutine stack.
//
// Complexity: O(s²) adjacency probes for a subset of size s.
package dfs
