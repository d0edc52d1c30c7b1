// SPDX-License-Identifier: MIT

// Package graphio reads and writes graphs in the plain edge-list format used
// by validation fixtures:
//
//	5        vertex count (first non-blank line)
//	0 1      one undirected edge per line
//	1 2
//	k=4      optional critical k'
//
// Blank lines and lines starting with '#' are ignored. Edges with an endpoint
// out of range, or self-loops, are dropped with one zap warning each; they
// never fail the load. A missing or malformed vertex count, or a line that is
// neither an edge nor a k= directive, fails with ErrSyntax.
package graphio
