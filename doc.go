// Package qigraph computes qi-numbers of graph partitions and checks the
// qi invariant along sequences of split and merge operations.
//
// For a partition P of a graph G into k blocks, the quotient graph Q has one
// vertex per block and an edge wherever two blocks touch in G. The qi-number
// is the best score of a cover of Q by independent sets, each set counting
// size-1, which equals k − χ(Q).
//
// The work is organized in small packages:
//
//	graph/      immutable dense graph with a critical block count k'
//	bfs/ dfs/   components and spanning trees of induced vertex subsets
//	partition/  labelings, cached properties, canonical form, fingerprints
//	quotient/   the quotient graph of a partition
//	qi/         exact branch-and-bound, DSATUR lower bound, thresholded queries
//	ops/        Sc, Su, Mu, Mc operators, ScMu and SuMc composites, RandomMc
//	builder/    cycles, wheels, Platonic solids, Petersen, Grötzsch, Mycielski…
//	graphio/    edge-list files ("n", "u v" lines, "k=K")
//	validate/   the P* → k' driver loop with PASS/PARTIAL/FAIL verdicts
//	report/ metrics/ config/  YAML records, Prometheus counters, run settings
//	cmd/qigraph  run, batch, generate and qi commands
//
// Quick ASCII example:
//
//	    0───1
//	    │   │      C4 in singleton blocks: k = 4, χ = 2, qi = 2
//	    3───2
//
//	go install github.com/katalvlaran/qigraph/cmd/qigraph@latest
package qigraph
