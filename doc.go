// Package wclique enumerates cliques with a prescribed vertex-weight sum.
//
// Given a simple undirected graph on vertices 1..n, a non-negative integer
// weight vector of fixed dimension d attached to every vertex, and a target
// vector k, the engine finds the cliques whose vertex weights sum to k
// coordinate-wise — all of them, or just one, optionally restricted to
// cliques that are maximal in the whole graph.
//
// The search is branch-and-bound: per-coordinate residual budgets eliminate
// infeasible candidates early, a pivot coordinate with the fewest carriers
// steers the branching, and a smallest-last degree ordering followed by a
// greedy proper colouring yields an upper bound that cuts whole subtrees.
//
// The module is organised per concern:
//
//	core/    — dense adjacency store and vertex weight table
//	clique/  — the branch-and-bound search engine and solution sinks
//	seedio/  — the numeric text protocol: graph/weights header plus a
//	           stream of (partial solution, active set, target) seeds,
//	           with index-window selection for external parallelism
//	builder/ — deterministic graph and weight constructors for tests,
//	           benchmarks and examples
//	cmd/cclique — the command-line front end
//
// Large runs parallelise externally: split the seed stream into disjoint
// index windows and hand each window to its own process.
package wclique
