// Package clique implements branch-and-bound enumeration of cliques
// whose vertex weight vectors sum coordinate-wise to a target vector.
//
// A search starts from a Seed: a partial solution S that is already a
// clique, an active set A of candidate extensions (each joined to all
// of S), and the residual target k. The engine reports every clique
// C ⊆ A with weight sum exactly k, each delivered to the configured
// Sink as S followed by C.
//
// Each recursive call, in order:
//
//  1. Emits S when the residual target is zero (under WithMaximalOnly,
//     only when A is empty and S is maximal in the whole graph).
//  2. Eliminates active vertices that overshoot the target in any of
//     their coordinates, accumulating per-coordinate sums and carrier
//     counts; if any coordinate of the target exceeds what the
//     survivors can still supply, the node is infeasible.
//  3. When the survivors' sums equal the target exactly, the only
//     candidate is all of A; it is accepted iff it is a clique (and,
//     under WithMaximalOnly, S ∪ A is maximal).
//  4. Picks the pivot coordinate with the fewest carriers, partitions
//     the branch candidates, orders them smallest-last by induced
//     degree, and greedily colours them in reverse: the sum over
//     colours of the largest pivot weight per colour bounds what any
//     clique here can contribute, so branching stops as soon as the
//     bound is met and the node is cut when it cannot be.
//  5. Branches on each remaining candidate with restore-on-return,
//     re-checking residual feasibility as candidates retire.
//
// The traversal is single-threaded and deterministic: the same graph,
// weights, seed and options always emit the same solutions in the
// same order. Parallelism belongs one level up, by splitting seed
// streams (see package seedio).
package clique
