// Package builder provides deterministic constructors for the dense
// graphs and weight tables the engine searches over. It exists for
// tests, benchmarks and examples; production inputs arrive through
// the seedio protocol instead.
//
// Design contract:
//   - Constructors validate parameters early and return sentinel
//     errors; they never panic.
//   - Determinism: the same parameters (and, for the stochastic
//     constructors, the same seed) always produce the same graph.
//   - Vertices are the 1-based ids 1..n throughout.
package builder
