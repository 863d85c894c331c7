package clique

import "errors"

var (
	// ErrNilGraph is returned when a Searcher is built without a graph.
	ErrNilGraph = errors.New("clique: graph is nil")

	// ErrNilWeights is returned when a Searcher is built without weights.
	ErrNilWeights = errors.New("clique: weight table is nil")

	// ErrOrderMismatch is returned when graph and weight table disagree
	// on the number of vertices.
	ErrOrderMismatch = errors.New("clique: graph and weight table orders differ")

	// ErrTargetDim is returned when a seed's target vector does not have
	// the weight table's dimension.
	ErrTargetDim = errors.New("clique: target vector has wrong dimension")

	// ErrSeedVertex is returned when a seed names a vertex outside 1..n.
	ErrSeedVertex = errors.New("clique: seed vertex out of range")
)
