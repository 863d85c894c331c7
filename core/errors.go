package core

import "errors"

// Sentinel errors for the graph and weight stores. All constructors and
// mutators return these; callers branch with errors.Is.
var (
	// ErrBadOrder is returned when a graph order below 1 is requested.
	ErrBadOrder = errors.New("core: graph order must be at least 1")

	// ErrBadDimension is returned when a weight dimension below 1 is requested.
	ErrBadDimension = errors.New("core: weight dimension must be at least 1")

	// ErrVertexRange is returned when a vertex id lies outside 1..n.
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop is returned when an edge from a vertex to itself is added.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadShape is returned when an adjacency matrix is not n×n with n ≥ 1.
	ErrBadShape = errors.New("core: adjacency matrix is not square")

	// ErrBadEntry is returned when an adjacency matrix entry is neither 0 nor 1.
	ErrBadEntry = errors.New("core: adjacency entry must be 0 or 1")

	// ErrDimensionMismatch is returned when a weight vector has the wrong length.
	ErrDimensionMismatch = errors.New("core: weight vector has wrong dimension")

	// ErrNegativeWeight is returned when a weight vector has a negative entry.
	ErrNegativeWeight = errors.New("core: weight entries must be non-negative")

	// ErrZeroWeight is returned when a weight vector is all zero.
	ErrZeroWeight = errors.New("core: weight vector must be non-zero")
)
