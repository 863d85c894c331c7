package builder

import "errors"

var (
	// ErrTooFewVertices is returned when a constructor needs more vertices
	// than requested (e.g. a cycle on fewer than 3).
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability is returned when an edge probability lies
	// outside [0, 1].
	ErrInvalidProbability = errors.New("builder: edge probability outside [0,1]")

	// ErrBadPartition is returned when a multipartite constructor receives
	// no parts or a part of size below 1.
	ErrBadPartition = errors.New("builder: invalid partition sizes")
)
