package seedio

import "errors"

var (
	// ErrFlagRange is returned when a stream flag is neither 0 nor 1.
	ErrFlagRange = errors.New("seedio: flag must be 0 or 1")

	// ErrBadToken is returned when the stream holds a non-integer token.
	ErrBadToken = errors.New("seedio: malformed integer token")

	// ErrMatrixEntry is returned when an adjacency entry is neither 0 nor 1.
	ErrMatrixEntry = errors.New("seedio: adjacency entry must be 0 or 1")

	// ErrTruncated is returned when the stream ends inside a required
	// field group (header, matrix, weights, or a partially read seed).
	ErrTruncated = errors.New("seedio: unexpected end of input")

	// ErrBadCount is returned when a seed's |S| or |A| is negative.
	ErrBadCount = errors.New("seedio: negative list length")

	// ErrBadWindow is returned when the seed window is malformed:
	// start < 1, or end neither −1 nor ≥ start.
	ErrBadWindow = errors.New("seedio: invalid seed window")
)
