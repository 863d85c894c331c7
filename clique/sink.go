package clique

import (
	"fmt"
	"io"
	"strconv"
)

// Collect accumulates solutions in memory, in emission order.
type Collect struct {
	// Cliques holds every emitted solution.
	Cliques [][]int
}

// Emit appends the clique. It never fails.
func (c *Collect) Emit(clique []int) error {
	c.Cliques = append(c.Cliques, clique)

	return nil
}

// Len returns the number of solutions collected so far.
func (c *Collect) Len() int { return len(c.Cliques) }

// StreamSink writes solutions to w as one bracketed array of bracketed
// vertex lists: [[1,2,3],[4,5]]. Commas are placed between elements
// only, so the array never carries a trailing comma; an empty run
// prints []. Close writes the terminator and must be called exactly
// once, after the search.
type StreamSink struct {
	w      io.Writer
	opened bool
	buf    []byte
}

// NewStreamSink returns a sink writing to w. Nothing is written until
// the first Emit or Close.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

// Emit writes one solution, preceded by the array opener or an element
// separator as appropriate.
func (s *StreamSink) Emit(clique []int) error {
	s.buf = s.buf[:0]
	if s.opened {
		s.buf = append(s.buf, ',')
	} else {
		s.buf = append(s.buf, '[')
		s.opened = true
	}
	s.buf = append(s.buf, '[')
	for i, v := range clique {
		if i > 0 {
			s.buf = append(s.buf, ',')
		}
		s.buf = strconv.AppendInt(s.buf, int64(v), 10)
	}
	s.buf = append(s.buf, ']')
	if _, err := s.w.Write(s.buf); err != nil {
		return fmt.Errorf("clique: stream sink: %w", err)
	}

	return nil
}

// Close terminates the array, writing "[]" when nothing was emitted.
func (s *StreamSink) Close() error {
	out := "]"
	if !s.opened {
		out = "[]"
		s.opened = true
	}
	if _, err := io.WriteString(s.w, out); err != nil {
		return fmt.Errorf("clique: stream sink close: %w", err)
	}

	return nil
}
