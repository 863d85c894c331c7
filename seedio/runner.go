package seedio

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/wclique/clique"
)

// Unbounded marks a window with no upper seed index.
const Unbounded = -1

// Options configures a run. The default window is every seed.
type Options struct {
	// Start is the 1-based index of the first seed to process.
	Start int

	// End is the last seed index to process, or Unbounded.
	End int
}

// Option mutates Options before a run starts.
type Option func(*Options)

// DefaultOptions covers the whole stream: [1, Unbounded].
func DefaultOptions() Options { return Options{Start: 1, End: Unbounded} }

// WithWindow restricts processing to seeds with index in [start, end];
// end may be Unbounded. Validated by Run.
func WithWindow(start, end int) Option {
	return func(o *Options) {
		o.Start = start
		o.End = end
	}
}

// Result reports what a run did.
type Result struct {
	// SeedsRead counts seeds consumed from the stream, in or out of
	// the window.
	SeedsRead int64

	// SeedsRun counts seeds actually searched.
	SeedsRun int64

	// Stats aggregates the engine's work over every searched seed.
	Stats clique.Stats
}

// Run decodes a full protocol stream from r and writes the solution
// array to w. Seeds outside the window are read and skipped so the
// stream's indexing is stable across processes; reading stops early
// once the window's upper bound has been passed, or — under the
// stream's first-only flag — as soon as a solution exists. The
// solution array is always terminated, even when empty.
func Run(r io.Reader, w io.Writer, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Start < 1 || (o.End != Unbounded && o.End < o.Start) {
		return nil, fmt.Errorf("seedio: window [%d,%d]: %w", o.Start, o.End, ErrBadWindow)
	}

	dec := NewDecoder(r)
	h, err := dec.Header()
	if err != nil {
		return nil, err
	}

	sink := clique.NewStreamSink(w)
	var engineOpts []clique.Option
	engineOpts = append(engineOpts, clique.WithSink(sink))
	if h.FirstOnly {
		engineOpts = append(engineOpts, clique.WithFirstOnly())
	}
	if h.MaximalOnly {
		engineOpts = append(engineOpts, clique.WithMaximalOnly())
	}
	searcher, err := clique.New(h.Graph, h.Weights, engineOpts...)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	dim := h.Weights.Dim()
	for {
		if o.End != Unbounded && res.SeedsRead >= int64(o.End) {
			break
		}
		seed, err := dec.Seed(dim)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}
		res.SeedsRead++
		if res.SeedsRead < int64(o.Start) {
			continue
		}
		if _, err = searcher.Search(*seed); err != nil {
			return res, err
		}
		res.SeedsRun++
		if h.FirstOnly && searcher.Found() {
			break
		}
	}
	res.Stats = searcher.Stats()
	if err = sink.Close(); err != nil {
		return res, err
	}

	return res, nil
}
