package seedio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wclique/clique"
	"github.com/katalvlaran/wclique/core"
)

// Header is the decoded fixed part of the stream: engine flags plus
// the two stores every seed is searched against.
type Header struct {
	FirstOnly   bool
	MaximalOnly bool
	Graph       *core.DenseGraph
	Weights     *core.WeightTable
}

// Decoder tokenises a protocol stream.
type Decoder struct {
	sc *bufio.Scanner
}

// NewDecoder wraps r, splitting on whitespace.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Decoder{sc: sc}
}

// next returns the next integer token. io.EOF marks a clean end of
// stream; malformed tokens come back as ErrBadToken.
func (d *Decoder) next() (int, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return 0, fmt.Errorf("seedio: read: %w", err)
		}

		return 0, io.EOF
	}
	v, err := strconv.Atoi(d.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("seedio: token %q: %w", d.sc.Text(), ErrBadToken)
	}

	return v, nil
}

// require is next with clean EOF promoted to ErrTruncated, for use
// inside a field group that has already started.
func (d *Decoder) require() (int, error) {
	v, err := d.next()
	if errors.Is(err, io.EOF) {
		return 0, ErrTruncated
	}

	return v, err
}

// flag reads a 0/1 token.
func (d *Decoder) flag() (bool, error) {
	v, err := d.require()
	if err != nil {
		return false, err
	}
	if v != 0 && v != 1 {
		return false, fmt.Errorf("seedio: value %d: %w", v, ErrFlagRange)
	}

	return v == 1, nil
}

// Header reads the flags, the order and dimension, the adjacency
// matrix, and the weight table. Matrix entries outside {0, 1} are
// ErrMatrixEntry; weight rows go through core validation, so an
// all-zero vector surfaces core.ErrZeroWeight.
func (d *Decoder) Header() (*Header, error) {
	h := &Header{}
	var err error
	if h.FirstOnly, err = d.flag(); err != nil {
		return nil, fmt.Errorf("seedio: first-only flag: %w", err)
	}
	if h.MaximalOnly, err = d.flag(); err != nil {
		return nil, fmt.Errorf("seedio: maximal-only flag: %w", err)
	}
	n, err := d.require()
	if err != nil {
		return nil, fmt.Errorf("seedio: order: %w", err)
	}
	dim, err := d.require()
	if err != nil {
		return nil, fmt.Errorf("seedio: dimension: %w", err)
	}
	if h.Graph, err = core.NewDenseGraph(n); err != nil {
		return nil, fmt.Errorf("seedio: order %d: %w", n, err)
	}
	if h.Weights, err = core.NewWeightTable(n, dim); err != nil {
		return nil, fmt.Errorf("seedio: dimension %d: %w", dim, err)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			e, err := d.require()
			if err != nil {
				return nil, fmt.Errorf("seedio: matrix entry (%d,%d): %w", i, j, err)
			}
			if e != 0 && e != 1 {
				return nil, fmt.Errorf("seedio: matrix entry (%d,%d)=%d: %w", i, j, e, ErrMatrixEntry)
			}
			if e == 1 && i != j {
				// SetEdge writes both triangles; the mirror entry of a
				// symmetric stream simply rewrites the same bit.
				if err = h.Graph.SetEdge(i, j); err != nil {
					return nil, fmt.Errorf("seedio: matrix entry (%d,%d): %w", i, j, err)
				}
			}
		}
	}
	vec := make([]int, dim)
	for v := 1; v <= n; v++ {
		for j := 0; j < dim; j++ {
			w, err := d.require()
			if err != nil {
				return nil, fmt.Errorf("seedio: weight (%d,%d): %w", v, j+1, err)
			}
			vec[j] = w
		}
		if err = h.Weights.Set(v, vec); err != nil {
			return nil, fmt.Errorf("seedio: weights of vertex %d: %w", v, err)
		}
	}

	return h, nil
}

// Seed reads one (S, A, target) triple for the given weight dimension.
// A clean end of stream before the first token returns io.EOF; an end
// of stream after it returns ErrTruncated.
func (d *Decoder) Seed(dim int) (*clique.Seed, error) {
	ns, err := d.next()
	if err != nil {
		return nil, err // io.EOF here is the normal end of the stream
	}
	seed := &clique.Seed{Target: make([]int, dim)}
	if seed.Sofar, err = d.list(ns, "partial solution"); err != nil {
		return nil, err
	}
	na, err := d.require()
	if err != nil {
		return nil, fmt.Errorf("seedio: active length: %w", err)
	}
	if seed.Active, err = d.list(na, "active set"); err != nil {
		return nil, err
	}
	for j := 0; j < dim; j++ {
		if seed.Target[j], err = d.require(); err != nil {
			return nil, fmt.Errorf("seedio: target entry %d: %w", j+1, err)
		}
	}

	return seed, nil
}

// list reads a length-prefixed vertex list whose length was already
// consumed.
func (d *Decoder) list(length int, what string) ([]int, error) {
	if length < 0 {
		return nil, fmt.Errorf("seedio: %s length %d: %w", what, length, ErrBadCount)
	}
	out := make([]int, length)
	for i := range out {
		v, err := d.require()
		if err != nil {
			return nil, fmt.Errorf("seedio: %s entry %d: %w", what, i+1, err)
		}
		out[i] = v
	}

	return out, nil
}
