package clique

import (
	"fmt"

	"github.com/katalvlaran/wclique/core"
)

// Searcher drives weighted clique searches over one graph and weight
// table. It owns the colouring scratch, so a single Searcher may be
// reused across many seeds without reallocation; it is not safe for
// concurrent use.
type Searcher struct {
	g    *core.DenseGraph
	wt   *core.WeightTable
	opts Options

	// Colouring scratch, sized to the graph order once. col[i] is the
	// colour of the i-th branch candidate; cw[c] the largest pivot
	// weight seen in colour c; cn[c] its population; adjcol marks
	// colours forbidden for the vertex being coloured.
	col    []int
	cw     []int
	cn     []int
	adjcol []bool

	stats Stats
	found bool
}

// New builds a Searcher for g and wt. The two stores must agree on the
// vertex count (ErrOrderMismatch). A nil Sink option collects
// solutions internally; retrieve them via Collected.
func New(g *core.DenseGraph, wt *core.WeightTable, opts ...Option) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if wt == nil {
		return nil, ErrNilWeights
	}
	if g.Order() != wt.Order() {
		return nil, ErrOrderMismatch
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Sink == nil {
		o.Sink = &Collect{}
	}
	n := g.Order()

	return &Searcher{
		g:      g,
		wt:     wt,
		opts:   o,
		col:    make([]int, n),
		cw:     make([]int, n+1),
		cn:     make([]int, n+1),
		adjcol: make([]bool, n+2),
	}, nil
}

// Collected returns the internal Collect sink, or nil when an explicit
// sink was configured.
func (s *Searcher) Collected() *Collect {
	c, _ := s.opts.Sink.(*Collect)

	return c
}

// Stats returns the totals accumulated over every Search call so far.
func (s *Searcher) Stats() Stats { return s.stats }

// Found reports whether any Search call has emitted a solution.
func (s *Searcher) Found() bool { return s.found }

// Search runs the branch-and-bound recursion on one seed and returns
// the work it performed. The seed's slices are copied; the caller's
// memory is never mutated. Vertex ids are validated against the graph
// order, target dimension against the weight table.
func (s *Searcher) Search(seed Seed) (Stats, error) {
	if len(seed.Target) != s.wt.Dim() {
		return Stats{}, ErrTargetDim
	}
	n := s.g.Order()
	for _, list := range [][]int{seed.Sofar, seed.Active} {
		for _, v := range list {
			if v < 1 || v > n {
				return Stats{}, fmt.Errorf("clique: vertex %d: %w", v, ErrSeedVertex)
			}
		}
	}

	// Owned, mutable working copies; the recursion sorts, compacts and
	// partitions active in place and pushes/pops sofar and target.
	sofar := make([]int, len(seed.Sofar), n)
	copy(sofar, seed.Sofar)
	active := append([]int(nil), seed.Active...)
	target := append([]int(nil), seed.Target...)

	before := s.stats
	if err := s.search(sofar, active, target); err != nil {
		return Stats{}, err
	}

	return Stats{
		Calls:     s.stats.Calls - before.Calls,
		Solutions: s.stats.Solutions - before.Solutions,
	}, nil
}

// emit delivers sofar followed by ext as one solution.
func (s *Searcher) emit(sofar, ext []int) error {
	out := make([]int, 0, len(sofar)+len(ext))
	out = append(out, sofar...)
	out = append(out, ext...)
	s.found = true
	s.stats.Solutions++

	return s.opts.Sink.Emit(out)
}

// maximal reports whether the clique formed by the concatenation of
// parts is maximal in the whole graph: no vertex of G is adjacent to
// every member. Members defeat themselves via the zero diagonal.
func (s *Searcher) maximal(parts ...[]int) bool {
	n := s.g.Order()
scan:
	for v := 1; v <= n; v++ {
		row := s.g.Row(v)
		for _, part := range parts {
			for _, u := range part {
				if row[u-1] == 0 {
					continue scan
				}
			}
		}
		// v is adjacent to every member, so the clique extends.

		return false
	}

	return true
}
