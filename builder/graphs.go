package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/wclique/core"
)

// Complete returns the complete simple graph K_n.
// n ≥ 1; pairs {i, j}, i < j, are emitted in lexicographic order.
// Time: O(n²).
func Complete(n int) (*core.DenseGraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := core.NewDenseGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	for i := 1; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			if err = g.SetEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: edge {%d,%d}: %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Path returns the path 1–2–…–n. n ≥ 1 (a single vertex is a valid,
// edgeless path). Time: O(n²) dominated by the dense store.
func Path(n int) (*core.DenseGraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := core.NewDenseGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	for i := 1; i < n; i++ {
		if err = g.SetEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("Path: edge {%d,%d}: %w", i, i+1, err)
		}
	}

	return g, nil
}

// Cycle returns the cycle 1–2–…–n–1. n ≥ 3.
func Cycle(n int) (*core.DenseGraph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := Path(n)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	if err = g.SetEdge(n, 1); err != nil {
		return nil, fmt.Errorf("Cycle: closing edge {%d,1}: %w", n, err)
	}

	return g, nil
}

// Star returns the star with centre 1 and leaves 2..n. n ≥ 2.
func Star(n int) (*core.DenseGraph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
	}
	g, err := core.NewDenseGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}
	for i := 2; i <= n; i++ {
		if err = g.SetEdge(1, i); err != nil {
			return nil, fmt.Errorf("Star: edge {1,%d}: %w", i, err)
		}
	}

	return g, nil
}

// CompleteMultipartite returns the complete multipartite graph whose
// parts have the given sizes; vertices are numbered part by part. Two
// vertices are adjacent iff they lie in different parts. Every size
// must be ≥ 1 and at least one part must be given (ErrBadPartition).
func CompleteMultipartite(sizes ...int) (*core.DenseGraph, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("CompleteMultipartite: no parts: %w", ErrBadPartition)
	}
	n := 0
	for _, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("CompleteMultipartite: part size %d: %w", s, ErrBadPartition)
		}
		n += s
	}
	g, err := core.NewDenseGraph(n)
	if err != nil {
		return nil, fmt.Errorf("CompleteMultipartite: %w", err)
	}
	// part[v-1] is the part index of vertex v
	part := make([]int, n)
	v := 0
	for p, s := range sizes {
		for i := 0; i < s; i++ {
			part[v] = p
			v++
		}
	}
	for i := 1; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			if part[i-1] == part[j-1] {
				continue
			}
			if err = g.SetEdge(i, j); err != nil {
				return nil, fmt.Errorf("CompleteMultipartite: edge {%d,%d}: %w", i, j, err)
			}
		}
	}

	return g, nil
}

// RandomSparse returns a graph on n vertices in which each unordered
// pair is an edge independently with probability p, drawn from a PCG
// stream keyed by seed. The same (n, p, seed) always yields the same
// graph. n ≥ 1, p ∈ [0, 1].
func RandomSparse(n int, p float64, seed uint64) (*core.DenseGraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	g, err := core.NewDenseGraph(n)
	if err != nil {
		return nil, fmt.Errorf("RandomSparse: %w", err)
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := 1; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			if rng.Float64() < p {
				if err = g.SetEdge(i, j); err != nil {
					return nil, fmt.Errorf("RandomSparse: edge {%d,%d}: %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}
