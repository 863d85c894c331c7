package builder

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/wclique/core"
)

// UnitWeights returns a dimension-1 table assigning every vertex the
// weight [1], so a target [k] asks for cliques of exactly k vertices.
func UnitWeights(n int) (*core.WeightTable, error) {
	wt, err := core.NewWeightTable(n, 1)
	if err != nil {
		return nil, fmt.Errorf("UnitWeights: %w", err)
	}
	for v := 1; v <= n; v++ {
		if err = wt.Set(v, []int{1}); err != nil {
			return nil, fmt.Errorf("UnitWeights: vertex %d: %w", v, err)
		}
	}

	return wt, nil
}

// Weights builds a table from explicit rows, rows[v-1] being the
// vector of vertex v. The dimension is taken from the first row.
func Weights(rows [][]int) (*core.WeightTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("Weights: no rows: %w", ErrTooFewVertices)
	}
	wt, err := core.NewWeightTable(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("Weights: %w", err)
	}
	for v, row := range rows {
		if err = wt.Set(v+1, row); err != nil {
			return nil, fmt.Errorf("Weights: vertex %d: %w", v+1, err)
		}
	}

	return wt, nil
}

// RandomWeights returns an n×d table whose entries are drawn uniformly
// from 0..maxEntry, keyed by seed; an all-zero draw is bumped to 1 in
// its first coordinate so every vector stays non-zero. Deterministic
// for fixed (n, d, maxEntry, seed).
func RandomWeights(n, d, maxEntry int, seed uint64) (*core.WeightTable, error) {
	if maxEntry < 0 {
		return nil, fmt.Errorf("RandomWeights: maxEntry=%d: %w", maxEntry, core.ErrNegativeWeight)
	}
	wt, err := core.NewWeightTable(n, d)
	if err != nil {
		return nil, fmt.Errorf("RandomWeights: %w", err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	vec := make([]int, d)
	for v := 1; v <= n; v++ {
		zero := true
		for j := range vec {
			vec[j] = rng.IntN(maxEntry + 1)
			if vec[j] != 0 {
				zero = false
			}
		}
		if zero {
			vec[0] = 1
		}
		if err = wt.Set(v, vec); err != nil {
			return nil, fmt.Errorf("RandomWeights: vertex %d: %w", v, err)
		}
	}

	return wt, nil
}
