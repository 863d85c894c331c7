package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wclique/builder"
	"github.com/katalvlaran/wclique/clique"
	"github.com/katalvlaran/wclique/core"
)

// trianglePlusIsolated builds the 4-vertex graph whose edges form the
// triangle {1,2,3}, vertex 4 isolated, with unit weights.
func trianglePlusIsolated(t *testing.T) (*core.DenseGraph, *core.WeightTable) {
	t.Helper()
	g, err := core.NewDenseGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(1, 2))
	require.NoError(t, g.SetEdge(1, 3))
	require.NoError(t, g.SetEdge(2, 3))
	wt, err := builder.UnitWeights(4)
	require.NoError(t, err)

	return g, wt
}

func search(t *testing.T, g *core.DenseGraph, wt *core.WeightTable, seed clique.Seed, opts ...clique.Option) [][]int {
	t.Helper()
	s, err := clique.New(g, wt, opts...)
	require.NoError(t, err)
	_, err = s.Search(seed)
	require.NoError(t, err)

	return s.Collected().Cliques
}

func TestSearch_TriangleTargetThree(t *testing.T) {
	g, wt := trianglePlusIsolated(t)
	got := search(t, g, wt, clique.Seed{Active: []int{1, 2, 3, 4}, Target: []int{3}})
	assert.Equal(t, [][]int{{1, 2, 3}}, got)
}

func TestSearch_MaximalOnlyRejectsExtendable(t *testing.T) {
	// Every 2-clique of the triangle extends to the triangle itself.
	g, wt := trianglePlusIsolated(t)
	got := search(t, g, wt,
		clique.Seed{Active: []int{1, 2, 3, 4}, Target: []int{2}},
		clique.WithMaximalOnly())
	assert.Empty(t, got)
}

func TestSearch_TwoDimensionalWeights(t *testing.T) {
	g, err := builder.Complete(3)
	require.NoError(t, err)
	wt, err := builder.Weights([][]int{{1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, err)

	got := search(t, g, wt, clique.Seed{Active: []int{1, 2, 3}, Target: []int{1, 1}})
	require.Len(t, got, 2)
	assert.ElementsMatch(t, [][]int{{1, 2}, {3}}, got)
}

func TestSearch_PathTargetUnreachable(t *testing.T) {
	g, err := builder.Path(3)
	require.NoError(t, err)
	wt, err := builder.UnitWeights(3)
	require.NoError(t, err)

	got := search(t, g, wt, clique.Seed{Active: []int{1, 2, 3}, Target: []int{3}})
	assert.Empty(t, got)
}

func TestSearch_FirstOnlyStopsAfterOne(t *testing.T) {
	g, wt := trianglePlusIsolated(t)
	s, err := clique.New(g, wt, clique.WithFirstOnly())
	require.NoError(t, err)
	stats, err := s.Search(clique.Seed{Active: []int{1, 2, 3, 4}, Target: []int{3}})
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 2, 3}}, s.Collected().Cliques)
	assert.EqualValues(t, 1, stats.Solutions)
	assert.True(t, s.Found())
}

func TestSearch_SeededEqualityPath(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)
	wt, err := builder.UnitWeights(4)
	require.NoError(t, err)

	got := search(t, g, wt, clique.Seed{
		Sofar:  []int{1},
		Active: []int{2, 3, 4},
		Target: []int{3},
	})
	assert.Equal(t, [][]int{{1, 2, 3, 4}}, got, "seed prefix leads the emitted clique")
}

func TestSearch_ActivePermutationInvariance(t *testing.T) {
	g, wt := trianglePlusIsolated(t)
	orders := [][]int{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{2, 4, 1, 3},
		{3, 1, 4, 2},
	}
	for _, order := range orders {
		got := search(t, g, wt, clique.Seed{Active: order, Target: []int{2}})
		require.Len(t, got, 3, "order %v", order)
		sorted := make([][]int, len(got))
		for i, c := range got {
			sorted[i] = sortedCopy(c)
		}
		assert.ElementsMatch(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, sorted, "order %v", order)
	}
}

func TestSearch_EmptyActive(t *testing.T) {
	g, wt := trianglePlusIsolated(t)

	// Zero target: the seed itself is the solution.
	got := search(t, g, wt, clique.Seed{Sofar: []int{1, 2}, Target: []int{0}})
	assert.Equal(t, [][]int{{1, 2}}, got)

	// Non-zero target with nothing to extend by: no solution.
	got = search(t, g, wt, clique.Seed{Sofar: []int{1, 2}, Target: []int{1}})
	assert.Empty(t, got)
}

func TestSearch_SeededZeroTargetChecksWholeGraph(t *testing.T) {
	// {1,2} is a clique but vertex 3 extends it, so under the
	// maximality filter a zero-target seed must be rejected even
	// though its active set is empty.
	g, wt := trianglePlusIsolated(t)
	got := search(t, g, wt,
		clique.Seed{Sofar: []int{1, 2}, Target: []int{0}},
		clique.WithMaximalOnly())
	assert.Empty(t, got)

	got = search(t, g, wt,
		clique.Seed{Sofar: []int{1, 2, 3}, Target: []int{0}},
		clique.WithMaximalOnly())
	assert.Equal(t, [][]int{{1, 2, 3}}, got)
}

func TestSearch_OvershootingVertexEliminated(t *testing.T) {
	g, err := builder.Complete(2)
	require.NoError(t, err)
	wt, err := builder.Weights([][]int{{5}, {1}})
	require.NoError(t, err)

	got := search(t, g, wt, clique.Seed{Active: []int{1, 2}, Target: []int{1}})
	assert.Equal(t, [][]int{{2}}, got)
}

func TestSearch_SolutionsAreDistinct(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	wt, err := builder.UnitWeights(5)
	require.NoError(t, err)

	got := search(t, g, wt, clique.Seed{Active: []int{1, 2, 3, 4, 5}, Target: []int{3}})
	require.Len(t, got, 10)
	seen := map[string]bool{}
	for _, c := range got {
		key := fingerprint(c)
		assert.False(t, seen[key], "duplicate solution %v", c)
		seen[key] = true
	}
}

func TestSearch_SearcherReuseAccumulatesStats(t *testing.T) {
	g, wt := trianglePlusIsolated(t)
	s, err := clique.New(g, wt)
	require.NoError(t, err)

	first, err := s.Search(clique.Seed{Active: []int{1, 2, 3, 4}, Target: []int{3}})
	require.NoError(t, err)
	second, err := s.Search(clique.Seed{Active: []int{1, 2, 3, 4}, Target: []int{2}})
	require.NoError(t, err)

	assert.EqualValues(t, 1, first.Solutions)
	assert.EqualValues(t, 3, second.Solutions)
	assert.Equal(t, first.Calls+second.Calls, s.Stats().Calls)
	assert.Equal(t, first.Solutions+second.Solutions, s.Stats().Solutions)
}

func TestSearch_SeedIsNotMutated(t *testing.T) {
	g, wt := trianglePlusIsolated(t)
	s, err := clique.New(g, wt)
	require.NoError(t, err)

	seed := clique.Seed{Active: []int{4, 3, 2, 1}, Target: []int{2}}
	_, err = s.Search(seed)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, seed.Active)
	assert.Equal(t, []int{2}, seed.Target)
}

func TestNew_Validation(t *testing.T) {
	g, wt := trianglePlusIsolated(t)

	_, err := clique.New(nil, wt)
	assert.ErrorIs(t, err, clique.ErrNilGraph)

	_, err = clique.New(g, nil)
	assert.ErrorIs(t, err, clique.ErrNilWeights)

	small, err := builder.UnitWeights(3)
	require.NoError(t, err)
	_, err = clique.New(g, small)
	assert.ErrorIs(t, err, clique.ErrOrderMismatch)
}

func TestSearch_SeedValidation(t *testing.T) {
	g, wt := trianglePlusIsolated(t)
	s, err := clique.New(g, wt)
	require.NoError(t, err)

	_, err = s.Search(clique.Seed{Target: []int{1, 1}})
	assert.ErrorIs(t, err, clique.ErrTargetDim)

	_, err = s.Search(clique.Seed{Active: []int{5}, Target: []int{1}})
	assert.ErrorIs(t, err, clique.ErrSeedVertex)

	_, err = s.Search(clique.Seed{Sofar: []int{0}, Target: []int{1}})
	assert.ErrorIs(t, err, clique.ErrSeedVertex)
}
