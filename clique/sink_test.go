package clique_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wclique/clique"
)

func TestStreamSink_Empty(t *testing.T) {
	var sb strings.Builder
	sink := clique.NewStreamSink(&sb)
	require.NoError(t, sink.Close())
	assert.Equal(t, "[]", sb.String())
}

func TestStreamSink_SingleSolution(t *testing.T) {
	var sb strings.Builder
	sink := clique.NewStreamSink(&sb)
	require.NoError(t, sink.Emit([]int{1, 2, 3}))
	require.NoError(t, sink.Close())
	assert.Equal(t, "[[1,2,3]]", sb.String())
}

func TestStreamSink_NoTrailingComma(t *testing.T) {
	var sb strings.Builder
	sink := clique.NewStreamSink(&sb)
	require.NoError(t, sink.Emit([]int{1, 2}))
	require.NoError(t, sink.Emit([]int{3}))
	require.NoError(t, sink.Emit([]int{10, 11}))
	require.NoError(t, sink.Close())
	assert.Equal(t, "[[1,2],[3],[10,11]]", sb.String())
}

func TestCollect(t *testing.T) {
	var c clique.Collect
	require.NoError(t, c.Emit([]int{4, 5}))
	require.NoError(t, c.Emit([]int{6}))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, [][]int{{4, 5}, {6}}, c.Cliques)
}

// failWriter fails on every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestStreamSink_PropagatesWriteError(t *testing.T) {
	sink := clique.NewStreamSink(failWriter{})
	assert.ErrorIs(t, sink.Emit([]int{1}), assert.AnError)
}
