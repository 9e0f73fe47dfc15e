package igraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regcolor/igraph"
)

func TestNew_Bounds(t *testing.T) {
	for _, n := range []int{-1, 0, igraph.MaxNodes + 1} {
		_, err := igraph.New(n)
		assert.ErrorIs(t, err, igraph.ErrBadSize, "n=%d", n)
	}
	g, err := igraph.New(igraph.MaxNodes)
	require.NoError(t, err)
	assert.Equal(t, igraph.MaxNodes, g.N())
	assert.Empty(t, g.ValidNodes())
}

func TestGraph_EdgesAndValidity(t *testing.T) {
	g, err := igraph.New(5)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 4))
	require.NoError(t, g.SetEntry(2, 1, true)) // one direction only
	require.NoError(t, g.SetValid(2, true))

	assert.True(t, g.At(0, 4))
	assert.True(t, g.At(4, 0))
	assert.True(t, g.At(2, 1))
	assert.False(t, g.At(1, 2))
	assert.True(t, g.Adjacent(1, 2), "either direction counts as interference")
	assert.False(t, g.Adjacent(3, 3))
	assert.False(t, g.At(-1, 0))
	assert.False(t, g.Valid(7))

	assert.Equal(t, []int{0, 2, 4}, g.ValidNodes())
	assert.Equal(t, []int{2}, g.Neighbors(1))
	assert.Equal(t, []int{4}, g.Neighbors(0))
	assert.Nil(t, g.Neighbors(9))

	assert.ErrorIs(t, g.AddEdge(1, 1), igraph.ErrSelfLoop)
	assert.ErrorIs(t, g.SetEntry(3, 3, true), igraph.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge(0, 5), igraph.ErrOutOfRange)
	assert.ErrorIs(t, g.SetEntry(5, 0, true), igraph.ErrOutOfRange)
	assert.ErrorIs(t, g.SetValid(-1, true), igraph.ErrOutOfRange)
}

func TestGraph_Stats(t *testing.T) {
	g, err := igraph.New(6)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(2, 1))
	// node 5 is referenced by row 3 but carries no validity bit
	require.NoError(t, g.SetEntry(3, 5, true))
	require.NoError(t, g.SetValid(3, true))

	s := g.Stats()
	assert.Equal(t, 6, s.Nodes)
	assert.Equal(t, 4, s.ValidNodes)
	assert.Equal(t, 7, s.Entries)
	assert.Equal(t, 3, s.Edges)
	assert.Equal(t, 2, s.MaxDegree)
	assert.Equal(t, 1, s.Referenced)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g, err := igraph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))

	assert.False(t, g.Adjacent(1, 2))
	assert.False(t, g.Valid(2))
	assert.True(t, c.Adjacent(0, 1))
}

func TestGraph_Undirected(t *testing.T) {
	g, err := igraph.New(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.SetEntry(3, 4, true)) // 4 stays invalid

	ug := g.Undirected()
	assert.Equal(t, 3, ug.Nodes().Len())
	assert.Equal(t, 2, ug.Edges().Len())
	assert.True(t, ug.HasEdgeBetween(0, 1))
	assert.True(t, ug.HasEdgeBetween(3, 1))
	assert.Nil(t, ug.Node(4))
}
