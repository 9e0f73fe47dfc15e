package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regcolor/coloring"
	"github.com/katalvlaran/regcolor/igraph"
)

// triangle returns nodes 0,1,2 pairwise adjacent inside a graph of capacity n.
func triangle(t *testing.T, n int) *igraph.Graph {
	t.Helper()
	g, err := igraph.New(n)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(2, 1))

	return g
}

// oneHot builds an n×c probability matrix with row j peaked at colors[j].
func oneHot(n, c int, colors []int) *mat.Dense {
	m := mat.NewDense(n, c, nil)
	for j, col := range colors {
		m.Set(j, col, 1)
	}

	return m
}

func TestValidate_TriangleAllSameColor(t *testing.T) {
	g := triangle(t, 3)
	m, err := coloring.Validate(g, coloring.Assignment{1, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Edges)
	assert.Equal(t, 3, m.InvalidEdges)
	pct, ok := m.Percent()
	assert.True(t, ok)
	assert.InDelta(t, 100.0, pct, 1e-9)
	assert.Equal(t, "edges=3 invalid=3 invalid%=100.00", m.String())
}

func TestValidate_PartialConflicts(t *testing.T) {
	g := triangle(t, 4)
	require.NoError(t, g.AddEdge(3, 2))

	m, err := coloring.Validate(g, coloring.Assignment{1, 2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 4, m.Edges)
	assert.Equal(t, 1, m.InvalidEdges)
	assert.InDelta(t, 25.0, m.InvalidPercent, 1e-9)
}

func TestValidate_OnlyLowerTriangleCounts(t *testing.T) {
	g, err := igraph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetEntry(0, 2, true)) // upper triangle only
	require.NoError(t, g.SetValid(0, true))

	m, err := coloring.Validate(g, coloring.Assignment{1, 0, 1})
	require.NoError(t, err)
	assert.Zero(t, m.Edges)
	assert.Zero(t, m.InvalidEdges)
}

func TestValidate_NoEdgesIsNotApplicable(t *testing.T) {
	g, err := igraph.New(2)
	require.NoError(t, err)

	m, err := coloring.Validate(g, coloring.Assignment{0, 0})
	require.NoError(t, err)
	_, ok := m.Percent()
	assert.False(t, ok)
	assert.Equal(t, "edges=0 invalid=0 invalid%=n/a", m.String())
}

func TestValidate_Errors(t *testing.T) {
	_, err := coloring.Validate(nil, nil)
	assert.ErrorIs(t, err, coloring.ErrGraphNil)

	_, err = coloring.Validate(triangle(t, 3), coloring.Assignment{1})
	assert.ErrorIs(t, err, coloring.ErrLengthMismatch)
}

func TestExtract_OrderAndDistinct(t *testing.T) {
	g, err := igraph.New(5)
	require.NoError(t, err)
	for _, j := range []int{0, 1, 3, 4} {
		require.NoError(t, g.SetValid(j, true))
	}

	ch, err := coloring.Extract(g, coloring.Assignment{1, 2, 9, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 3}, ch.Colors)
	assert.Equal(t, 3, ch.Distinct)
	assert.Equal(t, 3, ch.Max)
	assert.Equal(t, "1,2,1,3", ch.Join())
	assert.False(t, ch.Empty())
}

func TestExtract_EmptyGraph(t *testing.T) {
	g, err := igraph.New(4)
	require.NoError(t, err)

	ch, err := coloring.Extract(g, coloring.Assignment{5, 5, 5, 5})
	require.NoError(t, err)
	assert.True(t, ch.Empty())
	assert.Zero(t, ch.Distinct)
	assert.Zero(t, ch.Max)
	assert.Equal(t, "", ch.Join())

	_, err = coloring.Extract(g, coloring.Assignment{1})
	assert.ErrorIs(t, err, coloring.ErrLengthMismatch)
}

func TestPrediction_ArgMaxFirstIndexWinsTies(t *testing.T) {
	probs := mat.NewDense(2, 4, []float64{
		0.1, 0.4, 0.4, 0.1,
		0.25, 0.25, 0.25, 0.25,
	})
	p, err := coloring.NewPrediction(probs)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Color(0))
	assert.Equal(t, 0, p.Color(1))
	assert.Equal(t, 2, p.Nodes())
	assert.Equal(t, 4, p.Palette())
}

func TestPrediction_OverrideLatestWins(t *testing.T) {
	p, err := coloring.NewPrediction(oneHot(3, 4, []int{1, 1, 2}))
	require.NoError(t, err)

	require.NoError(t, p.Override(0, 3))
	require.NoError(t, p.Override(0, 2))
	require.NoError(t, p.Override(2, 7)) // beyond the palette

	assert.Equal(t, coloring.Assignment{2, 1, 7}, p.Colors())
	assert.Equal(t, 1, p.ArgMax(0), "the matrix itself is untouched")
	c, ok := p.Overridden(2)
	assert.True(t, ok)
	assert.Equal(t, 7, c)
	_, ok = p.Overridden(1)
	assert.False(t, ok)
	assert.Equal(t, []int{0, 2}, p.Overrides())

	assert.ErrorIs(t, p.Override(3, 1), coloring.ErrOutOfRange)
	assert.ErrorIs(t, p.Override(0, -1), coloring.ErrBadColor)
}

func TestPrediction_MaterializeMatchesColors(t *testing.T) {
	probs := mat.NewDense(3, 3, []float64{
		0.2, 0.5, 0.3,
		0.1, 0.8, 0.1,
		0.6, 0.2, 0.2,
	})
	p, err := coloring.NewPrediction(probs)
	require.NoError(t, err)
	require.NoError(t, p.Override(1, 2))
	require.NoError(t, p.Override(2, 5))

	out := p.Materialize(coloring.DefaultInjectedValue)
	r, c := out.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 6, c)
	assert.Equal(t, coloring.DefaultInjectedValue, out.At(1, 2))
	assert.Equal(t, 0.8, out.At(1, 1))

	legacy, err := coloring.NewPrediction(out)
	require.NoError(t, err)
	assert.Equal(t, p.Colors(), legacy.Colors())
	assert.Equal(t, 0.3, probs.At(0, 2), "source matrix is never written")
}

func TestNewPrediction_Errors(t *testing.T) {
	_, err := coloring.NewPrediction(nil)
	assert.ErrorIs(t, err, coloring.ErrNilProbabilities)

	_, err = coloring.NewPrediction(&mat.Dense{})
	assert.ErrorIs(t, err, coloring.ErrBadShape)

	nan := mat.NewDense(1, 2, []float64{0.5, 0})
	nan.Set(0, 1, nan.At(0, 0)/0*0) // NaN
	_, err = coloring.NewPrediction(nan)
	assert.ErrorIs(t, err, coloring.ErrNaNInf)
}

func TestPredictionHelpers_ShapeMismatch(t *testing.T) {
	g := triangle(t, 3)
	p, err := coloring.NewPrediction(oneHot(2, 2, []int{1, 1}))
	require.NoError(t, err)

	_, err = coloring.ValidatePrediction(g, p)
	assert.ErrorIs(t, err, coloring.ErrBadShape)
	_, err = coloring.ExtractPrediction(g, p)
	assert.ErrorIs(t, err, coloring.ErrBadShape)
	_, err = coloring.ValidatePrediction(g, nil)
	assert.ErrorIs(t, err, coloring.ErrNilProbabilities)
}

func TestAssignment_CloneAndEqual(t *testing.T) {
	a := coloring.Assignment{1, 2, 3}
	b := a.Clone()
	assert.True(t, a.Equal(b))
	b[0] = 9
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(a[:2]))
}
