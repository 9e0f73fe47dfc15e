package labels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regcolor/igraph"
	"github.com/katalvlaran/regcolor/labels"
)

// validGraph returns a graph of capacity n whose listed nodes are valid.
func validGraph(t *testing.T, n int, valid ...int) *igraph.Graph {
	t.Helper()
	g, err := igraph.New(n)
	require.NoError(t, err)
	for _, j := range valid {
		require.NoError(t, g.SetValid(j, true))
	}

	return g
}

func TestCanonicalize_FirstOccurrenceOrder(t *testing.T) {
	g := validGraph(t, 6, 0, 1, 2, 4, 5)
	raw := []int64{42, 7, 42, 99, 13, 7}

	c, err := labels.Canonicalize(g, raw)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 0, 3, 2}, c.Labels)
	assert.Equal(t, map[int64]int{42: 1, 7: 2, 13: 3}, c.IDs)
	assert.Equal(t, 3, c.Distinct())
}

func TestCanonicalize_InvalidNodesDoNotConsumeIDs(t *testing.T) {
	g := validGraph(t, 3, 1, 2)
	c, err := labels.Canonicalize(g, []int64{5, 8, 5})
	require.NoError(t, err)
	// 5 at node 0 is ignored, so 8 comes first.
	assert.Equal(t, []int{0, 1, 2}, c.Labels)
}

func TestCanonicalize_Deterministic(t *testing.T) {
	g := validGraph(t, 5, 0, 1, 2, 3, 4)
	raw := []int64{3, 1, 4, 1, 5}
	a, err := labels.Canonicalize(g, raw)
	require.NoError(t, err)
	b, err := labels.Canonicalize(g, raw)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCanonicalize_Errors(t *testing.T) {
	_, err := labels.Canonicalize(nil, nil)
	assert.ErrorIs(t, err, labels.ErrGraphNil)

	g := validGraph(t, 3)
	_, err = labels.Canonicalize(g, []int64{1, 2})
	assert.ErrorIs(t, err, labels.ErrLengthMismatch)

	c, err := labels.Canonicalize(g, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, c.Labels)
	assert.Zero(t, c.Distinct())
}
