package predictor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regcolor/builder"
	"github.com/katalvlaran/regcolor/coloring"
	"github.com/katalvlaran/regcolor/igraph"
	"github.com/katalvlaran/regcolor/predictor"
)

func TestSoftmax_RowsSumToOneAndKeepArgMax(t *testing.T) {
	logits := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		1000, 999, 0, -5, // would overflow without the max shift
		0, 0, 0, 0,
	})
	probs := predictor.Softmax(logits)

	for i := 0; i < 3; i++ {
		row := probs.RawRowView(i)
		assert.InDelta(t, 1.0, floats.Sum(row), 1e-12, "row %d", i)
		assert.Equal(t, floats.MaxIdx(logits.RawRowView(i)), floats.MaxIdx(row), "row %d", i)
	}
	assert.InDelta(t, 0.25, probs.At(2, 3), 1e-12)
	assert.Equal(t, 4.0, logits.At(0, 3), "input untouched")
}

func TestWithSoftmax(t *testing.T) {
	raw := predictor.Func(func(_ context.Context, g *igraph.Graph) (*mat.Dense, error) {
		return mat.NewDense(g.N(), 2, []float64{0, 3, 5, 1}), nil
	})
	g, err := igraph.New(2)
	require.NoError(t, err)

	probs, err := predictor.WithSoftmax(raw).Predict(context.Background(), g)
	require.NoError(t, err)
	p, err := coloring.NewPrediction(probs)
	require.NoError(t, err)
	assert.Equal(t, coloring.Assignment{1, 0}, p.Colors())

	boom := errors.New("boom")
	failing := predictor.Func(func(context.Context, *igraph.Graph) (*mat.Dense, error) { return nil, boom })
	_, err = predictor.WithSoftmax(failing).Predict(context.Background(), g)
	assert.ErrorIs(t, err, boom)

	empty := predictor.Func(func(context.Context, *igraph.Graph) (*mat.Dense, error) { return nil, nil })
	_, err = predictor.WithSoftmax(empty).Predict(context.Background(), g)
	assert.ErrorIs(t, err, predictor.ErrBadOutput)
}

func TestGreedyColors(t *testing.T) {
	cases := []struct {
		name string
		cons []builder.Constructor
		want []int
	}{
		{"odd cycle", []builder.Constructor{builder.Cycle(5)}, []int{1, 2, 1, 2, 3, 0}},
		{"star center first", []builder.Constructor{builder.Star(4)}, []int{1, 2, 2, 2, 0, 0}},
		{"bipartite", []builder.Constructor{builder.CompleteBipartite(2, 3)}, []int{1, 1, 2, 2, 2, 0}},
		{"complete", []builder.Constructor{builder.Complete(4)}, []int{1, 2, 3, 4, 0, 0}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(6, nil, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, predictor.GreedyColors(g))
		})
	}
}

func TestWelshPowell_ProperWithinPalette(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g, err := builder.BuildGraph(12, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomDense(10, 0.4))
		require.NoError(t, err)

		probs, err := predictor.WelshPowell{Palette: 13}.Predict(context.Background(), g)
		require.NoError(t, err)
		p, err := coloring.NewPrediction(probs)
		require.NoError(t, err)

		m, err := coloring.ValidatePrediction(g, p)
		require.NoError(t, err)
		assert.Zero(t, m.InvalidEdges, "seed %d", seed)
		assert.Equal(t, 0, p.Color(10), "invalid slot")
		assert.Equal(t, 0, p.Color(11), "invalid slot")
	}
}

func TestWelshPowell_ClampsToPalette(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Complete(4))
	require.NoError(t, err)

	probs, err := predictor.WelshPowell{Palette: 3}.Predict(context.Background(), g)
	require.NoError(t, err)
	p, err := coloring.NewPrediction(probs)
	require.NoError(t, err)
	assert.Equal(t, coloring.Assignment{1, 2, 2, 2}, p.Colors())
}

func TestConstant(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Path(3))
	require.NoError(t, err)

	probs, err := predictor.Constant{Palette: 5, Color: 2}.Predict(context.Background(), g)
	require.NoError(t, err)
	p, err := coloring.NewPrediction(probs)
	require.NoError(t, err)
	assert.Equal(t, coloring.Assignment{2, 2, 2, 0}, p.Colors())
}

func TestPredictors_Errors(t *testing.T) {
	ctx := context.Background()
	g, err := igraph.New(3)
	require.NoError(t, err)

	for name, p := range map[string]predictor.Predictor{
		"WelshPowell": predictor.WelshPowell{Palette: 3},
		"Constant":    predictor.Constant{Palette: 3, Color: 1},
	} {
		_, err = p.Predict(ctx, nil)
		assert.ErrorIs(t, err, predictor.ErrGraphNil, name)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = p.Predict(cancelled, g)
		assert.ErrorIs(t, err, context.Canceled, name)
	}

	_, err = predictor.WelshPowell{}.Predict(ctx, g)
	assert.ErrorIs(t, err, predictor.ErrBadPalette)
	_, err = predictor.Constant{}.Predict(ctx, g)
	assert.ErrorIs(t, err, predictor.ErrBadPalette)
}
