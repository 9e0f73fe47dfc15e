package resolve_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regcolor/builder"
	"github.com/katalvlaran/regcolor/coloring"
	"github.com/katalvlaran/regcolor/igraph"
	"github.com/katalvlaran/regcolor/resolve"
)

// benchResolve measures one pass on a random graph of the reference capacity
// starting from a flat prediction (every node on color 1).
func benchResolve(b *testing.B, p float64) {
	g, err := builder.BuildGraph(igraph.DefaultNodes,
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomDense(igraph.DefaultNodes, p))
	if err != nil {
		b.Fatal(err)
	}
	probs := mat.NewDense(igraph.DefaultNodes, 101, nil)
	for j := 0; j < igraph.DefaultNodes; j++ {
		probs.Set(j, 1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pred, _ := coloring.NewPrediction(probs)
		if _, err := resolve.Resolve(g, pred); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResolve_Sparse(b *testing.B) { benchResolve(b, 0.05) }
func BenchmarkResolve_Dense(b *testing.B)  { benchResolve(b, 0.5) }
