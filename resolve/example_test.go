package resolve_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regcolor/builder"
	"github.com/katalvlaran/regcolor/coloring"
	"github.com/katalvlaran/regcolor/resolve"
)

// ExampleResolve repairs a predictor that put every node of a 4-cycle plus
// one chord on the same color.
func ExampleResolve() {
	g, _ := builder.BuildGraph(4, nil, builder.Cycle(4))
	_ = g.AddEdge(2, 0)

	probs := mat.NewDense(4, 3, []float64{
		0.1, 0.8, 0.1,
		0.1, 0.7, 0.2,
		0.2, 0.6, 0.2,
		0.3, 0.5, 0.2,
	})
	pred, _ := coloring.NewPrediction(probs)

	before, _ := coloring.ValidatePrediction(g, pred)
	res, _ := resolve.Resolve(g, pred)
	after, _ := coloring.ValidatePrediction(g, pred)
	ch, _ := coloring.ExtractPrediction(g, pred)

	fmt.Println("before:", before)
	fmt.Println("after: ", after)
	fmt.Println("colors:", ch.Join(), "max:", res.MaxColorAfter)
	// Output:
	// before: edges=5 invalid=5 invalid%=100.00
	// after:  edges=5 invalid=0 invalid%=0.00
	// colors: 2,3,1,3 max: 3
}
