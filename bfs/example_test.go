package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/regcolor/bfs"
	"github.com/katalvlaran/regcolor/builder"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid laid out row-major.
func ExampleBFS() {
	g, err := builder.BuildGraph(9, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(8)
	fmt.Println(res.Order)
	fmt.Println(path)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 5 8]
}

// ExampleComponents splits a graph into independently colorable parts.
func ExampleComponents() {
	g, _ := builder.BuildGraph(6, nil, builder.Path(3))
	_ = builder.Apply(g, []builder.BuilderOption{builder.WithOffset(3)}, builder.Complete(3))

	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	// Output:
	// [[0 1 2] [3 4 5]]
}
