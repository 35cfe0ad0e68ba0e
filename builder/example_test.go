package builder_test

import (
	"fmt"

	"github.com/katalvlaran/tollway/builder"
)

// ExampleGrid builds a 2×3 grid with one-unit spacing.
func ExampleGrid() {
	g, err := builder.Build(builder.Grid(2, 3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())
	nb, _ := g.NeighborIDs("0,1")
	fmt.Println("neighbors of 0,1:", nb)

	// Output:
	// vertices: [0,0 0,1 0,2 1,0 1,1 1,2]
	// edges: 7
	// neighbors of 0,1: [0,0 0,2 1,1]
}
