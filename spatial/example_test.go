package spatial_test

import (
	"fmt"

	"github.com/katalvlaran/tollway/core"
	"github.com/katalvlaran/tollway/spatial"
)

func ExampleIndex_Nearest() {
	g := core.NewGraph()
	_ = g.AddVertex("depot", core.Point{X: 0, Y: 0})
	_ = g.AddVertex("harbor", core.Point{X: 8, Y: 1})
	_ = g.AddVertex("airport", core.Point{X: 3, Y: 9})

	idx, _ := spatial.NewIndex(g)
	id, _ := idx.Nearest(core.Point{X: 6, Y: 2})
	fmt.Println(id)

	hits, _ := idx.NearestK(core.Point{X: 1, Y: 5}, 2)
	for _, h := range hits {
		fmt.Printf("%s %.2f\n", h.ID, h.Distance)
	}
	// Output:
	// harbor
	// airport 4.47
	// depot 5.10
}
