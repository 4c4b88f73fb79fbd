// File: pixelgraph/example_test.go
package pixelgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-segment/pixelgraph"
)

// ExampleNew builds the graph of a 2×2 image and lists its edges.
// Scenario:
//
//	black white
//	black black
//
// Edges touching the white pixel weigh 255·√3 ≈ 441.67, the others 0.
func ExampleNew() {
	black := pixelgraph.Pixel{}
	white := pixelgraph.Pixel{R: 255, G: 255, B: 255}
	pg, _ := pixelgraph.New(2, 2, []pixelgraph.Pixel{black, white, black, black})

	for _, e := range pg.Edges() {
		fmt.Printf("%d—%d %.2f\n", e.From, e.To, e.Weight)
	}
	// Output:
	// 0—1 441.67
	// 0—2 0.00
	// 1—3 441.67
	// 2—3 0.00
}

// ExamplePixelGraph_ConnectedComponents groups pixels joined by edges lighter
// than 1.0.
func ExamplePixelGraph_ConnectedComponents() {
	black := pixelgraph.Pixel{}
	white := pixelgraph.Pixel{R: 255, G: 255, B: 255}
	pg, _ := pixelgraph.New(3, 1, []pixelgraph.Pixel{black, black, white})

	for i, comp := range pg.ConnectedComponents(1.0) {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := pg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}
	// Output:
	// component 0: (0,0) (1,0)
	// component 1: (2,0)
}
