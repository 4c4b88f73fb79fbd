// File: segmentation/example_test.go
package segmentation_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-segment/pixelgraph"
	"github.com/katalvlaran/lvlath-segment/segmentation"
)

// ExampleSegment demonstrates the threshold merge on a 3×2 image with a dark
// left block and a bright right column.
// Scenario:
//
//	dark  dark  bright
//	dark  dark  bright
//
// Edges inside each block weigh 0; edges across weigh ≈346. A threshold of
// 10 keeps the two blocks apart.
func ExampleSegment() {
	dark := pixelgraph.Pixel{R: 20, G: 20, B: 20}
	bright := pixelgraph.Pixel{R: 220, G: 220, B: 220}
	px := []pixelgraph.Pixel{dark, dark, bright, dark, dark, bright}

	seg, _ := segmentation.Segment(3, 2, px, 10)
	fmt.Println("segments:", seg.Count())
	for id, group := range seg.Groups() {
		fmt.Printf("segment %d: %v\n", id, group)
	}
	// Output:
	// segments: 2
	// segment 0: [0 1 3 4]
	// segment 1: [2 5]
}

// ExampleThresholdMerge shows how the segment count falls as the threshold
// rises on a horizontal gradient.
func ExampleThresholdMerge() {
	px := make([]pixelgraph.Pixel, 0, 5)
	for i := 0; i < 5; i++ {
		px = append(px, pixelgraph.Pixel{R: uint8(i * i * 10)})
	}
	// neighbor distances: 10 30 50 70
	g, _ := pixelgraph.New(5, 1, px)

	for _, thr := range []float64{5, 40, 100} {
		fmt.Printf("threshold %3.0f: %d segments\n", thr, segmentation.ThresholdMerge(g, thr).Count())
	}
	// Output:
	// threshold   5: 5 segments
	// threshold  40: 3 segments
	// threshold 100: 1 segments
}
