// Package pixelgraph defines core types, sentinel errors and the color metric
// for the pixelgraph subpackage of github.com/katalvlaran/lvlath-segment.
package pixelgraph

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is the root of the invalid-input error family. Every
// validation failure raised by the segmentation packages wraps it, so callers
// can separate caller mistakes from I/O failures with a single errors.Is check.
var ErrInvalidInput = errors.New("invalid input")

// Sentinel errors for pixelgraph operations.
var (
	// ErrDimensions indicates a non-positive width or height.
	ErrDimensions = fmt.Errorf("pixelgraph: %w: width and height must be positive", ErrInvalidInput)
	// ErrPixelCount indicates the pixel sequence length differs from width*height.
	ErrPixelCount = fmt.Errorf("pixelgraph: %w: pixel count must equal width*height", ErrInvalidInput)
	// ErrVertexOutOfRange indicates a vertex id outside [0, width*height).
	ErrVertexOutOfRange = fmt.Errorf("pixelgraph: %w: vertex out of range", ErrInvalidInput)
)

// Pixel is a single RGB sample with 8-bit channels. Pixels are values and
// never mutated once the graph is built.
type Pixel struct {
	R, G, B uint8
}

// Intensity returns the mean of the three channels, (R+G+B)/3, on the same
// 0..255 scale as the channels themselves.
// Complexity: O(1).
func (p Pixel) Intensity() float64 {
	return (float64(p.R) + float64(p.G) + float64(p.B)) / 3.0
}

// ColorDistance returns the Euclidean distance between a and b in RGB space:
//
//	sqrt((r1-r2)² + (g1-g2)² + (b1-b2)²)
//
// The result lies in [0, 255·√3 ≈ 441.67].
// Complexity: O(1).
func ColorDistance(a, b Pixel) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)

	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Neighbor is one entry of a vertex adjacency list: the neighbor's vertex id
// and the weight of the undirected edge leading to it.
type Neighbor struct {
	ID     int
	Weight float64
}

// Edge is an undirected weighted edge reported once, in canonical
// orientation From < To.
type Edge struct {
	From, To int
	Weight   float64
}

// PixelGraph treats a row-major pixel buffer as an undirected weighted graph.
// It is immutable once built.
// Width and Height define dimensions; vertex id of (x,y) is y*Width + x.
// Every vertex is linked to its 4-neighbors with weight ColorDistance.
type PixelGraph struct {
	Width, Height int
	pixels        []Pixel
	adjacency     [][]Neighbor
	edgeCount     int
}
