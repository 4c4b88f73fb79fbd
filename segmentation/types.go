// Package segmentation defines the Segmentation result shared by every
// segmenter in the module, and sentinel errors for reading it.
package segmentation

import (
	"fmt"

	"github.com/katalvlaran/lvlath-segment/pixelgraph"
)

// Sentinel errors for segmentation operations. All wrap pixelgraph.ErrInvalidInput.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, Len()).
	ErrVertexOutOfRange = fmt.Errorf("segmentation: %w: vertex out of range", pixelgraph.ErrInvalidInput)
	// ErrSegmentOutOfRange indicates a segment id outside [0, Count()).
	ErrSegmentOutOfRange = fmt.Errorf("segmentation: %w: segment out of range", pixelgraph.ErrInvalidInput)
	// ErrNotPartition indicates groups that miss, repeat or overflow vertices.
	ErrNotPartition = fmt.Errorf("segmentation: %w: groups do not partition the vertex set", pixelgraph.ErrInvalidInput)
)

// Segmentation assigns every vertex 0..Len()-1 to exactly one segment
// 0..Count()-1. It is immutable once built.
//
//	labels[v]  segment id of vertex v
//	groups[s]  vertex ids of segment s, ascending
//	weights[s] accumulated merge weight of segment s (zero when unknown)
//
// Segment ids carry no meaning beyond identity.
type Segmentation struct {
	labels  []int
	groups  [][]int
	weights []float64
}
