// Package pixelgraph models a decoded RGB image as a pixel adjacency graph,
// the input of the threshold-merge segmenter.
//
// What:
//
//   - PixelGraph wraps a W×H row-major []Pixel.
//   - Vertex (x,y) has id y*W + x; edges join 4-neighbors.
//   - Edge weight is the Euclidean RGB distance, see ColorDistance.
//   - Edges() enumerates each undirected edge once (From < To) in a
//     deterministic order, the order the segmenter sorts stably.
//   - ConnectedComponents(maxWeight) groups pixels joined by light edges.
//
// Complexity:
//
//   - New:                 O(W×H), Memory: O(W×H).
//   - Edges:               O(W×H).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidInput: root of the invalid-input family, shared by every
//     package of the module.
//   - ErrDimensions: width or height is not positive.
//   - ErrPixelCount: len(pixels) != width*height.
//   - ErrVertexOutOfRange: vertex id or coordinate outside the image.
package pixelgraph
