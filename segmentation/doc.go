// Package segmentation partitions an image into segments and describes the
// result.
//
// Segmentation is the common result type: an exact partition of the pixel
// ids 0..W·H-1 into disjoint groups. Both segmenters in the module produce
// one: ThresholdMerge here, and the foreground/background cut in graphcut
// (via FromGroups).
//
// ThresholdMerge is a simplified minimum-spanning-forest clustering in the
// style of Kruskal: edges of the pixel graph are visited lightest first and
// their endpoints merged in a disjoint-set forest while the weight stays
// strictly below a single global threshold.
//
//	seg, err := segmentation.Segment(w, h, pixels, 15)
//	for id, group := range seg.Groups() { ... }
//
// Properties:
//
//   - threshold ≤ min edge weight → every pixel is its own segment.
//   - threshold = +Inf            → one segment (the pixel grid is connected).
//   - Raising the threshold never increases the number of segments.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
//
// Errors:
//
//   - ErrVertexOutOfRange:  SegmentOf / SameSegment with an unknown vertex.
//   - ErrSegmentOutOfRange: Group / MergeWeight with an unknown segment.
//   - ErrNotPartition:      FromGroups input is not an exact partition.
//
// All three wrap pixelgraph.ErrInvalidInput.
package segmentation
