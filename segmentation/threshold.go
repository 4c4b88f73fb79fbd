package segmentation

import (
	"sort"

	"github.com/katalvlaran/lvlath-segment/disjointset"
	"github.com/katalvlaran/lvlath-segment/pixelgraph"
)

// ThresholdMerge segments g by merging adjacent pixels whose edge weight is
// strictly below one global threshold, lightest edges first.
//
// Steps:
//  1. Collect every undirected edge once via g.Edges() (From < To).
//  2. Sort edges by ascending Weight (sort.SliceStable keeps the enumeration
//     order of g.Edges() for equal weights).
//  3. Initialize a disjoint-set forest with one element per vertex.
//  4. For each edge in order: if the endpoints have different roots and
//     Weight < threshold, union them passing the edge weight.
//  5. Group vertices by final root; group ids are dense, in order of
//     first appearance scanning vertices 0..V-1.
//
// The threshold is fixed for every merge decision: it is never compared
// against the heaviest edge already inside a component.
//
// Degenerate thresholds are valid: threshold ≤ 0 (or NaN) leaves every pixel
// alone; +Inf merges the whole image, which is 4-connected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(V log V). Memory: O(V + E).
func ThresholdMerge(g *pixelgraph.PixelGraph, threshold float64) *Segmentation {
	// 1. Collect edges in canonical orientation.
	edges := g.Edges()

	// 2. Stable sort by weight for deterministic tie-breaking.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. One element per pixel.
	ds := disjointset.New(g.Order())

	// 4. Merge below the threshold. Edges are sorted, so the first edge at or
	//    above the threshold ends the scan.
	for _, e := range edges {
		if !(e.Weight < threshold) {
			break
		}
		if ds.Find(e.From) != ds.Find(e.To) {
			ds.Union(e.From, e.To, e.Weight)
		}
	}

	// 5. Group by root.
	roots := ds.Roots()
	s := FromLabels(roots)
	for id, grp := range s.groups {
		s.weights[id] = ds.Weight(grp[0])
	}

	return s
}

// Segment is the one-call form of ThresholdMerge: it builds the pixel graph
// of a width×height image and merges it under threshold.
// Returns pixelgraph.ErrDimensions or pixelgraph.ErrPixelCount on bad input.
func Segment(width, height int, pixels []pixelgraph.Pixel, threshold float64) (*Segmentation, error) {
	g, err := pixelgraph.New(width, height, pixels)
	if err != nil {
		return nil, err
	}

	return ThresholdMerge(g, threshold), nil
}
