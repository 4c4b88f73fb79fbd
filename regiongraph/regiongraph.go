package regiongraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlath-segment/pixelgraph"
	"github.com/katalvlaran/lvlath-segment/segmentation"
)

// Region is one segment: its id and pixel count.
type Region struct {
	ID   int
	Size int
}

// Link joins two adjacent regions, From < To.
type Link struct {
	From, To int
	// Boundary is the number of pixel edges crossing between the regions.
	Boundary int
	// Weight is the minimum color distance over those edges.
	Weight float64
}

// Graph is a region adjacency graph. Regions are indexed by segment id and
// Links are ordered by (From, To).
type Graph struct {
	Regions []Region
	Links   []Link
}

// Build derives the region adjacency graph of seg over the pixel graph g.
// Returns pixelgraph.ErrPixelCount if seg does not cover every vertex of g.
// Complexity: O(V + E log E).
func Build(g *pixelgraph.PixelGraph, seg *segmentation.Segmentation) (*Graph, error) {
	if seg.Len() != g.Order() {
		return nil, fmt.Errorf("%w (segmentation covers %d of %d vertices)", pixelgraph.ErrPixelCount, seg.Len(), g.Order())
	}

	out := &Graph{Regions: make([]Region, seg.Count())}
	for id, n := range seg.Sizes() {
		out.Regions[id] = Region{ID: id, Size: n}
	}

	labels := seg.Labels()
	index := make(map[[2]int]int)
	for _, e := range g.Edges() {
		a, b := labels[e.From], labels[e.To]
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		i, ok := index[key]
		if !ok {
			i = len(out.Links)
			index[key] = i
			out.Links = append(out.Links, Link{From: a, To: b, Weight: math.Inf(1)})
		}
		l := &out.Links[i]
		l.Boundary++
		l.Weight = math.Min(l.Weight, e.Weight)
	}
	sort.Slice(out.Links, func(i, j int) bool {
		if out.Links[i].From != out.Links[j].From {
			return out.Links[i].From < out.Links[j].From
		}
		return out.Links[i].To < out.Links[j].To
	})

	return out, nil
}

// Degree returns the number of regions adjacent to id.
func (g *Graph) Degree(id int) int {
	n := 0
	for _, l := range g.Links {
		if l.From == id || l.To == id {
			n++
		}
	}

	return n
}
