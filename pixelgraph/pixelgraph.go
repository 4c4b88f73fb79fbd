// Package pixelgraph turns a decoded RGB image into an undirected graph:
//
//   - One vertex per pixel, id = y*Width + x (row-major)
//   - One edge per horizontally or vertically adjacent pair (4-connectivity)
//   - Edge weight = Euclidean RGB distance between the two pixels
//
// Edges are added once, while visiting each pixel's right and bottom
// neighbor, and stored symmetrically so they can be read from either end.
package pixelgraph

import (
	"fmt"
)

// Validate checks that width and height are positive and that count equals
// width*height. It returns ErrDimensions or ErrPixelCount (both wrap
// ErrInvalidInput) and nil otherwise.
// Complexity: O(1).
func Validate(width, height, count int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrDimensions, width, height)
	}
	if count != width*height {
		return fmt.Errorf("%w (got %d, want %d)", ErrPixelCount, count, width*height)
	}

	return nil
}

// New constructs a PixelGraph from a row-major pixel slice of length
// width*height. It copies the input to ensure immutability.
// Returns ErrDimensions if width or height is not positive,
// ErrPixelCount if len(pixels) != width*height.
//
// Steps:
//  1. Validate dimensions and pixel count.
//  2. Copy pixels and allocate one adjacency list per vertex.
//  3. For every (x,y): link to (x+1,y) if x+1 < W, then to (x,y+1) if y+1 < H.
//
// Complexity: O(W×H) time and memory.
func New(width, height int, pixels []Pixel) (*PixelGraph, error) {
	if err := Validate(width, height, len(pixels)); err != nil {
		return nil, err
	}
	// Copy to prevent external mutation
	px := make([]Pixel, len(pixels))
	copy(px, pixels)

	pg := &PixelGraph{
		Width:     width,
		Height:    height,
		pixels:    px,
		adjacency: make([][]Neighbor, len(px)),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			current := pg.index(x, y)
			if x+1 < width {
				pg.link(current, pg.index(x+1, y))
			}
			if y+1 < height {
				pg.link(current, pg.index(x, y+1))
			}
		}
	}

	return pg, nil
}

// link records the undirected edge u—v in both adjacency lists.
func (pg *PixelGraph) link(u, v int) {
	w := ColorDistance(pg.pixels[u], pg.pixels[v])
	pg.adjacency[u] = append(pg.adjacency[u], Neighbor{ID: v, Weight: w})
	pg.adjacency[v] = append(pg.adjacency[v], Neighbor{ID: u, Weight: w})
	pg.edgeCount++
}

// Order returns the number of vertices, Width*Height.
// Complexity: O(1).
func (pg *PixelGraph) Order() int {
	return len(pg.pixels)
}

// Size returns the number of undirected edges:
// (W-1)*H horizontal plus W*(H-1) vertical.
// Complexity: O(1).
func (pg *PixelGraph) Size() int {
	return pg.edgeCount
}

// InBounds reports whether (x,y) lies within the image.
// Complexity: O(1).
func (pg *PixelGraph) InBounds(x, y int) bool {
	return x >= 0 && x < pg.Width && y >= 0 && y < pg.Height
}

// Index maps (x,y) to its vertex id, or returns ErrVertexOutOfRange.
// Complexity: O(1).
func (pg *PixelGraph) Index(x, y int) (int, error) {
	if !pg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrVertexOutOfRange, x, y)
	}

	return pg.index(x, y), nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (pg *PixelGraph) index(x, y int) int {
	return y*pg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (pg *PixelGraph) Coordinate(idx int) (x, y int) {
	return idx % pg.Width, idx / pg.Width
}

// HasVertex reports whether v is a valid vertex id.
func (pg *PixelGraph) HasVertex(v int) bool {
	return v >= 0 && v < len(pg.pixels)
}

// Pixel returns the color of vertex v.
// Complexity: O(1).
func (pg *PixelGraph) Pixel(v int) (Pixel, error) {
	if !pg.HasVertex(v) {
		return Pixel{}, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return pg.pixels[v], nil
}

// Pixels returns a copy of the row-major pixel buffer.
// Complexity: O(W×H).
func (pg *PixelGraph) Pixels() []Pixel {
	out := make([]Pixel, len(pg.pixels))
	copy(out, pg.pixels)

	return out
}

// Neighbors returns a copy of v's adjacency list (2 to 4 entries on
// images larger than 1×1).
// Complexity: O(deg(v)).
func (pg *PixelGraph) Neighbors(v int) ([]Neighbor, error) {
	if !pg.HasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	out := make([]Neighbor, len(pg.adjacency[v]))
	copy(out, pg.adjacency[v])

	return out, nil
}

// Weight returns the weight of edge u—v. The lookup is symmetric:
// Weight(u, v) == Weight(v, u). ok is false when u and v are not adjacent
// or either id is out of range.
// Complexity: O(deg(u)), at most 4.
func (pg *PixelGraph) Weight(u, v int) (w float64, ok bool) {
	if !pg.HasVertex(u) || !pg.HasVertex(v) {
		return 0, false
	}
	for _, n := range pg.adjacency[u] {
		if n.ID == v {
			return n.Weight, true
		}
	}

	return 0, false
}

// Edges lists every undirected edge exactly once, oriented From < To.
// Order is deterministic: ascending From, and for a given From the right
// neighbor precedes the bottom neighbor.
// Complexity: O(V + E).
func (pg *PixelGraph) Edges() []Edge {
	edges := make([]Edge, 0, pg.edgeCount)
	for u, nbrs := range pg.adjacency {
		for _, n := range nbrs {
			// canonical orientation avoids double counting
			if u < n.ID {
				edges = append(edges, Edge{From: u, To: n.ID, Weight: n.Weight})
			}
		}
	}

	return edges
}
