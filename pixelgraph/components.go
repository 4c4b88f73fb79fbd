package pixelgraph

// ConnectedComponents finds all contiguous regions of pixels joined by edges
// whose weight is strictly less than maxWeight.
// Returns a slice of components; each component is a slice of vertex ids
// in BFS discovery order. Components are ordered by their smallest vertex id.
//
// With maxWeight = +Inf every image is a single component (the 4-connected
// grid is connected); with maxWeight ≤ 0 every pixel stands alone.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (pg *PixelGraph) ConnectedComponents(maxWeight float64) [][]int {
	total := pg.Order()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, n := range pg.adjacency[u] {
				if seen[n.ID] || !(n.Weight < maxWeight) {
					continue
				}
				seen[n.ID] = true
				queue = append(queue, n.ID)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
