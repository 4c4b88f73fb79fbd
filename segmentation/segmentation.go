package segmentation

import "fmt"

// FromLabels builds a Segmentation from an arbitrary per-vertex labelling.
// Equal labels mean the same segment; the label values themselves are
// discarded and replaced by dense ids 0..k-1 in order of first appearance
// while scanning vertices 0..len(labels)-1.
// Complexity: O(V).
func FromLabels(labels []int) *Segmentation {
	dense := make(map[int]int)
	s := &Segmentation{labels: make([]int, len(labels))}
	for v, l := range labels {
		id, ok := dense[l]
		if !ok {
			id = len(s.groups)
			dense[l] = id
			s.groups = append(s.groups, nil)
		}
		s.labels[v] = id
		s.groups[id] = append(s.groups[id], v)
	}
	s.weights = make([]float64, len(s.groups))

	return s
}

// FromGroups builds a Segmentation of n vertices from explicit groups,
// keeping group order as segment ids. Empty groups are allowed.
// Returns ErrNotPartition unless every vertex 0..n-1 appears in exactly
// one group and no group holds an id outside that range.
// Complexity: O(n + Σ|group|).
func FromGroups(n int, groups [][]int) (*Segmentation, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrNotPartition, n)
	}
	labels := make([]int, n)
	for v := range labels {
		labels[v] = -1
	}
	s := &Segmentation{
		labels:  labels,
		groups:  make([][]int, len(groups)),
		weights: make([]float64, len(groups)),
	}
	for id, g := range groups {
		for _, v := range g {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: vertex %d in group %d outside [0,%d)", ErrNotPartition, v, id, n)
			}
			if labels[v] >= 0 {
				return nil, fmt.Errorf("%w: vertex %d in groups %d and %d", ErrNotPartition, v, labels[v], id)
			}
			labels[v] = id
		}
	}
	for v, id := range labels {
		if id < 0 {
			return nil, fmt.Errorf("%w: vertex %d in no group", ErrNotPartition, v)
		}
		s.groups[id] = append(s.groups[id], v)
	}

	return s, nil
}

// Len returns the number of vertices covered.
func (s *Segmentation) Len() int {
	return len(s.labels)
}

// Count returns the number of segments.
func (s *Segmentation) Count() int {
	return len(s.groups)
}

// SegmentOf returns the segment id of vertex v, or ErrVertexOutOfRange.
// Complexity: O(1).
func (s *Segmentation) SegmentOf(v int) (int, error) {
	if v < 0 || v >= len(s.labels) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(s.labels))
	}

	return s.labels[v], nil
}

// SameSegment reports whether u and v belong to the same segment.
func (s *Segmentation) SameSegment(u, v int) (bool, error) {
	su, err := s.SegmentOf(u)
	if err != nil {
		return false, err
	}
	sv, err := s.SegmentOf(v)
	if err != nil {
		return false, err
	}

	return su == sv, nil
}

// Group returns a copy of the vertices of segment id, ascending.
// Complexity: O(|group|).
func (s *Segmentation) Group(id int) ([]int, error) {
	if id < 0 || id >= len(s.groups) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSegmentOutOfRange, id, len(s.groups))
	}

	return append([]int(nil), s.groups[id]...), nil
}

// Groups returns a deep copy of all segments, indexed by segment id.
// Complexity: O(V).
func (s *Segmentation) Groups() [][]int {
	out := make([][]int, len(s.groups))
	for i, g := range s.groups {
		out[i] = append([]int(nil), g...)
	}

	return out
}

// Labels returns a copy of the per-vertex segment ids.
func (s *Segmentation) Labels() []int {
	return append([]int(nil), s.labels...)
}

// Sizes returns the number of vertices in each segment, indexed by id.
func (s *Segmentation) Sizes() []int {
	sizes := make([]int, len(s.groups))
	for i, g := range s.groups {
		sizes[i] = len(g)
	}

	return sizes
}

// MergeWeight returns the accumulated union weight of segment id: the sum of
// every edge weight that merged two parts of it. Segmentations not produced
// by a merge report zero.
func (s *Segmentation) MergeWeight(id int) (float64, error) {
	if id < 0 || id >= len(s.groups) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrSegmentOutOfRange, id, len(s.groups))
	}

	return s.weights[id], nil
}
