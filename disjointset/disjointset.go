// Package disjointset provides a fixed-size union-find forest over dense
// integer elements 0..n-1, with path compression, union by rank and an
// accumulated weight per component.
package disjointset

import "fmt"

// DisjointSet is a union-find forest stored as flat slices indexed by element.
//
//	parent[x] == x  ⇔ x is a root
//	rank[x]         upper bound on the height of x's tree (meaningful on roots)
//	weight[x]       sum of union weights merged into x's component (roots only)
//
// The zero value is an empty set; use New to allocate elements.
// A DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	rank   []int
	weight []float64
	count  int // number of disjoint components remaining
}

// New constructs a DisjointSet of n elements, each its own root with
// rank 0 and weight 0. Negative n is treated as 0.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		weight: make([]float64, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint components.
func (d *DisjointSet) Count() int {
	return d.count
}

// Find returns the root of x's component and repoints every node on the
// path from x directly at that root (full path compression).
//
// Find panics if x is out of range, or if the parent chain is longer than
// the number of elements (a cycle, impossible under Union).
//
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(x int) int {
	// First pass: walk up to the root.
	root := x
	for steps := 0; d.parent[root] != root; steps++ {
		if steps > len(d.parent) {
			panic(fmt.Sprintf("disjointset: parent chain from %d does not terminate", x))
		}
		root = d.parent[root]
	}
	// Second pass: point every visited node straight at the root.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the components of x and y, adding w to the merged weight.
// It is a no-op returning false when x and y already share a root.
//
// The lower-rank root is attached under the higher-rank root. On a tie,
// y's root goes under x's root and the survivor's rank grows by one.
// The survivor's weight becomes its own weight + the other's weight + w.
//
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(x, y int, w float64) bool {
	rootX := d.Find(x)
	rootY := d.Find(y)
	if rootX == rootY {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if d.rank[rootX] < d.rank[rootY] {
		rootX, rootY = rootY, rootX
	}
	d.parent[rootY] = rootX
	d.weight[rootX] += d.weight[rootY] + w
	if d.rank[rootX] == d.rank[rootY] {
		d.rank[rootX]++
	}
	d.count--

	return true
}

// Connected reports whether x and y are in the same component.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Weight returns the accumulated weight of x's component.
func (d *DisjointSet) Weight(x int) float64 {
	return d.weight[d.Find(x)]
}

// Rank returns the rank of x's root.
func (d *DisjointSet) Rank(x int) int {
	return d.rank[d.Find(x)]
}

// Roots returns, for every element, the root of its component.
// Complexity: O(n·α(n)).
func (d *DisjointSet) Roots() []int {
	roots := make([]int, len(d.parent))
	for i := range roots {
		roots[i] = d.Find(i)
	}

	return roots
}
