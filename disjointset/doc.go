// Package disjointset implements the union-find (disjoint-set) structure used
// by the threshold-merge segmenter.
//
// Elements are dense integers 0..n-1, so the forest lives in three flat
// slices (parent, rank, weight) instead of keyed maps.
//
// Operations:
//
//   - Find(x):         root of x, with full path compression.
//   - Union(x, y, w):  union by rank; the surviving root's weight becomes
//     own + other + w. No-op when already joined.
//   - Connected, Weight, Rank, Count, Roots: read-side helpers.
//
// Invariants:
//
//   - Union only ever hangs a root under another root, so parent chains
//     never cycle and Find always terminates.
//   - After Find(x), every node visited on the way points at the root.
//   - Find(Find(x)) == Find(x).
//
// Complexity: O(n) to build, amortized O(α(n)) per operation.
package disjointset
