// Package segment is the root of a small image-segmentation toolkit built on
// graph algorithms over the pixel grid.
//
// An image becomes a graph with one vertex per pixel (id = y*W + x) and one
// edge per 4-connected neighbor pair, weighted by Euclidean RGB distance.
// Two segmenters work on it:
//
//	segmentation/  threshold merge: union every edge lighter than a fixed
//	               threshold, in ascending weight order
//	graphcut/      foreground/background split by an s–t minimum cut
//
// Supporting packages:
//
//	pixelgraph/    the 4-connected pixel graph and color metric
//	disjointset/   union-find with path compression, rank and set weights
//	flow/          dense flow networks; Edmonds–Karp, Dinic, Ford–Fulkerson; min cut
//	imageio/       PPM/PNG decode and encode, segment palettes
//	regiongraph/   region adjacency graph of a segmentation, DOT and SVG export
//
// The segment command (cmd/segment) wires them together:
//
//	segment merge imagem.ppm -t 10 -t 15 -t 20
//	segment cut imagem.ppm --foreground 180 --background 150
package segment
