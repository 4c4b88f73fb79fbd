// Package regiongraph summarizes a segmentation as a region adjacency graph:
// one node per segment, one undirected link per pair of segments that share
// at least one 4-connected pixel boundary.
//
// A link carries the number of boundary pixel pairs and the smallest color
// distance across the boundary, the weight a threshold merge would need to
// exceed to keep the two regions apart.
//
// Graphs export to Graphviz DOT with [ToDOT] and render to SVG with [RenderSVG].
package regiongraph
