package graphcut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-segment/flow"
	"github.com/katalvlaran/lvlath-segment/pixelgraph"
)

// NeighborCapacity returns int(max(0, ceiling − distance)), truncated
// toward zero.
func NeighborCapacity(distance, ceiling float64) int64 {
	return int64(math.Max(0, ceiling-distance))
}

// BuildNetwork constructs the W*H+2 vertex flow network for an image.
// Returns the pixelgraph validation errors for bad dimensions or pixel
// count, and ErrTerminalCapacity for a negative terminal capacity.
//
// Steps:
//  1. Validate input and build the 4-connected pixel graph.
//  2. For each pixel add source→pixel and/or pixel→sink by intensity.
//  3. For each adjacent pair add both directed edges with NeighborCapacity.
//
// Complexity: O((W·H)²) memory for the dense capacity matrix, O(W·H) edges.
func BuildNetwork(width, height int, pixels []pixelgraph.Pixel, opts Options) (*flow.Network, error) {
	if opts.TerminalCapacity < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrTerminalCapacity, opts.TerminalCapacity)
	}
	pg, err := pixelgraph.New(width, height, pixels)
	if err != nil {
		return nil, err
	}

	source, sink := Terminals(width, height)
	net, err := flow.NewNetwork(pg.Order() + 2)
	if err != nil {
		return nil, err
	}

	for v, p := range pixels {
		intensity := p.Intensity()
		if intensity >= opts.ForegroundThreshold {
			mustAdd(net, source, v, opts.TerminalCapacity)
		}
		if intensity <= opts.BackgroundThreshold {
			mustAdd(net, v, sink, opts.TerminalCapacity)
		}
	}
	for _, e := range pg.Edges() {
		c := NeighborCapacity(e.Weight, opts.NeighborCeiling)
		mustAdd(net, e.From, e.To, c)
		mustAdd(net, e.To, e.From, c)
	}

	return net, nil
}

// mustAdd adds an edge whose endpoints and capacity were already checked.
func mustAdd(net *flow.Network, u, v int, c int64) {
	if err := net.AddEdge(u, v, c); err != nil {
		panic(fmt.Sprintf("graphcut: building network: %v", err))
	}
}
