package graphcut

import (
	"fmt"

	"github.com/katalvlaran/lvlath-segment/flow"
	"github.com/katalvlaran/lvlath-segment/pixelgraph"
)

const (
	// DefaultTerminalCapacity anchors a pixel to a terminal. It exceeds any
	// neighbor capacity, so terminal edges are effectively uncuttable.
	DefaultTerminalCapacity int64 = 1000
	// DefaultNeighborCeiling is the capacity of an edge between identical colors.
	DefaultNeighborCeiling = 100.0
	// DefaultForegroundThreshold is the minimum intensity tied to the source.
	DefaultForegroundThreshold = 180.0
	// DefaultBackgroundThreshold is the maximum intensity tied to the sink.
	DefaultBackgroundThreshold = 150.0
)

// ErrTerminalCapacity indicates a negative terminal capacity.
var ErrTerminalCapacity = fmt.Errorf("graphcut: %w: terminal capacity must be non-negative", pixelgraph.ErrInvalidInput)

// Options configures network construction and the max-flow run.
//
// ForegroundThreshold > BackgroundThreshold is expected for a meaningful
// bipartition but not enforced.
type Options struct {
	ForegroundThreshold float64
	BackgroundThreshold float64
	TerminalCapacity    int64
	NeighborCeiling     float64

	// Method selects the max-flow engine; "" means Edmonds–Karp.
	Method flow.Method
	// Flow is handed to the max-flow engine (logging, Dinic rebuilds).
	Flow flow.FlowOptions
}

// DefaultOptions returns the thresholds 180/150, terminal capacity 1000,
// neighbor ceiling 100 and the Edmonds–Karp engine.
func DefaultOptions() Options {
	return Options{
		ForegroundThreshold: DefaultForegroundThreshold,
		BackgroundThreshold: DefaultBackgroundThreshold,
		TerminalCapacity:    DefaultTerminalCapacity,
		NeighborCeiling:     DefaultNeighborCeiling,
		Method:              flow.MethodEdmondsKarp,
		Flow:                flow.DefaultOptions(),
	}
}

// Terminals returns the source and sink vertex ids of a width×height network.
func Terminals(width, height int) (source, sink int) {
	return width * height, width*height + 1
}
