package graphcut

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-segment/flow"
	"github.com/katalvlaran/lvlath-segment/pixelgraph"
	"github.com/katalvlaran/lvlath-segment/segmentation"
)

// Cut is the foreground/background bipartition of an image.
//
// Foreground and Background hold pixel ids in ascending order; together
// they partition 0..Width*Height-1. Terminals never appear in either.
// Residual is the final residual network, kept for inspection.
type Cut struct {
	Width, Height int
	MaxFlow       int64
	Foreground    []int
	Background    []int
	Residual      *flow.Residual

	foreground []bool
}

// Segment builds the flow network for the image, runs max flow from source
// to sink and splits the pixels by residual reachability from the source.
//
// Errors are those of BuildNetwork, flow.ErrUnknownMethod, or ctx.Err() when
// the max-flow run is canceled. A network where no pixel reaches the sink
// is not an error: max flow is 0 and every pixel the source cannot reach
// is background.
func Segment(ctx context.Context, width, height int, pixels []pixelgraph.Pixel, opts Options) (*Cut, error) {
	net, err := BuildNetwork(width, height, pixels, opts)
	if err != nil {
		return nil, err
	}
	source, sink := Terminals(width, height)

	maxFlow, residual, err := flow.Compute(ctx, net, source, sink, opts.Method, &opts.Flow)
	if err != nil {
		return nil, err
	}

	reachable := flow.MinCut(residual, source)
	cut := &Cut{
		Width:      width,
		Height:     height,
		MaxFlow:    maxFlow,
		Foreground: make([]int, 0),
		Background: make([]int, 0),
		Residual:   residual,
		foreground: reachable[:width*height],
	}
	for v, fg := range cut.foreground {
		if fg {
			cut.Foreground = append(cut.Foreground, v)
		} else {
			cut.Background = append(cut.Background, v)
		}
	}

	return cut, nil
}

// IsForeground reports whether pixel v ended on the source side.
// Out-of-range ids report false.
func (c *Cut) IsForeground(v int) bool {
	return v >= 0 && v < len(c.foreground) && c.foreground[v]
}

// Segmentation returns the cut as a two-segment Segmentation:
// segment 0 is the foreground, segment 1 the background. Either may be empty.
func (c *Cut) Segmentation() *segmentation.Segmentation {
	s, err := segmentation.FromGroups(c.Width*c.Height, [][]int{c.Foreground, c.Background})
	if err != nil {
		panic(fmt.Sprintf("graphcut: cut is not a partition: %v", err))
	}

	return s
}
