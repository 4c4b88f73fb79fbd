// Package graphcut splits an image into foreground and background with a
// minimum s–t cut.
//
// The image becomes a flow network of W*H+2 vertices: one per pixel
// (id = y*W + x) plus a source (W*H) and a sink (W*H+1).
//
//   - source→pixel, capacity TerminalCapacity, when intensity ≥ ForegroundThreshold
//   - pixel→sink, capacity TerminalCapacity, when intensity ≤ BackgroundThreshold
//   - pixel↔neighbor, both directions, capacity int(max(0, NeighborCeiling − distance))
//
// The two terminal rules are independent, so a pixel may be tied to both
// terminals when the thresholds overlap. Similar neighbors get high capacity
// and are expensive to separate; dissimilar neighbors are cheap to cut.
//
// After max flow, pixels still reachable from the source in the residual
// graph form the foreground; everything else is background.
//
// Example:
//
//	cut, err := graphcut.Segment(ctx, w, h, pixels, graphcut.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cut.MaxFlow, len(cut.Foreground), len(cut.Background))
package graphcut
