package flow

import (
	"context"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual-capacity matrix after flow
//   - err: non-nil on invalid endpoints or cancellation.
//
// Steps:
//  1. Validate source and sink.
//  2. Copy capacities into a fresh residual matrix.
//  3. Repeat until BFS no longer reaches sink:
//     a. Check ctx for cancellation.
//     b. BFS from source over residual > 0, ascending target ids,
//     stopping once sink is labelled.
//     c. Walk parents from sink to find the bottleneck; subtract it on
//     forward edges, add it on reverse edges; add it to maxFlow.
//
// Cancellation is checked once per BFS round. On cancellation the flow so
// far and its residual (valid and resumable) are returned with ctx.Err().
//
// Options (nil uses defaults):
//   - Verbose + Logger: log each augmenting path at debug level.
//
// Complexity: O(V · E²) augmentations bound; each BFS is O(V²) on the dense matrix.
// Memory:     O(V²)
func EdmondsKarp(
	ctx context.Context,
	net *Network,
	source, sink int,
	opts *FlowOptions,
) (maxFlow int64, residual *Residual, err error) {
	// 1) Validate presence of source/sink
	if err = validate(net, source, sink); err != nil {
		return 0, nil, err
	}

	// 2) Residual starts equal to capacity
	residual = newResidual(net)
	parent := make([]int, net.n)

	// 3) Main loop: find BFS augmenting paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, residual, err
		}
		if !bfsAugmentingPath(residual, source, sink, parent) {
			break
		}
		var path []int
		if opts != nil && opts.Verbose {
			path = pathOf(source, sink, parent)
		}
		bottle := augmentPath(residual, source, sink, parent)
		maxFlow += bottle
		opts.logf("edmonds-karp", bottle, maxFlow, "path", path)
	}

	return maxFlow, residual, nil
}
