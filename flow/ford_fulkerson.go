package flow

import (
	"context"
)

// FordFulkerson computes the maximum flow from `source` to `sink` in `net`
// using the Ford–Fulkerson method (DFS-based augmenting paths).
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : residual-capacity matrix after flow
//   - err      : ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink, or
//     context cancellation error
//
// Steps:
//  1. Validate source and sink exist (O(1)).
//  2. Copy capacities into the residual matrix (O(V²)).
//  3. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Iteratively DFS to find any path s→t with positive capacity (O(V²)).
//     c. If none found, break.
//     d. Augment along path by its bottleneck (O(path length)).
//     e. Accumulate flow; if opts.Verbose, log path and delta.
//
// Complexity:
//
//	Time:   O(V² * F) where F = maxFlow (integral capacities).
//	Memory: O(V²) for the residual matrix, O(V) for the DFS stack.
//
// Suitable for small networks; for stronger guarantees,
// consider Edmonds–Karp (BFS) or Dinic (level graph + blocking flow).
func FordFulkerson(
	ctx context.Context,
	net *Network,
	source, sink int,
	opts *FlowOptions,
) (maxFlow int64, residual *Residual, err error) {
	// 1) Validate that source and sink exist
	if err = validate(net, source, sink); err != nil {
		return 0, nil, err
	}

	// 2) Residual starts equal to capacity
	residual = newResidual(net)
	parent := make([]int, net.n)

	// 3) Main Ford–Fulkerson loop: find any augmenting path and push flow
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, residual, err
		}
		if !dfsAugmentingPath(residual, source, sink, parent) {
			break
		}
		var path []int
		if opts != nil && opts.Verbose {
			path = pathOf(source, sink, parent)
		}
		bottle := augmentPath(residual, source, sink, parent)
		maxFlow += bottle
		opts.logf("ford-fulkerson", bottle, maxFlow, "path", path)
	}

	return maxFlow, residual, nil
}

// dfsAugmentingPath searches depth-first, with an explicit stack, for any
// source→sink path over positive residual edges and records it in parent.
// Returns true when sink was reached.
func dfsAugmentingPath(r *Residual, source, sink int, parent []int) bool {
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, r.net.n)
	visited[source] = true

	stack := []int{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v, c := range r.row(u) {
			if visited[v] || c <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return true
			}
			stack = append(stack, v)
		}
	}

	return false
}
