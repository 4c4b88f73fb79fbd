package flow

import (
	"context"
	"math"
)

// Dinic computes the maximum flow from `source` to `sink` in `net`
// using Dinic’s algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : residual-capacity matrix after flow
//   - err      : ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
//     or context cancellation error
//
// Steps:
//  1. Validate that `source` and `sink` exist (O(1)).
//  2. Copy capacities into the residual matrix (O(V²)).
//  3. Repeat until no more augmenting paths:
//     a. Check for cancellation (O(1)).
//     b. BFS to build the level graph: distance from source for each vertex (O(V²)).
//     c. If sink unreachable, break.
//     d. DFS-based blocking flow pushes until none remains, resuming each
//     vertex's scan at iter[u]; optionally rebuild the level graph every
//     LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E) in general.
//	Memory: O(V²) for the residual matrix; O(V) for level and iter.
func Dinic(
	ctx context.Context,
	net *Network,
	source, sink int,
	opts *FlowOptions,
) (maxFlow int64, residual *Residual, err error) {
	// 1) Validate presence of source and sink
	if err = validate(net, source, sink); err != nil {
		return 0, nil, err
	}

	// 2) Residual starts equal to capacity
	residual = newResidual(net)
	n := net.n
	level := make([]int, n)
	iter := make([]int, n)

	rebuild := 0
	if opts != nil {
		rebuild = opts.LevelRebuildInterval
	}

	// 3) Main loop: level graph + blocking flows
	augmentCount := 0
	for {
		// 3a) Cancellation check before BFS
		if err = ctx.Err(); err != nil {
			return maxFlow, residual, err
		}

		// 3b) BFS to compute levels
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue := []int{source}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v, c := range residual.row(u) {
				if c > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		// 3c) If sink unreachable in level graph, we're done
		if level[sink] < 0 {
			break
		}

		// 3d) DFS-based blocking flow
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, residual, err
			}
			pushed := dfsDinicPush(residual, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.logf("dinic", pushed, maxFlow)
			// Optionally rebuild level graph
			if rebuild > 0 && augmentCount%rebuild == 0 {
				break
			}
		}
	}

	return maxFlow, residual, nil
}

// dfsDinicPush recursively pushes flow along the level graph, updates the
// residual in place, and returns the amount actually sent.
// iter[u] is the next target column to try from u; columns that cannot
// carry more flow in this phase are skipped for good.
func dfsDinicPush(
	r *Residual,
	level, iter []int,
	u, sink int,
	available int64,
) int64 {
	// If we reached sink, return the available flow
	if u == sink {
		return available
	}
	row := r.row(u)
	for ; iter[u] < len(row); iter[u]++ {
		v := iter[u]
		capUV := row[v]
		if capUV <= 0 || level[v] != level[u]+1 {
			continue
		}
		// Determine how much we can send: min(available, capUV)
		send := available
		if capUV < send {
			send = capUV
		}
		// Recurse to push from v toward sink
		if pushed := dfsDinicPush(r, level, iter, v, sink, send); pushed > 0 {
			r.augment(u, v, pushed)

			return pushed
		}
	}

	return 0
}
