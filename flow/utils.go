package flow

import (
	"context"
	"math"
)

// validate checks the endpoints shared by every max-flow entry point.
func validate(net *Network, source, sink int) error {
	if !net.has(source) {
		return ErrSourceNotFound
	}
	if !net.has(sink) {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSourceIsSink
	}

	return nil
}

// bfsAugmentingPath runs a breadth-first search from source over edges with
// positive residual capacity, filling parent (parent[source] = -1, -1 for
// unreached vertices). Candidate targets are scanned in ascending id order
// and the search stops as soon as sink is labelled.
// Returns true when sink was reached.
//
// Complexity: O(V²) on the dense matrix.
func bfsAugmentingPath(r *Residual, source, sink int, parent []int) bool {
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, r.net.n)
	visited[source] = true

	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for v, c := range r.row(u) {
			if visited[v] || c <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return true
			}
			queue = append(queue, v)
		}
	}

	return false
}

// augmentPath walks parent from sink back to source, finds the bottleneck
// residual capacity and pushes it along the path. Returns the bottleneck.
// Complexity: O(path length).
func augmentPath(r *Residual, source, sink int, parent []int) int64 {
	bottle := int64(math.MaxInt64)
	for v := sink; v != source; v = parent[v] {
		u := parent[v]
		if c := r.Capacity(u, v); c < bottle {
			bottle = c
		}
	}
	for v := sink; v != source; v = parent[v] {
		r.augment(parent[v], v, bottle)
	}

	return bottle
}

// pathOf reconstructs source→sink from parent, for verbose logging.
func pathOf(source, sink int, parent []int) []int {
	path := []int{sink}
	for v := sink; v != source; v = parent[v] {
		path = append(path, parent[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Compute selects and runs the max-flow algorithm named by method.
//
//	– MethodEdmondsKarp or "": EdmondsKarp
//	– MethodDinic:            Dinic
//	– MethodFordFulkerson:    FordFulkerson
//	– otherwise:              ErrUnknownMethod
//
// All methods return the same max-flow value; residuals may differ.
func Compute(
	ctx context.Context,
	net *Network,
	source, sink int,
	method Method,
	opts *FlowOptions,
) (int64, *Residual, error) {
	switch method {
	case MethodEdmondsKarp, "":
		return EdmondsKarp(ctx, net, source, sink, opts)
	case MethodDinic:
		return Dinic(ctx, net, source, sink, opts)
	case MethodFordFulkerson:
		return FordFulkerson(ctx, net, source, sink, opts)
	default:
		return 0, nil, ErrUnknownMethod
	}
}

// ParseMethod maps a method name to a Method, returning ErrUnknownMethod for
// anything else. The empty string selects MethodEdmondsKarp.
func ParseMethod(name string) (Method, error) {
	switch m := Method(name); m {
	case "":
		return MethodEdmondsKarp, nil
	case MethodEdmondsKarp, MethodDinic, MethodFordFulkerson:
		return m, nil
	default:
		return "", ErrUnknownMethod
	}
}
