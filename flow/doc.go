// Package flow implements maximum-flow algorithms on a dense, integer
// capacitated Network, plus minimum-cut extraction from the final residual.
//
// The key algorithms offered are:
//
//	Edmonds–Karp    BFS shortest augmenting paths     O(V · E²)   default, used by graphcut
//	Dinic           level graph + blocking flow       O(V² · E)
//	Ford–Fulkerson  DFS any augmenting path           O(V² · F), F = max flow
//
// All three share the O(V²) residual matrix.
//
// # Network
//
// Vertices are dense ids 0..n-1. Capacities live in an n×n row-major matrix:
// AddEdge accumulates into capacity[u][v]; zero means "no edge". Because the
// reverse edge of u→v is simply cell [v][u], antiparallel edges need no
// special pairing.
//
// # API
//
//	func EdmondsKarp(ctx, net, source, sink, opts) (maxFlow int64, residual *Residual, err error)
//	func Dinic(ctx, net, source, sink, opts) (int64, *Residual, error)
//	func FordFulkerson(ctx, net, source, sink, opts) (int64, *Residual, error)
//	func Compute(ctx, net, source, sink, method, opts) (int64, *Residual, error)
//	func MinCut(residual, source) []bool
//	func CutCapacity(net, sourceSide) int64
//
// Residual exposes remaining capacity and net flow per ordered pair. After any
// algorithm returns:
//
//	residual[u][v] + residual[v][u] == capacity[u][v] + capacity[v][u]
//	NetOutflow(v) == 0 for every v other than source and sink
//	CutCapacity(net, MinCut(residual, source)) == maxFlow
//
// FlowOptions (nil means defaults):
//
//	type FlowOptions struct {
//	    Verbose              bool        // log each augmentation
//	    Logger               *log.Logger // charmbracelet logger receiving debug records
//	    LevelRebuildInterval int         // Dinic only: rebuild level graph every N pushes
//	}
//
// # Errors
//
//	ErrSourceNotFound   - source outside the network.
//	ErrSinkNotFound     - sink outside the network.
//	ErrSourceIsSink     - source == sink.
//	ErrVertexCount      - NewNetwork with n ≤ 0.
//	ErrVertexOutOfRange - AddEdge endpoint outside the network.
//	EdgeError           - AddEdge with a negative capacity.
//	ErrUnknownMethod    - Compute / ParseMethod with an unknown name.
//	context.Canceled / context.DeadlineExceeded - ctx done between rounds.
package flow
