package flow_test

import (
	"context"
	"testing"
)

// benchmarkSolver runs one algorithm on a fixed random network of n vertices.
func benchmarkSolver(b *testing.B, name string, n int) {
	net := randomNetwork(b, n, 0.1, 100, 42)
	run := solvers[name]
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := run(ctx, net, 0, n-1, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEdmondsKarp_200(b *testing.B)   { benchmarkSolver(b, "EdmondsKarp", 200) }
func BenchmarkDinic_200(b *testing.B)         { benchmarkSolver(b, "Dinic", 200) }
func BenchmarkFordFulkerson_200(b *testing.B) { benchmarkSolver(b, "FordFulkerson", 200) }
