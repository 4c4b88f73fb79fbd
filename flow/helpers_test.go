package flow_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-segment/flow"
)

// solver is the shared signature of the three max-flow algorithms.
type solver func(context.Context, *flow.Network, int, int, *flow.FlowOptions) (int64, *flow.Residual, error)

var solvers = map[string]solver{
	"EdmondsKarp":   flow.EdmondsKarp,
	"Dinic":         flow.Dinic,
	"FordFulkerson": flow.FordFulkerson,
}

// edge is a test-table edge.
type edge struct {
	u, v int
	c    int64
}

// buildNetwork constructs a network of n vertices from edges.
func buildNetwork(t testing.TB, n int, edges []edge) *flow.Network {
	t.Helper()
	net, err := flow.NewNetwork(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, net.AddEdge(e.u, e.v, e.c))
	}
	return net
}

// clrsNetwork is the classic six-vertex textbook network with max flow 23.
//
//	0=s 1=v1 2=v2 3=v3 4=v4 5=t
func clrsNetwork(t testing.TB) *flow.Network {
	return buildNetwork(t, 6, []edge{
		{0, 1, 16}, {0, 2, 13},
		{1, 3, 12},
		{2, 1, 4}, {2, 4, 14},
		{3, 2, 9}, {3, 5, 20},
		{4, 3, 7}, {4, 5, 4},
	})
}

// randomNetwork builds a directed network of n vertices where each ordered
// pair u→v (u≠v) gets an edge with probability p and capacity in [1, maxCap].
func randomNetwork(t testing.TB, n int, p float64, maxCap int64, seed int64) *flow.Network {
	t.Helper()
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	net, err := flow.NewNetwork(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < p {
				require.NoError(t, net.AddEdge(u, v, 1+r.Int63n(maxCap)))
			}
		}
	}
	return net
}

// requireFlowInvariants checks the residual identities that must hold after
// any completed max-flow computation.
func requireFlowInvariants(t *testing.T, net *flow.Network, res *flow.Residual, s, sink int, maxFlow int64) {
	t.Helper()
	n := net.Order()
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			require.Equal(t,
				net.Capacity(u, v)+net.Capacity(v, u),
				res.Capacity(u, v)+res.Capacity(v, u),
				"residual pair sum %d↔%d", u, v)
			require.GreaterOrEqual(t, res.Capacity(u, v), int64(0))
			require.GreaterOrEqual(t, res.Capacity(v, u), int64(0))
		}
		if u != s && u != sink {
			require.Zero(t, res.NetOutflow(u), "conservation at %d", u)
		}
	}
	require.Equal(t, maxFlow, res.NetOutflow(s))
	require.Equal(t, -maxFlow, res.NetOutflow(sink))
	require.LessOrEqual(t, maxFlow, net.OutCapacity(s))
	require.LessOrEqual(t, maxFlow, net.InCapacity(sink))
	require.Equal(t, maxFlow, flow.CutCapacity(net, flow.MinCut(res, s)), "max-flow/min-cut duality")
}
