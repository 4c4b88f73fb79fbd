package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-segment/flow"
)

// ExampleEdmondsKarp computes a small max flow and its minimum cut.
func ExampleEdmondsKarp() {
	// 0=s, 3=t; two routes of capacity 3 and 2.
	net, _ := flow.NewNetwork(4)
	_ = net.AddEdge(0, 1, 3)
	_ = net.AddEdge(1, 3, 4)
	_ = net.AddEdge(0, 2, 5)
	_ = net.AddEdge(2, 3, 2)

	f, res, err := flow.EdmondsKarp(context.Background(), net, 0, 3, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	side := flow.MinCut(res, 0)
	fmt.Println("max flow:", f)
	fmt.Println("source side:", side)
	fmt.Println("cut capacity:", flow.CutCapacity(net, side))
	// Output:
	// max flow: 5
	// source side: [true false true false]
	// cut capacity: 5
}

// ExampleCompute selects an algorithm by name.
func ExampleCompute() {
	net, _ := flow.NewNetwork(3)
	_ = net.AddEdge(0, 1, 7)
	_ = net.AddEdge(1, 2, 4)

	m, _ := flow.ParseMethod("dinic")
	f, _, _ := flow.Compute(context.Background(), net, 0, 2, m, nil)
	fmt.Println(m, f)
	// Output: dinic 4
}
