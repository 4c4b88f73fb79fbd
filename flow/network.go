package flow

import "fmt"

// Network is a directed capacitated graph over dense vertex ids 0..n-1,
// stored as an n×n row-major capacity matrix. capacity[u*n+v] is the total
// capacity of u→v; zero means no edge.
//
// Memory is O(V²) regardless of edge count.
type Network struct {
	n        int
	capacity []int64
}

// NewNetwork allocates an empty network of n vertices.
// Returns ErrVertexCount when n ≤ 0.
// Complexity: O(n²) time and memory.
func NewNetwork(n int) (*Network, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrVertexCount, n)
	}

	return &Network{n: n, capacity: make([]int64, n*n)}, nil
}

// Order returns the number of vertices.
func (net *Network) Order() int {
	return net.n
}

// has reports whether v is a valid vertex id.
func (net *Network) has(v int) bool {
	return v >= 0 && v < net.n
}

// AddEdge adds capacity c to the directed edge u→v. Capacities of repeated
// calls for the same ordered pair accumulate. Self-loops are ignored since
// they can never carry flow toward the sink.
//
// Returns ErrVertexOutOfRange for unknown endpoints and EdgeError for c < 0.
// Complexity: O(1).
func (net *Network) AddEdge(u, v int, c int64) error {
	if !net.has(u) || !net.has(v) {
		return fmt.Errorf("%w: %d→%d with %d vertices", ErrVertexOutOfRange, u, v, net.n)
	}
	if c < 0 {
		return EdgeError{From: u, To: v, Cap: c}
	}
	if u == v {
		return nil
	}
	net.capacity[u*net.n+v] += c

	return nil
}

// Capacity returns the total capacity of u→v, or 0 when either id is
// out of range.
// Complexity: O(1).
func (net *Network) Capacity(u, v int) int64 {
	if !net.has(u) || !net.has(v) {
		return 0
	}

	return net.capacity[u*net.n+v]
}

// OutCapacity returns the sum of capacities leaving u.
// Complexity: O(n).
func (net *Network) OutCapacity(u int) int64 {
	if !net.has(u) {
		return 0
	}
	var sum int64
	for _, c := range net.capacity[u*net.n : (u+1)*net.n] {
		sum += c
	}

	return sum
}

// InCapacity returns the sum of capacities entering v.
// Complexity: O(n).
func (net *Network) InCapacity(v int) int64 {
	if !net.has(v) {
		return 0
	}
	var sum int64
	for u := 0; u < net.n; u++ {
		sum += net.capacity[u*net.n+v]
	}

	return sum
}

// Residual is the residual-capacity matrix of a Network after (or during) a
// max-flow computation. It starts equal to the capacities; every
// augmentation of δ along u→v performs residual[u][v] -= δ and
// residual[v][u] += δ, so
//
//	residual[u][v] + residual[v][u] == capacity[u][v] + capacity[v][u]
//
// holds at all times.
type Residual struct {
	net      *Network
	residual []int64
}

// newResidual copies the capacities of net into a fresh residual matrix.
func newResidual(net *Network) *Residual {
	r := &Residual{net: net, residual: make([]int64, len(net.capacity))}
	copy(r.residual, net.capacity)

	return r
}

// Network returns the network this residual was derived from.
func (r *Residual) Network() *Network {
	return r.net
}

// Capacity returns the remaining residual capacity of u→v.
// Complexity: O(1).
func (r *Residual) Capacity(u, v int) int64 {
	if !r.net.has(u) || !r.net.has(v) {
		return 0
	}

	return r.residual[u*r.net.n+v]
}

// Flow returns the net flow on u→v: capacity[u][v] - residual[u][v].
// It is skew-symmetric, Flow(u, v) == -Flow(v, u), and negative when the
// net movement between the two vertices runs v→u.
// Complexity: O(1).
func (r *Residual) Flow(u, v int) int64 {
	if !r.net.has(u) || !r.net.has(v) {
		return 0
	}
	i := u*r.net.n + v

	return r.net.capacity[i] - r.residual[i]
}

// NetOutflow returns Σ_v Flow(u, v): the flow value at the source, minus
// it at the sink, and zero at every other vertex once a computation ends.
// Complexity: O(n).
func (r *Residual) NetOutflow(u int) int64 {
	var sum int64
	for v := 0; v < r.net.n; v++ {
		sum += r.Flow(u, v)
	}

	return sum
}

// augment pushes delta along u→v.
func (r *Residual) augment(u, v int, delta int64) {
	n := r.net.n
	r.residual[u*n+v] -= delta
	r.residual[v*n+u] += delta
}

// row returns the residual capacities leaving u, indexed by target.
func (r *Residual) row(u int) []int64 {
	n := r.net.n

	return r.residual[u*n : (u+1)*n]
}
