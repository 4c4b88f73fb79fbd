package flow

// MinCut returns the source side of a minimum cut: reachable[v] is true iff
// v can be reached from source over edges with positive residual capacity.
// Called on the residual of a completed max-flow computation, the set
// {v : reachable[v]} is a minimum s–t cut by the max-flow/min-cut theorem.
//
// The scan is a BFS with targets visited in ascending id order.
// source is always reachable; an out-of-range source yields all false.
//
// Complexity: O(V²). Memory: O(V).
func MinCut(r *Residual, source int) []bool {
	n := r.net.n
	reachable := make([]bool, n)
	if !r.net.has(source) {
		return reachable
	}
	reachable[source] = true

	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for v, c := range r.row(u) {
			if !reachable[v] && c > 0 {
				reachable[v] = true
				queue = append(queue, v)
			}
		}
	}

	return reachable
}

// CutCapacity sums the original capacity of every edge u→v with
// sourceSide[u] && !sourceSide[v]. For the set returned by MinCut after a
// max-flow run, this equals the max-flow value.
// Complexity: O(V²).
func CutCapacity(net *Network, sourceSide []bool) int64 {
	var total int64
	for u := 0; u < net.n && u < len(sourceSide); u++ {
		if !sourceSide[u] {
			continue
		}
		for v := 0; v < net.n; v++ {
			if v < len(sourceSide) && sourceSide[v] {
				continue
			}
			total += net.capacity[u*net.n+v]
		}
	}

	return total
}
