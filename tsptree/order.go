package tsptree

import "sort"

// CanonicalizeOrder walks a dedup'd edge set that is expected to form a
// single Hamiltonian cycle and returns its vertices in walk order,
// starting from the smallest vertex id for determinism. It reports false
// if edges do not form exactly one simple cycle (a vertex whose degree is
// not 2, or more than one component). It only sees the vertices the edges
// touch, so it cannot tell whether a graph vertex is absent from the cycle.
//
// This performs the same "follow the open end" walk as the reference
// implementation's tour sorter, but operates on a copy and never mutates
// edges or reports validity as a side effect — display and validation are
// separate concerns here.
func CanonicalizeOrder(edges [][2]int) ([]int, bool) {
	if len(edges) == 0 {
		return nil, false
	}

	adj := make(map[int][]int)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for _, nbrs := range adj {
		if len(nbrs) != 2 {
			return nil, false
		}
	}

	ids := make([]int, 0, len(adj))
	for v := range adj {
		ids = append(ids, v)
	}
	sort.Ints(ids)
	start := ids[0]

	order := make([]int, 0, len(adj))
	order = append(order, start)
	visited := map[int]bool{start: true}
	prev, cur := -1, start
	for len(order) < len(adj) {
		next := adj[cur][0]
		if next == prev {
			next = adj[cur][1]
		}
		if visited[next] {
			return nil, false // closed a cycle before reaching every vertex
		}
		visited[next] = true
		order = append(order, next)
		prev, cur = cur, next
	}

	closesBack := adj[cur][0] == start || adj[cur][1] == start
	if !closesBack {
		return nil, false
	}

	return order, true
}
