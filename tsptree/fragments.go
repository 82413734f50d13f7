package tsptree

import "github.com/spakin/disjoint"

// canonPair returns (a,b) with the smaller id first.
func canonPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}

	return [2]int{b, a}
}

// verifyFragments checks that combining locally-chosen edges with the
// already-committed child endpoint pairs produces a legal shape for this
// bag: a vertex-disjoint set of simple paths whose endpoints match want
// exactly, or — when want is empty — a single simple cycle covering every
// vertex the combined edges touch.
//
// Any vertex touched by combined edges has degree at most 2 by
// construction (the distributor never over-commits a vertex's degree), so
// every connected component is either a simple path or a simple cycle;
// classifying by edge count vs. vertex count per component is sufficient.
func verifyFragments(combined [][2]int, want [][2]int) bool {
	if len(combined) == 0 {
		return len(want) == 0
	}

	touched := make(map[int]bool)
	degree := make(map[int]int)
	for _, e := range combined {
		touched[e[0]] = true
		touched[e[1]] = true
		degree[e[0]]++
		degree[e[1]]++
		if degree[e[0]] > 2 || degree[e[1]] > 2 {
			return false
		}
	}

	elems := make(map[int]*disjoint.Element, len(touched))
	for v := range touched {
		elems[v] = disjoint.NewElement()
	}
	for _, e := range combined {
		disjoint.Union(elems[e[0]], elems[e[1]])
	}

	groups := make(map[*disjoint.Element][]int)
	for v := range touched {
		root := elems[v].Find()
		groups[root] = append(groups[root], v)
	}

	if len(want) == 0 {
		if len(groups) != 1 {
			return false
		}
		for v := range touched {
			if degree[v] != 2 {
				return false
			}
		}

		return len(combined) == len(touched)
	}

	remaining := make(map[[2]int]int, len(want))
	for _, p := range want {
		remaining[canonPair(p[0], p[1])]++
	}

	for _, group := range groups {
		edgesInGroup := 0
		for _, e := range combined {
			if elems[e[0]].Find() == elems[e[1]].Find() && elems[e[0]].Find() == elems[group[0]].Find() {
				edgesInGroup++
			}
		}
		if edgesInGroup != len(group)-1 {
			return false // a full cycle, or some other non-path shape
		}

		var ends []int
		for _, v := range group {
			if degree[v] == 1 {
				ends = append(ends, v)
			}
		}
		if len(ends) != 2 {
			return false
		}

		key := canonPair(ends[0], ends[1])
		if remaining[key] == 0 {
			return false
		}
		remaining[key]--
	}

	for _, left := range remaining {
		if left != 0 {
			return false
		}
	}

	return true
}
