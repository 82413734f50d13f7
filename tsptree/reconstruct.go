package tsptree

import "github.com/Mattias1/graph-tools/tstate"

// reconstruct re-runs the distributor over (bag, state) in lookup mode,
// reusing the memo table built by the value pass to recognize exactly the
// split(s) that produced the memoized cost, and returns one concrete edge
// list realizing it.
//
// Ties between distinct equal-cost splits are broken by taking the first
// one the distributor's enumeration order reaches (the same order the
// value pass used), which keeps reconstruct deterministic even when more
// than one split attains the minimum.
func (s *solver) reconstruct(bc *bagCtx, state tstate.StateKey) [][2]int {
	memo, ok := s.tables[bc.bag.ID][state]
	if !ok || memo >= infCost {
		return nil
	}

	degrees := tstate.DecodeDegrees(state)
	endpoints := pairsFromFlat(tstate.DecodeEndpoints(state))

	return distribute(bc.bag.Contents, degrees, endpoints, bc.children,
		func(childIdx, vid int) bool { return s.canTakeVID(bc, childIdx, vid) },
		func(targetDegrees []int, childDegrees [][]int, endpoints [][2]int, childEndpoints [][][2]int) [][2]int {
			return s.lookupBack(bc, memo, targetDegrees, childDegrees, endpoints, childEndpoints)
		},
		preferFirstNonEmpty, nil)
}

// lookupBack is the distributor's base_fn for the reconstruction pass: it
// recomputes the cost of one complete split and, only if that cost
// matches the value pass's memoized result for the enclosing state,
// returns the concrete edges (local plus every child's own reconstructed
// edges) that realize it. Any other split returns nil so the caller's
// merge step (preferFirstNonEmpty) skips over it.
func (s *solver) lookupBack(bc *bagCtx, memo int64, targetDegrees []int, childDegrees [][]int, endpoints [][2]int, childEndpoints [][][2]int) [][2]int {
	if bc.bag.Parent != -1 && len(endpoints) == 0 {
		return nil
	}

	local, localEdges := edgeSelect(bc.internal, bc.posOf, targetDegrees, endpoints, flattenPairs(childEndpoints), true)
	if local >= infCost {
		return nil
	}

	total := local
	childStates := make([]tstate.StateKey, len(bc.children))
	for c, childID := range bc.children {
		childBag := &s.decomposition.Bags[childID]
		childState, stateOK := s.projectChildState(bc, childBag, childDegrees[c], childEndpoints[c])
		if !stateOK {
			return nil
		}
		childStates[c] = childState

		childCost := s.tableQuery(s.bagCtxFor(childBag), childState)
		if childCost >= infCost {
			return nil
		}
		total += childCost
	}

	if total != memo {
		return nil
	}

	// Always build a non-nil slice, even if it ends up empty (e.g. a leaf
	// bag with zero local edges) — nil is reserved for "this split did not
	// match the memoized cost" so preferFirstNonEmpty can tell the two
	// apart.
	result := make([][2]int, 0, len(localEdges))
	result = append(result, localEdges...)
	for c, childID := range bc.children {
		childBag := &s.decomposition.Bags[childID]
		result = append(result, s.reconstruct(s.bagCtxFor(childBag), childStates[c])...)
	}

	return result
}

func preferFirstNonEmpty(a, b [][2]int) [][2]int {
	if a != nil {
		return a
	}

	return b
}
