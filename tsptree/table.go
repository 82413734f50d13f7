package tsptree

import (
	"github.com/Mattias1/graph-tools/core"
	"github.com/Mattias1/graph-tools/decomp"
	"github.com/Mattias1/graph-tools/tstate"
)

// bagCtx bundles the per-bag, per-solve-run data that table queries need
// repeatedly: the bag itself, its position index, cached sorted internal
// edges, and the child bag ids in distributor order.
type bagCtx struct {
	bag      *decomp.Bag
	posOf    map[int]int // original vertex id -> position in bag.Contents
	internal []core.Edge // internal edges, cost ascending, ties by (min,max)
	children []int       // child bag ids, in Bag.Children order
}

func newBagCtx(g *core.Graph, b *decomp.Bag) *bagCtx {
	pos := make(map[int]int, len(b.Contents))
	for i, v := range b.Contents {
		pos[v] = i
	}

	return &bagCtx{
		bag:      b,
		posOf:    pos,
		internal: g.EdgesAmong(b.Contents),
		children: b.Children,
	}
}

// canTakeVID reports whether the child at position childIdx's contents
// include vertex id vid.
func (s *solver) canTakeVID(bc *bagCtx, childIdx, vid int) bool {
	childBag := &s.decomposition.Bags[bc.children[childIdx]]

	return childBag.IndexOf(vid) >= 0
}

// tableQuery returns the minimum cost of completing the subtree rooted at
// bag b consistent with state, memoizing per (bag, state).
func (s *solver) tableQuery(bc *bagCtx, state tstate.StateKey) int64 {
	if s.cancelled {
		return infCost
	}

	table := s.tables[bc.bag.ID]
	if cost, ok := table[state]; ok {
		return cost
	}

	degrees := tstate.DecodeDegrees(state)
	endpoints := pairsFromFlat(tstate.DecodeEndpoints(state))

	cost := distribute(bc.bag.Contents, degrees, endpoints, bc.children,
		func(childIdx, vid int) bool { return s.canTakeVID(bc, childIdx, vid) },
		func(targetDegrees []int, childDegrees [][]int, endpoints [][2]int, childEndpoints [][][2]int) int64 {
			return s.evaluate(bc, targetDegrees, childDegrees, endpoints, childEndpoints)
		},
		minCost, infCost)

	table[state] = cost
	s.checkDeadline()

	return cost
}

// evaluate is the distributor's base_fn for the value pass: it scores one
// complete split of target degrees between local edges and children.
func (s *solver) evaluate(bc *bagCtx, targetDegrees []int, childDegrees [][]int, endpoints [][2]int, childEndpoints [][][2]int) int64 {
	if bc.bag.Parent != -1 && len(endpoints) == 0 {
		return infCost
	}

	local, _ := edgeSelect(bc.internal, bc.posOf, targetDegrees, endpoints, flattenPairs(childEndpoints), false)
	if local >= infCost {
		return infCost
	}

	total := local
	for c, childID := range bc.children {
		childBag := &s.decomposition.Bags[childID]
		childState, ok := s.projectChildState(bc, childBag, childDegrees[c], childEndpoints[c])
		if !ok {
			return infCost
		}

		childCost := s.tableQuery(s.bagCtxFor(childBag), childState)
		if childCost >= infCost {
			return infCost
		}
		total += childCost
	}

	return total
}

// projectChildState builds the induced state for a child bag: positions
// present in the parent inherit the committed degree, every other
// position defaults to 2 (untouched interior vertex, fully handled by a
// deeper bag).
func (s *solver) projectChildState(bc *bagCtx, child *decomp.Bag, degreesAtParentPositions []int, endpointsAtParentVIDs [][2]int) (tstate.StateKey, bool) {
	kidDegrees := make([]int, len(child.Contents))
	for p := range kidDegrees {
		kidDegrees[p] = 2
	}
	for q, vid := range bc.bag.Contents {
		if p := child.IndexOf(vid); p >= 0 {
			kidDegrees[p] = degreesAtParentPositions[q]
		}
	}

	flat := make([]int, 0, 2*len(endpointsAtParentVIDs))
	for _, p := range endpointsAtParentVIDs {
		flat = append(flat, p[0], p[1])
	}

	key, err := tstate.Encode(kidDegrees, flat)
	if err != nil {
		return tstate.StateKey{}, false
	}

	return key, true
}

func minCost(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func pairsFromFlat(flat []int) [][2]int {
	pairs := make([][2]int, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		pairs = append(pairs, [2]int{flat[i], flat[i+1]})
	}

	return pairs
}
