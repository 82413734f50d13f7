package tsptree

import "github.com/Mattias1/graph-tools/core"

// edgeContext bundles the inputs that stay fixed across one edgeSelect
// recursion so the recursive helper only needs to thread the parts that
// actually change (index, residual degrees, chosen-so-far).
type edgeContext struct {
	edges     []core.Edge
	posOf     map[int]int // vertex id -> position in the bag's degree vector
	want      [][2]int    // endpoints this bag's subtree must terminate at
	childFlat [][2]int    // already-committed child endpoint pairs
	capture   bool        // whether to build and return the chosen edge list
}

// edgeSelect enumerates subsets of edges (all internal to one bag, sorted
// ascending by cost) that exactly satisfy residual and, combined with
// childFlat, form a legal fragment shape (see verifyFragments). It returns
// the minimum total cost, or infCost if no subset works.
//
// When capture is true, the lexicographically smallest minimizing edge
// list (by the fixed cost-then-id order of edges) is also returned: edges
// is processed in that order and "take" is preferred over "skip" on a tie,
// so the first minimum found by the recursion is already the
// lexicographically smallest one.
func edgeSelect(edges []core.Edge, posOf map[int]int, residual []int, want, childFlat [][2]int, capture bool) (int64, [][2]int) {
	ctx := &edgeContext{edges: edges, posOf: posOf, want: want, childFlat: childFlat, capture: capture}
	residualCopy := append([]int(nil), residual...)

	return ctx.recurse(0, residualCopy, nil)
}

func (ctx *edgeContext) recurse(idx int, residual []int, chosen [][2]int) (int64, [][2]int) {
	if allZero(residual) {
		combined := make([][2]int, 0, len(chosen)+len(ctx.childFlat))
		combined = append(combined, chosen...)
		combined = append(combined, ctx.childFlat...)
		if verifyFragments(combined, ctx.want) {
			if ctx.capture {
				return 0, append([][2]int(nil), chosen...)
			}

			return 0, nil
		}

		return infCost, nil
	}

	if idx >= len(ctx.edges) {
		return infCost, nil
	}

	e := ctx.edges[idx]
	ai, aok := ctx.posOf[e.A]
	bi, bok := ctx.posOf[e.B]

	var takeCost int64 = infCost
	var takeEdges [][2]int
	if aok && bok && residual[ai] > 0 && residual[bi] > 0 {
		residual[ai]--
		residual[bi]--
		extended := append(append([][2]int(nil), chosen...), canonPair(e.A, e.B))
		rest, restEdges := ctx.recurse(idx+1, residual, extended)
		residual[ai]++
		residual[bi]++
		if rest < infCost {
			takeCost = e.Cost + rest
			takeEdges = restEdges
		}
	}

	skipCost, skipEdges := ctx.recurse(idx+1, residual, chosen)

	if takeCost <= skipCost {
		return takeCost, takeEdges
	}

	return skipCost, skipEdges
}

func allZero(residual []int) bool {
	for _, d := range residual {
		if d != 0 {
			return false
		}
	}

	return true
}
