package tsptree

import (
	"math"

	"github.com/Mattias1/graph-tools/core"
)

// MaxHeldKarpN bounds the problem size this cross-check solver accepts; it
// exists purely to validate tsptree's tree-decomposition DP in tests
// against an independent algorithm on small graphs, so there is no reason
// to make it configurable.
const MaxHeldKarpN = 16

// HeldKarp computes an exact minimum Hamiltonian cycle cost for g using
// the classic bitmask DP, independent of any tree decomposition. It exists
// to cross-check Solve's output on small test graphs, not for production
// use on graphs anywhere near MaxHeldKarpN.
//
// Errors: ErrVertexOutOfRange if g has more than MaxHeldKarpN vertices or
// fewer than 3; ErrNoTour if g has no Hamiltonian cycle.
//
// Complexity: O(n^2 * 2^n) time, O(n * 2^n) memory.
func HeldKarp(g *core.Graph) (int64, error) {
	n := g.NumVertices()
	if n < 3 || n > MaxHeldKarpN {
		return 0, ErrVertexOutOfRange
	}

	w := make([]int64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if c, ok := g.Cost(i, j); ok {
				w[i*n+j] = c
			} else {
				w[i*n+j] = math.MaxInt64 / 4
			}
		}
	}

	totalMasks := 1 << uint(n)
	dp := make([]int64, totalMasks*n)
	for i := range dp {
		dp[i] = math.MaxInt64 / 4
	}
	dp[1*n+0] = 0 // start fixed at vertex 0

	for mask := 1; mask < totalMasks; mask++ {
		if mask&1 == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue
			}
			base := dp[mask*n+j]
			if base >= math.MaxInt64/4 {
				continue
			}
			for k := 0; k < n; k++ {
				if mask&(1<<uint(k)) != 0 {
					continue
				}
				next := mask | (1 << uint(k))
				cand := base + w[j*n+k]
				if cand < dp[next*n+k] {
					dp[next*n+k] = cand
				}
			}
		}
	}

	all := totalMasks - 1
	best := int64(math.MaxInt64 / 4)
	for j := 1; j < n; j++ {
		cand := dp[all*n+j] + w[j*n+0]
		if cand < best {
			best = cand
		}
	}
	if best >= math.MaxInt64/4 {
		return 0, ErrNoTour
	}

	return best, nil
}
