package tsptree_test

import (
	"testing"

	"github.com/Mattias1/graph-tools/decomp"
	"github.com/Mattias1/graph-tools/tsptree"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeOrderWalksCycle(t *testing.T) {
	edges := [][2]int{{1, 2}, {0, 1}, {2, 3}, {0, 3}}
	order, ok := tsptree.CanonicalizeOrder(edges)
	require.True(t, ok)
	require.Equal(t, 0, order[0])
	require.Len(t, order, 4)

	seen := make(map[int]bool)
	for _, v := range order {
		seen[v] = true
	}
	require.Len(t, seen, 4)
}

func TestCanonicalizeOrderRejectsNonCycle(t *testing.T) {
	_, ok := tsptree.CanonicalizeOrder([][2]int{{0, 1}, {1, 2}})
	require.False(t, ok)
}

func TestSolveDebugPopulatesTables(t *testing.T) {
	g := triangleGraph(t)
	d := decomp.NewDecomposition(g)
	_, err := d.AddBag([]int{0, 1, 2})
	require.NoError(t, err)

	opts := tsptree.DefaultOptions()
	opts.Debug = true
	res, err := tsptree.Solve(g, d, opts)
	require.NoError(t, err)
	require.NotEmpty(t, res.Tables)
}
