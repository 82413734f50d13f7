package tsptree_test

import (
	"testing"

	"github.com/Mattias1/graph-tools/core"
	"github.com/Mattias1/graph-tools/decomp"
	"github.com/Mattias1/graph-tools/tsptree"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// edgeSort orders [2]int edge pairs for order-independent diffing with
// cmp.Diff, since tsptree.Solve makes no promise about result order.
var edgeSort = cmpopts.SortSlices(func(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}

	return a[1] < b[1]
})

func triangleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddVertex(nil, "")
	g.AddVertex(nil, "")
	g.AddVertex(nil, "")
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 2, 4))
	require.NoError(t, g.AddEdge(0, 2, 5))

	return g
}

func TestSolveTriangleSingleBag(t *testing.T) {
	g := triangleGraph(t)
	d := decomp.NewDecomposition(g)
	_, err := d.AddBag([]int{0, 1, 2})
	require.NoError(t, err)

	res, err := tsptree.Solve(g, d, tsptree.DefaultOptions())
	require.NoError(t, err)
	require.EqualValues(t, 12, res.Cost)
	want := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	if diff := cmp.Diff(want, res.Edges, edgeSort); diff != "" {
		t.Errorf("tour edges mismatch (-want +got):\n%s", diff)
	}
}

func squareGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex(nil, "")
	}
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(1, 3, 5))

	return g
}

func TestSolveSquareTwoBags(t *testing.T) {
	g := squareGraph(t)
	d := decomp.NewDecomposition(g)
	b0, err := d.AddBag([]int{0, 1, 2})
	require.NoError(t, err)
	b1, err := d.AddBag([]int{0, 2, 3})
	require.NoError(t, err)
	require.NoError(t, d.AddBagEdge(b0, b1))

	res, err := tsptree.Solve(g, d, tsptree.DefaultOptions())
	require.NoError(t, err)
	require.EqualValues(t, 4, res.Cost)
	want := [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}
	if diff := cmp.Diff(want, res.Edges, edgeSort); diff != "" {
		t.Errorf("tour edges mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveDisconnectedHasNoTour(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex(nil, "")
	}
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	d := decomp.NewDecomposition(g)
	_, err := d.AddBag([]int{0, 1, 2, 3})
	require.NoError(t, err)

	_, err = tsptree.Solve(g, d, tsptree.DefaultOptions())
	require.ErrorIs(t, err, tsptree.ErrNoTour)
}

func TestSolveRejectsOversizedBag(t *testing.T) {
	g := triangleGraph(t)
	d := decomp.NewDecomposition(g)
	_, err := d.AddBag([]int{0, 1, 2})
	require.NoError(t, err)

	_, err = tsptree.Solve(g, d, tsptree.Options{WidthThreshold: 2})
	require.ErrorIs(t, err, tsptree.ErrWidthExceeded)
}

func TestSolveReconstructionCostMatchesEdgeSum(t *testing.T) {
	g := squareGraph(t)
	d := decomp.NewDecomposition(g)
	b0, _ := d.AddBag([]int{0, 1, 2})
	b1, _ := d.AddBag([]int{0, 2, 3})
	require.NoError(t, d.AddBagEdge(b0, b1))

	res, err := tsptree.Solve(g, d, tsptree.DefaultOptions())
	require.NoError(t, err)

	var sum int64
	for _, e := range res.Edges {
		cost, ok := g.Cost(e[0], e[1])
		require.True(t, ok)
		sum += cost
	}
	require.Equal(t, res.Cost, sum)
	require.Len(t, res.Edges, 4)
}

func TestSolveAgreesWithHeldKarp(t *testing.T) {
	g := squareGraph(t)
	d := decomp.NewDecomposition(g)
	b0, _ := d.AddBag([]int{0, 1, 2})
	b1, _ := d.AddBag([]int{0, 2, 3})
	require.NoError(t, d.AddBagEdge(b0, b1))

	res, err := tsptree.Solve(g, d, tsptree.DefaultOptions())
	require.NoError(t, err)

	want, err := tsptree.HeldKarp(g)
	require.NoError(t, err)
	require.Equal(t, want, res.Cost)
}
