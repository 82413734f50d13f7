package decomp_test

import (
	"testing"

	"github.com/Mattias1/graph-tools/core"
	"github.com/Mattias1/graph-tools/decomp"
	"github.com/stretchr/testify/require"
)

func buildTriangleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	v0 := g.AddVertex(nil, "")
	v1 := g.AddVertex(nil, "")
	v2 := g.AddVertex(nil, "")
	require.NoError(t, g.AddEdge(v0, v1, 3))
	require.NoError(t, g.AddEdge(v1, v2, 4))
	require.NoError(t, g.AddEdge(v0, v2, 5))

	return g
}

func TestRootAtDefaultsToFirstBag(t *testing.T) {
	g := buildTriangleGraph(t)
	d := decomp.NewDecomposition(g)
	_, err := d.AddBag([]int{0, 1, 2})
	require.NoError(t, err)

	require.NoError(t, d.RootAt(-1))
	require.Equal(t, 0, d.RootID())
}

func TestRootAtSetsParentAndChildren(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex(nil, "")
	}
	d := decomp.NewDecomposition(g)
	b0, _ := d.AddBag([]int{0, 1, 2})
	b1, _ := d.AddBag([]int{0, 2, 3})
	require.NoError(t, d.AddBagEdge(b0, b1))

	require.NoError(t, d.RootAt(b0))
	require.Equal(t, -1, d.Bags[b0].Parent)
	require.Equal(t, []int{b1}, d.Bags[b0].Children)
	require.Equal(t, b0, d.Bags[b1].Parent)
	require.Empty(t, d.Bags[b1].Children)
}

func TestRootAtRejectsCycle(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex(nil, "")
	}
	d := decomp.NewDecomposition(g)
	b0, _ := d.AddBag([]int{0})
	b1, _ := d.AddBag([]int{1})
	b2, _ := d.AddBag([]int{2})
	require.NoError(t, d.AddBagEdge(b0, b1))
	require.NoError(t, d.AddBagEdge(b1, b2))
	require.NoError(t, d.AddBagEdge(b2, b0))

	require.ErrorIs(t, d.RootAt(-1), decomp.ErrDecompositionNotATree)
}

func TestRootAtRejectsDisconnected(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex(nil, "")
	}
	d := decomp.NewDecomposition(g)
	d.AddBag([]int{0})
	d.AddBag([]int{1})
	b2, _ := d.AddBag([]int{2})
	b3, _ := d.AddBag([]int{3})
	require.NoError(t, d.AddBagEdge(b2, b3))

	require.ErrorIs(t, d.RootAt(-1), decomp.ErrDecompositionNotATree)
}

func TestAddBagRejectsOutOfRangeVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(nil, "")
	d := decomp.NewDecomposition(g)
	_, err := d.AddBag([]int{0, 5})
	require.ErrorIs(t, err, decomp.ErrVertexOutOfRange)
}

func TestAddBagEdgeIgnoresDuplicates(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(nil, "")
	g.AddVertex(nil, "")
	d := decomp.NewDecomposition(g)
	b0, _ := d.AddBag([]int{0})
	b1, _ := d.AddBag([]int{1})
	require.NoError(t, d.AddBagEdge(b0, b1))
	require.NoError(t, d.AddBagEdge(b1, b0))
	require.NoError(t, d.RootAt(-1))
	require.Equal(t, []int{b1}, d.Bags[b0].Children)
}
