package core_test

import (
	"testing"

	"github.com/Mattias1/graph-tools/core"
	"github.com/stretchr/testify/require"
)

func TestAddVertexAssignsDenseIDs(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(nil, "a")
	b := g.AddVertex(nil, "b")
	c := g.AddVertex(&core.Point{X: 1, Y: 2}, "c")

	require.Equal(t, 0, a)
	require.Equal(t, 1, b)
	require.Equal(t, 2, c)
	require.Equal(t, 3, g.NumVertices())

	v, err := g.Vertex(c)
	require.NoError(t, err)
	require.Equal(t, "c", v.Name)
	require.Equal(t, &core.Point{X: 1, Y: 2}, v.Pos)
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(nil, "")
	require.ErrorIs(t, g.AddEdge(a, a, 1), core.ErrSelfLoop)
}

func TestAddEdgeRejectsNegativeCost(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(nil, "")
	b := g.AddVertex(nil, "")
	require.ErrorIs(t, g.AddEdge(a, b, -1), core.ErrNegativeCost)
}

func TestAddEdgeRejectsParallelEdge(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(nil, "")
	b := g.AddVertex(nil, "")
	require.NoError(t, g.AddEdge(a, b, 3))
	require.ErrorIs(t, g.AddEdge(a, b, 5), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, g.AddEdge(b, a, 5), core.ErrMultiEdgeNotAllowed)
}

func TestAddEdgeRejectsOutOfRangeVertex(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(nil, "")
	require.ErrorIs(t, g.AddEdge(a, 99, 1), core.ErrVertexOutOfRange)
}

func TestCostAndNeighbors(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(nil, "")
	b := g.AddVertex(nil, "")
	c := g.AddVertex(nil, "")
	require.NoError(t, g.AddEdge(a, b, 3))
	require.NoError(t, g.AddEdge(b, c, 4))

	cost, ok := g.Cost(a, b)
	require.True(t, ok)
	require.Equal(t, int64(3), cost)

	_, ok = g.Cost(a, c)
	require.False(t, ok)

	nbs, err := g.Neighbors(b)
	require.NoError(t, err)
	require.Len(t, nbs, 2)

	deg, err := g.Degree(b)
	require.NoError(t, err)
	require.Equal(t, 2, deg)
}

func TestEdgesAmongSortsByCostThenEndpoints(t *testing.T) {
	g := core.NewGraph()
	v0 := g.AddVertex(nil, "")
	v1 := g.AddVertex(nil, "")
	v2 := g.AddVertex(nil, "")
	require.NoError(t, g.AddEdge(v0, v1, 5))
	require.NoError(t, g.AddEdge(v1, v2, 3))
	require.NoError(t, g.AddEdge(v0, v2, 3))

	edges := g.EdgesAmong([]int{v0, v1, v2})
	require.Len(t, edges, 3)
	require.Equal(t, int64(3), edges[0].Cost)
	require.Equal(t, int64(3), edges[1].Cost)
	require.Equal(t, int64(5), edges[2].Cost)
	// Tie broken by (min,max): (0,2) before (1,2).
	require.Equal(t, 0, edges[0].Min())
	require.Equal(t, 2, edges[0].Max())
}

func TestEdgesAmongExcludesOutsideVertices(t *testing.T) {
	g := core.NewGraph()
	v0 := g.AddVertex(nil, "")
	v1 := g.AddVertex(nil, "")
	v2 := g.AddVertex(nil, "")
	require.NoError(t, g.AddEdge(v0, v1, 1))
	require.NoError(t, g.AddEdge(v1, v2, 2))

	edges := g.EdgesAmong([]int{v0, v1})
	require.Len(t, edges, 1)
	require.Equal(t, int64(1), edges[0].Cost)
}
