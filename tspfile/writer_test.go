package tspfile_test

import (
	"bytes"
	"testing"

	"github.com/Mattias1/graph-tools/core"
	"github.com/Mattias1/graph-tools/decomp"
	"github.com/Mattias1/graph-tools/tspfile"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundtrip(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(&core.Point{X: 0, Y: 0}, "")
	g.AddVertex(&core.Point{X: 10, Y: 0}, "")
	g.AddVertex(&core.Point{X: 0, Y: 10}, "")
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(1, 2, 8))
	require.NoError(t, g.AddEdge(0, 2, 9))

	d := decomp.NewDecomposition(g)
	_, err := d.AddBag([]int{0, 1})
	require.NoError(t, err)
	_, err = d.AddBag([]int{1, 2})
	require.NoError(t, err)
	require.NoError(t, d.AddBagEdge(0, 1))

	var buf bytes.Buffer
	require.NoError(t, tspfile.Write(&buf, g, d, tspfile.WriteOptions{Name: "roundtrip"}))

	pf, err := tspfile.Read(&buf, tspfile.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "roundtrip", pf.Name)
	require.Equal(t, 3, pf.Graph.NumVertices())
	require.Equal(t, 3, pf.Graph.NumEdges())

	for _, want := range [][3]int64{{0, 1, 7}, {1, 2, 8}, {0, 2, 9}} {
		cost, ok := pf.Graph.Cost(int(want[0]), int(want[1]))
		require.True(t, ok)
		require.Equal(t, want[2], cost)
	}

	require.True(t, pf.HasDecomp)
	require.Equal(t, 2, pf.Decomp.NumBags())
	require.Equal(t, []int{0, 1}, pf.Decomp.Bags[0].Contents)
	require.Equal(t, []int{1, 2}, pf.Decomp.Bags[1].Contents)
	require.Contains(t, pf.Decomp.Bags[0].Neighbours, 1)
}

func TestWriteEuclideanOmitsRedundantCost(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(&core.Point{X: 0, Y: 0}, "")
	g.AddVertex(&core.Point{X: 30, Y: 40}, "")
	require.NoError(t, g.AddEdge(0, 1, 5))

	var buf bytes.Buffer
	require.NoError(t, tspfile.Write(&buf, g, nil, tspfile.WriteOptions{Euclidean: true}))

	pf, err := tspfile.Read(&buf, tspfile.DefaultOptions())
	require.NoError(t, err)
	require.True(t, pf.Euclidean)
	cost, ok := pf.Graph.Cost(0, 1)
	require.True(t, ok)
	require.EqualValues(t, 5, cost)
}

func TestWriteRejectsNilGraph(t *testing.T) {
	var buf bytes.Buffer
	err := tspfile.Write(&buf, nil, nil, tspfile.WriteOptions{})
	require.ErrorIs(t, err, tspfile.ErrNoGraph)
}

func TestWriteHonorsVIDStart(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(nil, "")
	g.AddVertex(nil, "")
	require.NoError(t, g.AddEdge(0, 1, 3))

	var buf bytes.Buffer
	require.NoError(t, tspfile.Write(&buf, g, nil, tspfile.WriteOptions{VIDStart: 1}))

	pf, err := tspfile.Read(&buf, tspfile.Options{VIDStart: 1})
	require.NoError(t, err)
	require.Equal(t, 2, pf.Graph.NumVertices())
	cost, ok := pf.Graph.Cost(0, 1)
	require.True(t, ok)
	require.EqualValues(t, 3, cost)
}
