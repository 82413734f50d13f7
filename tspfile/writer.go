package tspfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Mattias1/graph-tools/core"
	"github.com/Mattias1/graph-tools/decomp"
)

// WriteOptions configures a Write call.
type WriteOptions struct {
	// VIDStart is added back to every vertex id on write; bag ids are
	// written as-is, starting at 0. Default: 0.
	VIDStart int

	// Name, if non-empty, is emitted as a NAME header.
	Name string

	// Euclidean, if true, always emits EDGE_WEIGHT_TYPE : EUC_2D and omits
	// costs for edges whose endpoints both carry a position (the reader
	// will recompute them).
	Euclidean bool
}

// Write emits g (and, if d is non-nil, d) in the sectioned text format Read
// consumes.
func Write(w io.Writer, g *core.Graph, d *decomp.Decomposition, opts WriteOptions) error {
	if g == nil {
		return ErrNoGraph
	}

	bw := bufio.NewWriter(w)

	if opts.Name != "" {
		fmt.Fprintf(bw, "NAME : %s\n", opts.Name)
	}
	fmt.Fprintf(bw, "DIMENSION : %d\n", g.NumVertices())
	if opts.Euclidean {
		fmt.Fprintln(bw, "EDGE_WEIGHT_TYPE : EUC_2D")
	}

	fmt.Fprintln(bw, "NODE_COORD_SECTION")
	for _, v := range g.Vertices() {
		x, y := 0, 0
		if v.Pos != nil {
			x, y = v.Pos.X, v.Pos.Y
		}
		fmt.Fprintf(bw, "%d %d %d\n", v.ID+opts.VIDStart, x, y)
	}

	fmt.Fprintln(bw, "EDGE_SECTION")
	writeEdges(bw, g, opts)

	if d != nil {
		fmt.Fprintln(bw, "BAG_COORD_SECTION")
		for _, b := range d.Bags {
			fmt.Fprintf(bw, "%d 0 0", b.ID)
			for _, vid := range b.Contents {
				fmt.Fprintf(bw, " %d", vid+opts.VIDStart)
			}
			fmt.Fprintln(bw)
		}

		fmt.Fprintln(bw, "BAG_EDGE_SECTION")
		seen := make(map[[2]int]bool)
		for _, b := range d.Bags {
			for _, nb := range b.Neighbours {
				key := canonBagPair(b.ID, nb)
				if seen[key] {
					continue
				}
				seen[key] = true
				fmt.Fprintf(bw, "%d %d\n", key[0], key[1])
			}
		}
	}

	return bw.Flush()
}

func writeEdges(bw *bufio.Writer, g *core.Graph, opts WriteOptions) {
	seen := make(map[[2]int]bool)
	for _, v := range g.Vertices() {
		neighbors, err := g.Neighbors(v.ID)
		if err != nil {
			continue
		}
		for _, e := range neighbors {
			key := [2]int{e.Min(), e.Max()}
			if seen[key] {
				continue
			}
			seen[key] = true

			a, b := key[0], key[1]
			va, _ := g.Vertex(a)
			vb, _ := g.Vertex(b)
			if opts.Euclidean && va.Pos != nil && vb.Pos != nil {
				fmt.Fprintf(bw, "%d %d\n", a+opts.VIDStart, b+opts.VIDStart)

				continue
			}
			fmt.Fprintf(bw, "%d %d %d\n", a+opts.VIDStart, b+opts.VIDStart, e.Cost)
		}
	}
}

func canonBagPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}

	return [2]int{b, a}
}
