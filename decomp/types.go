// Package decomp models a tree decomposition: a tree of "bags", each
// carrying an ordered subset of an underlying core.Graph's vertex ids.
//
// A Bag's Contents order is significant — it defines the per-bag index
// that tsptree's degree vectors are indexed by. A Decomposition is built by
// adding bags and bag-tree edges, then rooted once with RootAt; after that it
// is immutable for the remainder of the DP.
//
// Errors:
//
//	ErrVertexOutOfRange      - a bag references a vertex id not in the graph.
//	ErrBagOutOfRange         - a bag id is out of range.
//	ErrRootOutOfRange        - RootAt was given a bag id outside [0, NumBags()).
//	ErrDecompositionNotATree - rooting found a cycle or a disconnected forest.
//	ErrEmptyDecomposition    - RootAt was called with no bags.
package decomp

import (
	"errors"

	"github.com/Mattias1/graph-tools/core"
)

// Sentinel errors for decomposition construction and rooting.
var (
	// ErrVertexOutOfRange indicates a bag references a vertex id the
	// underlying graph does not have.
	ErrVertexOutOfRange = errors.New("decomp: bag references an out-of-range vertex id")

	// ErrBagOutOfRange indicates a bag id outside [0, NumBags()).
	ErrBagOutOfRange = errors.New("decomp: bag id out of range")

	// ErrDecompositionNotATree indicates the bag graph is cyclic or
	// disconnected — rooting requires a tree.
	ErrDecompositionNotATree = errors.New("decomp: bag graph is not a tree")

	// ErrEmptyDecomposition indicates RootAt was called on a decomposition
	// with no bags.
	ErrEmptyDecomposition = errors.New("decomp: decomposition has no bags")

	// ErrRootOutOfRange indicates an explicit root bag id is invalid.
	ErrRootOutOfRange = errors.New("decomp: root bag id out of range")
)

// noParent marks a bag with no parent (the root, or a not-yet-rooted bag).
const noParent = -1

// Bag is a node of the tree decomposition.
type Bag struct {
	// ID is the dense 0-based index of this bag within its Decomposition.
	ID int

	// Contents lists the original-graph vertex ids carried by this bag, in
	// the insertion order that defines the per-bag degree-vector index.
	Contents []int

	// Neighbours lists the bag ids adjacent to this bag in the
	// decomposition tree (undirected, populated before rooting).
	Neighbours []int

	// Parent is the bag id of this bag's parent once rooted, or noParent
	// before rooting or for the root bag itself.
	Parent int

	// Children lists this bag's child bag ids once rooted (Neighbours
	// minus Parent).
	Children []int
}

// IndexOf returns the bag-local index of vertex id v within b.Contents, or
// -1 if v is not in this bag.
func (b Bag) IndexOf(v int) int {
	for i, c := range b.Contents {
		if c == v {
			return i
		}
	}

	return -1
}

// Decomposition is a tree of bags over an underlying core.Graph.
type Decomposition struct {
	Original *core.Graph
	Bags     []Bag

	root     int // noParent until RootAt succeeds
	rooted   bool
	edgeSeen map[[2]int]bool
}

// NewDecomposition returns an empty Decomposition over original.
func NewDecomposition(original *core.Graph) *Decomposition {
	return &Decomposition{
		Original: original,
		root:     noParent,
		edgeSeen: make(map[[2]int]bool),
	}
}

// NumBags returns the number of bags.
func (d *Decomposition) NumBags() int {
	return len(d.Bags)
}

// RootID returns the root bag id, or noParent if RootAt has not been called.
func (d *Decomposition) RootID() int {
	return d.root
}

// bagEdgeKey canonicalizes an (a,b) bag-edge pair for deduplication.
func bagEdgeKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}

	return [2]int{b, a}
}
