// Package tspfile reads and writes the TSPLIB-style sectioned text format
// used to exchange a graph plus an optional tree decomposition: a
// line-oriented, case-sensitive grammar with NAME/DIMENSION/
// EDGE_WEIGHT_TYPE headers followed by NODE_COORD_SECTION, EDGE_SECTION,
// BAG_COORD_SECTION, and BAG_EDGE_SECTION payload blocks.
//
// Parsing recovers per-line: a malformed payload line is skipped and
// recorded as a Warning rather than aborting the read, matching the rest
// of this module's error taxonomy (structural problems are fatal,
// per-line formatting problems are not).
package tspfile

import (
	"errors"

	"github.com/Mattias1/graph-tools/core"
	"github.com/Mattias1/graph-tools/decomp"
)

// Sentinel errors.
var (
	// ErrVertexIDNotDense indicates NODE_COORD_SECTION declared a vertex
	// id that does not continue the dense 0-based sequence (after
	// subtracting Options.VIDStart) the rest of this module requires.
	ErrVertexIDNotDense = errors.New("tspfile: vertex ids are not dense starting at VIDStart")

	// ErrBagIDNotDense is the BAG_COORD_SECTION analogue of
	// ErrVertexIDNotDense.
	ErrBagIDNotDense = errors.New("tspfile: bag ids are not dense starting at 0")

	// ErrNoGraph indicates a write was requested with a nil graph.
	ErrNoGraph = errors.New("tspfile: nil graph")
)

// Options configures a Read call.
type Options struct {
	// VIDStart is the origin payload vertex ids are written from (0 or 1
	// are the common cases). Subtracted from every vertex id on read, and
	// added back on write. Default: 0.
	VIDStart int
}

// DefaultOptions returns Options{VIDStart: 0}.
func DefaultOptions() Options {
	return Options{VIDStart: 0}
}

// Warning describes one recovered parse problem: the 1-based source line
// number and a short human-readable reason.
type Warning struct {
	Line   int
	Reason string
}

// ParsedFile is the result of a successful Read: a graph, and — if the
// file carried bag sections — a decomposition over that graph.
type ParsedFile struct {
	Name      string
	Euclidean bool
	Graph     *core.Graph
	Decomp    *decomp.Decomposition
	HasDecomp bool
	Warnings  []Warning
}
