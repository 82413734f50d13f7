// Package tstate implements the per-bag state codec used by tsptree: a
// bijection between a (degree vector, endpoint pairing) pair and an opaque,
// comparable StateKey suitable for use as a memo-table index.
//
// A state is:
//
//	degrees   []int          - one entry per bag-content vertex, each in {0,1,2}
//	endpoints []int          - an even-length list of ORIGINAL graph vertex ids,
//	                            interpreted as consecutive (u,v) pairs
//
// Encoding is canonical: two states compare equal under Encode iff their
// degree vectors match element-wise and their endpoint pairs match as
// multisets (order within a pair and order between pairs are irrelevant).
// This lets two bags with overlapping but non-identical contents compare
// keys meaningfully, since endpoints are carried as original vertex ids
// rather than bag-local indices.
//
// Capacity: up to maxDegreeSlots bag-content vertices and up to maxPairs
// endpoint pairs, each endpoint id fitting in idBits bits. These bounds
// comfortably cover the width threshold (default 12) that tsptree enforces
// before it will run at all.
package tstate

import "errors"

const (
	// maxDegreeSlots bounds |bag.contents|; packed two bits per slot into a
	// single uint64, this could go to 32, but bags far narrower than that
	// are already rejected by tsptree's width guard.
	maxDegreeSlots = 32

	// maxPairs bounds the number of simultaneously open endpoint pairs a
	// single state can carry.
	maxPairs = 8

	// idBits bounds an individual endpoint vertex id: two ids pack into one
	// uint64 alongside each other, 20 bits apiece.
	idBits    = 20
	idMask    = (1 << idBits) - 1
	maxVertID = idMask
)

// Sentinel errors for state encoding.
var (
	// ErrTooManyDegreeSlots indicates len(degrees) exceeds maxDegreeSlots.
	ErrTooManyDegreeSlots = errors.New("tstate: too many degree slots for a packed state key")

	// ErrInvalidDegree indicates a degree entry outside {0,1,2}.
	ErrInvalidDegree = errors.New("tstate: degree entry must be 0, 1, or 2")

	// ErrOddEndpointList indicates an endpoint list of odd length.
	ErrOddEndpointList = errors.New("tstate: endpoint list must have even length")

	// ErrTooManyPairs indicates more endpoint pairs than maxPairs.
	ErrTooManyPairs = errors.New("tstate: too many endpoint pairs for a packed state key")

	// ErrVertexIDTooLarge indicates an endpoint vertex id exceeds maxVertID.
	ErrVertexIDTooLarge = errors.New("tstate: vertex id exceeds packed state key capacity")
)

// StateKey is a canonical, comparable encoding of a bag state. Its zero
// value decodes to (degrees of length 0, no endpoints) and is never
// produced by Encode for a non-empty bag, so it is safe to use as a map's
// "not present" sentinel if a caller wants one.
//
// StateKey is a plain comparable struct (no slices), so it can be used
// directly as a Go map key without a string- or slice-based encoding step.
type StateKey struct {
	degrees  uint64           // 2 bits per slot, low bits = slot 0
	k        uint8            // number of valid degree slots
	pairs    [maxPairs]uint64 // each pair: (min<<idBits)|max, canonical (min<=max)
	numPairs uint8
}
