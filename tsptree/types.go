// Package tsptree computes an optimal travelling-salesman tour by dynamic
// programming over a tree decomposition.
//
// The DP visits bags bottom-up: for each bag and each (degree vector,
// endpoint-pairing) state, it asks how the degree owed by every vertex in
// the bag can be split between edges chosen locally and units delegated to
// a child bag, then takes the minimum over every valid split. A second pass
// re-runs the same enumeration in "reconstruction" mode to recover one
// concrete minimizing edge set instead of just its cost.
//
// Contracts: the supplied core.Graph and decomp.Decomposition are treated
// as read-only and must already satisfy the tree-decomposition covering
// properties (every vertex in some bag, every edge's endpoints sharing a
// bag, the bags containing any one vertex forming a connected subtree).
// Solve does not verify the covering properties beyond what RootAt already
// checks (bag-tree connectivity); a decomposition that is a tree but does
// not cover the graph will simply fail to find a tour or, worse, silently
// ignore an uncovered vertex — callers are responsible for supplying a
// genuine tree decomposition.
package tsptree

import (
	"errors"
	"time"
)

// Sentinel errors for Solve and its collaborators.
var (
	// ErrInvalidDecomposition indicates the decomposition has no bags or an
	// unrooted decomposition cannot be rooted by RootAt; Solve refuses to
	// run on it.
	ErrInvalidDecomposition = errors.New("tsptree: decomposition is not a valid rooted tree")

	// ErrVertexOutOfRange indicates a vertex count outside the accepted
	// range: HeldKarp returns it for graphs with fewer than 3 or more than
	// MaxHeldKarpN vertices. Solve does not return it.
	ErrVertexOutOfRange = errors.New("tsptree: vertex id out of range")

	// ErrWidthExceeded indicates a bag's content count exceeds
	// Options.WidthThreshold.
	ErrWidthExceeded = errors.New("tsptree: bag width exceeds configured threshold")

	// ErrNoTour indicates the graph has no Hamiltonian cycle consistent
	// with the supplied decomposition (the root state evaluated to +inf).
	ErrNoTour = errors.New("tsptree: no Hamiltonian cycle satisfies this decomposition")

	// ErrCancelled indicates Options.Deadline elapsed before Solve finished.
	ErrCancelled = errors.New("tsptree: solve cancelled (deadline exceeded)")
)

// infCost stands in for +infinity. Costs are compared against it with >=
// and never added to it: evaluate, lookupBack and edgeSelect stop at the
// first infinite part instead of summing, since two infCost values already
// overflow int64.
const infCost int64 = 1 << 62

// Options configures a Solve call.
//
// Zero value is not meaningful; use DefaultOptions() and override fields.
type Options struct {
	// WidthThreshold bounds the largest bag the solver will process. The
	// per-bag state space is O(3^k), so an unbounded k can exhaust memory
	// long before it exhausts patience. Default: 12.
	WidthThreshold int

	// Deadline is a soft wall-clock budget for the whole Solve call. Zero
	// means no deadline. Checked at table-query granularity, matching the
	// cooperative cancellation model: a query already in flight finishes
	// before the deadline is observed.
	Deadline time.Duration

	// Debug, if true, populates Result.Tables with a human-readable dump
	// of every bag's memo table after Solve finishes. Off by default: the
	// dump is string-keyed and adds real allocation for large tables.
	Debug bool
}

// DefaultOptions returns production-ready defaults: a width threshold of
// 12, no deadline, and debug table dumps off.
func DefaultOptions() Options {
	return Options{
		WidthThreshold: 12,
		Deadline:       0,
		Debug:          false,
	}
}

// Result is the outcome of a successful Solve.
type Result struct {
	// Cost is the total weight of the returned Hamiltonian cycle.
	Cost int64

	// Edges is a deduplicated list of (minID, maxID) vertex-id pairs
	// forming the cycle.
	Edges [][2]int

	// Tables holds, when Options.Debug is set, every bag's memo table
	// rendered as state-string -> cost, keyed by bag id. Nil otherwise.
	Tables map[int]map[string]int64
}
