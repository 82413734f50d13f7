package tsptree

import (
	"time"

	"github.com/Mattias1/graph-tools/core"
	"github.com/Mattias1/graph-tools/decomp"
	"github.com/Mattias1/graph-tools/tstate"
)

// solver holds the per-run mutable state shared by every table_query and
// reconstruct call: one memo table per bag, a cache of per-bag edge/child
// metadata, and the cooperative cancellation deadline.
type solver struct {
	graph         *core.Graph
	decomposition *decomp.Decomposition
	opts          Options

	tables   []map[tstate.StateKey]int64
	bagCtxes []*bagCtx

	useDeadline bool
	deadline    time.Time
	cancelled   bool
}

func newSolver(g *core.Graph, d *decomp.Decomposition, opts Options) *solver {
	s := &solver{
		graph:         g,
		decomposition: d,
		opts:          opts,
		tables:        make([]map[tstate.StateKey]int64, len(d.Bags)),
		bagCtxes:      make([]*bagCtx, len(d.Bags)),
	}
	for i := range d.Bags {
		s.tables[i] = make(map[tstate.StateKey]int64)
	}
	if opts.Deadline > 0 {
		s.useDeadline = true
		s.deadline = time.Now().Add(opts.Deadline)
	}

	return s
}

func (s *solver) bagCtxFor(b *decomp.Bag) *bagCtx {
	if s.bagCtxes[b.ID] == nil {
		s.bagCtxes[b.ID] = newBagCtx(s.graph, b)
	}

	return s.bagCtxes[b.ID]
}

// checkDeadline samples the wall clock and latches s.cancelled once the
// deadline has passed. Cheap to call after every table_query, since the
// work per query dominates the cost of one time.Now call.
func (s *solver) checkDeadline() {
	if !s.useDeadline || s.cancelled {
		return
	}
	if time.Now().After(s.deadline) {
		s.cancelled = true
	}
}

// Solve computes an optimal Hamiltonian cycle of g by dynamic programming
// over d, rooting d first if it has not been rooted yet.
//
// Errors: ErrInvalidDecomposition, ErrWidthExceeded, ErrNoTour, ErrCancelled.
func Solve(g *core.Graph, d *decomp.Decomposition, opts Options) (Result, error) {
	if d.NumBags() == 0 {
		return Result{}, ErrInvalidDecomposition
	}
	if d.RootID() < 0 {
		if err := d.RootAt(-1); err != nil {
			return Result{}, ErrInvalidDecomposition
		}
	}

	threshold := opts.WidthThreshold
	if threshold <= 0 {
		threshold = DefaultOptions().WidthThreshold
	}
	for _, b := range d.Bags {
		if len(b.Contents) > threshold {
			return Result{}, ErrWidthExceeded
		}
	}

	s := newSolver(g, d, opts)
	root := &d.Bags[d.RootID()]
	rootBag := s.bagCtxFor(root)

	rootDegrees := make([]int, len(root.Contents))
	for i := range rootDegrees {
		rootDegrees[i] = 2
	}
	rootState, err := tstate.Encode(rootDegrees, nil)
	if err != nil {
		return Result{}, ErrInvalidDecomposition
	}

	cost := s.tableQuery(rootBag, rootState)
	if s.cancelled {
		return Result{}, ErrCancelled
	}
	if cost >= infCost {
		return Result{}, ErrNoTour
	}

	rawEdges := s.reconstruct(rootBag, rootState)
	if s.cancelled {
		return Result{}, ErrCancelled
	}

	result := Result{Cost: cost, Edges: dedupEdges(rawEdges)}
	if opts.Debug {
		result.Tables = s.snapshotTables()
	}

	return result, nil
}

// snapshotTables renders every bag's memo table with string state keys,
// mirroring the reference implementation's practice of printing each bag's
// table after solving — kept here as an optional, test- and
// debug-oriented side channel rather than anything the solver itself
// reads back.
func (s *solver) snapshotTables() map[int]map[string]int64 {
	out := make(map[int]map[string]int64, len(s.tables))
	for bagID, table := range s.tables {
		rendered := make(map[string]int64, len(table))
		for state, cost := range table {
			rendered[state.String()] = cost
		}
		out[bagID] = rendered
	}

	return out
}

func dedupEdges(edges [][2]int) [][2]int {
	seen := make(map[[2]int]bool, len(edges))
	out := make([][2]int, 0, len(edges))
	for _, e := range edges {
		key := canonPair(e[0], e[1])
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}

	return out
}
