// Package graphtools computes an optimal travelling-salesman tour on an
// undirected, nonnegative-integer-weighted graph by dynamic programming over
// a supplied tree decomposition.
//
// Given a graph and a tree decomposition of that graph (both immutable
// inputs — this module does not build decompositions itself), the core
// returns either the minimum weight of a Hamiltonian cycle together with a
// concrete edge list realizing it, or reports that no such cycle exists.
//
// Packages:
//
//	core/    — Vertex, Edge, Graph: a dense-id undirected weighted graph
//	decomp/  — Bag, Decomposition: a tree of bags over a core.Graph, rooting
//	tstate/  — StateKey: packed (degree vector, endpoint pairing) codec
//	tsptree/ — the DP engine: edge selector, distributor, table, driver
//	tspfile/ — a TSPLIB-flavored text reader/writer for graphs and bags
//	cmd/tdtsp — a CLI wrapper around tsptree.Solve
//
// The DP itself is the Held–Karp-style "partial Hamiltonian path over a
// tree decomposition" algorithm: each bag of the decomposition owns a memo
// table keyed by a (degree vector, endpoint pairing) state, and the table is
// filled bottom-up by splitting each required vertex degree between edges
// chosen locally inside the bag and degree delegated to a child bag.
//
//	go get github.com/Mattias1/graph-tools
package graphtools
