package core

import "sort"

// AddVertex appends a new vertex and returns its assigned id. pos and name
// are optional (pos may be nil, name may be empty).
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(pos *Point, name string) int {
	g.muBuild.Lock()
	defer g.muBuild.Unlock()

	id := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, Pos: pos, Name: name})
	g.adjacency = append(g.adjacency, nil)

	return id
}

// AddEdge adds an undirected edge {a,b} with the given cost.
//
// Errors: ErrVertexOutOfRange, ErrSelfLoop, ErrNegativeCost,
// ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b int, cost int64) error {
	g.muBuild.Lock()
	defer g.muBuild.Unlock()

	n := len(g.vertices)
	if a < 0 || a >= n || b < 0 || b >= n {
		return ErrVertexOutOfRange
	}
	if a == b {
		return ErrSelfLoop
	}
	if cost < 0 {
		return ErrNegativeCost
	}
	key := canonicalPair(a, b)
	if _, exists := g.edgeCost[key]; exists {
		return ErrMultiEdgeNotAllowed
	}

	g.edgeCost[key] = cost
	e := Edge{A: a, B: b, Cost: cost}
	g.adjacency[a] = append(g.adjacency[a], e)
	g.adjacency[b] = append(g.adjacency[b], e)
	g.numEdges++

	return nil
}

// canonicalPair orders a pair of vertex ids so it can key edgeCost
// regardless of the order callers pass endpoints in.
func canonicalPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}

	return [2]int{b, a}
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	return len(g.vertices)
}

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	return g.numEdges
}

// Vertex returns the vertex with the given id.
//
// Errors: ErrVertexOutOfRange.
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	if id < 0 || id >= len(g.vertices) {
		return Vertex{}, ErrVertexOutOfRange
	}

	return g.vertices[id], nil
}

// Vertices returns a copy of all vertices, in id order.
func (g *Graph) Vertices() []Vertex {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Cost returns the cost of edge {a,b} and whether it exists.
//
// Complexity: O(1).
func (g *Graph) Cost(a, b int) (int64, bool) {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	c, ok := g.edgeCost[canonicalPair(a, b)]

	return c, ok
}

// Neighbors returns the edges incident to vertex v.
//
// Errors: ErrVertexOutOfRange.
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	if v < 0 || v >= len(g.vertices) {
		return nil, ErrVertexOutOfRange
	}
	out := make([]Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Degree returns the number of edges incident to vertex v.
//
// Errors: ErrVertexOutOfRange.
func (g *Graph) Degree(v int) (int, error) {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	if v < 0 || v >= len(g.vertices) {
		return 0, ErrVertexOutOfRange
	}

	return len(g.adjacency[v]), nil
}

// EdgesAmong returns the edges of g with both endpoints in ids, sorted
// ascending by cost with ties broken by (Min,Max) — the order the edge
// selector requires for deterministic output.
//
// Complexity: O(k^2 + k*log(k)) where k = len(ids).
func (g *Graph) EdgesAmong(ids []int) []Edge {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	in := make(map[int]bool, len(ids))
	for _, id := range ids {
		in[id] = true
	}

	seen := make(map[[2]int]bool)
	var out []Edge
	for _, v := range ids {
		if v < 0 || v >= len(g.adjacency) {
			continue
		}
		for _, e := range g.adjacency[v] {
			other := e.Other(v)
			if !in[other] {
				continue
			}
			key := canonicalPair(e.A, e.B)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		if out[i].Min() != out[j].Min() {
			return out[i].Min() < out[j].Min()
		}

		return out[i].Max() < out[j].Max()
	})

	return out
}
