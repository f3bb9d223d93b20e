// Package simplegraph treats a set of integer vertices 0..n-1 and a sequence
// of canonical edges as an immutable undirected graph. It supports:
//
//   - Breadth-first shortest-path distances from any source vertex
//   - Clustering-coefficient and average-path-length statistics
//   - Probabilistic edge rewiring producing a brand-new Graph
//
// Construction derives two indexes once and never mutates them: symmetric
// adjacency lists, and the catalogue of every possible canonical edge that
// the rewiring generator samples from.
package simplegraph

import "fmt"

// Graph is an immutable simple undirected graph. All fields are fixed at
// construction; topology changes (Rewire) return a new value, so a Graph may
// be shared freely across concurrent readers.
type Graph struct {
	numVertices int
	edges       []Edge
	// neighbors[v] lists every vertex adjacent to v: the symmetric closure
	// of edges, in edge-scan order.
	neighbors [][]int
	// possible enumerates every canonical pair (b, a) with b < a, for
	// a = 1..n-1 in ascending a then ascending b. Rewire draws from it.
	possible []Edge
	// edgeSet indexes edges by multiplicity for O(1) membership checks.
	edgeSet map[Edge]int
}

// New constructs a Graph over numVertices vertices with the given edges.
// Each pair is canonicalized (smaller endpoint first) and copied, so the
// caller's slice stays untouched. Duplicate edges are permitted and
// preserved. Endpoint ranges are NOT validated: an edge referencing a vertex
// outside 0..numVertices-1 panics on the adjacency index (trusted input).
// Returns ErrTooFewVertices when numVertices < 1.
// Complexity: O(numVertices² + |edges|) time and memory.
func New(numVertices int, edges []Edge) (*Graph, error) {
	if numVertices < 1 {
		return nil, fmt.Errorf("New: numVertices=%d: %w", numVertices, ErrTooFewVertices)
	}

	canon := make([]Edge, len(edges))
	for i, e := range edges {
		canon[i] = NewEdge(e.U, e.V)
	}

	neighbors := make([][]int, numVertices)
	edgeSet := make(map[Edge]int, len(canon))
	for _, e := range canon {
		neighbors[e.U] = append(neighbors[e.U], e.V)
		neighbors[e.V] = append(neighbors[e.V], e.U)
		edgeSet[e]++
	}

	// Catalogue of all possible edges: for a ascending, every b below a.
	possible := make([]Edge, 0, numVertices*(numVertices-1)/2)
	for a := 0; a < numVertices; a++ {
		for b := 0; b < a; b++ {
			possible = append(possible, Edge{U: b, V: a})
		}
	}

	g := &Graph{
		numVertices: numVertices,
		edges:       canon,
		neighbors:   neighbors,
		possible:    possible,
		edgeSet:     edgeSet,
	}

	return g, nil
}

// NumVertices reports the number of vertices.
// Complexity: O(1).
func (g *Graph) NumVertices() int {
	return g.numVertices
}

// NumEdges reports the number of edges, counting duplicates.
// Complexity: O(1).
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Edges returns a copy of the edge sequence in construction order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns a copy of the vertices adjacent to v, in edge-scan
// order. A vertex outside 0..n-1 panics (trusted input).
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, len(g.neighbors[v]))
	copy(out, g.neighbors[v])

	return out
}

// Degree reports how many edge endpoints touch v, counting duplicates.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	return len(g.neighbors[v])
}

// HasEdge reports whether the edge {u, v} is present, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	return g.edgeSet[NewEdge(u, v)] > 0
}

// AllPossibleEdges returns a copy of the catalogue of every canonical pair
// over the vertex set: n·(n-1)/2 edges, each exactly once.
// Complexity: O(V²).
func (g *Graph) AllPossibleEdges() []Edge {
	out := make([]Edge, len(g.possible))
	copy(out, g.possible)

	return out
}
