package simplegraph

import "fmt"

// RingLattice builds the regular ring lattice on numVertices vertices in
// which every vertex connects to its `separation` nearest neighbors on each
// side, wrapping around the ring. The result has numVertices·separation
// edges and every vertex has degree 2·separation.
//
// Emission order follows the ring walk: for each vertex i ascending, the
// edges to i-separation .. i-1, wrapped modulo numVertices when negative.
// Callers wanting a simple graph must keep 2·separation < numVertices;
// larger separations re-emit wrapped pairs as duplicates.
//
// Returns ErrTooFewVertices when numVertices < 1 or separation < 1.
// Complexity: O(numVertices² + numVertices·separation).
func RingLattice(numVertices, separation int) (*Graph, error) {
	if numVertices < 1 {
		return nil, fmt.Errorf("RingLattice: numVertices=%d: %w", numVertices, ErrTooFewVertices)
	}
	if separation < 1 {
		return nil, fmt.Errorf("RingLattice: separation=%d: %w", separation, ErrTooFewVertices)
	}

	edges := make([]Edge, 0, numVertices*separation)
	for i := 0; i < numVertices; i++ {
		for j := i - separation; j < i; j++ {
			if j < 0 {
				edges = append(edges, NewEdge(i, j+numVertices))
			} else {
				edges = append(edges, NewEdge(i, j))
			}
		}
	}

	return New(numVertices, edges)
}
