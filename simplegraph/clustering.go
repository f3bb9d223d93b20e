package simplegraph

// ClusteringCoefficient reports the fraction of connected neighbor pairs
// over all neighbor pairs, aggregated across every vertex: for each vertex
// the pairs of its neighbors are examined, and a pair counts as closed when
// its two members share an edge. Returns 0 for graphs with no such pairs
// (every degree below 2).
//
// Duplicate edges inflate adjacency lists, so callers measuring simple
// graphs should construct them without duplicates.
// Complexity: O(V·d²) time for maximum degree d, O(1) extra memory.
func (g *Graph) ClusteringCoefficient() float64 {
	var closed, total int
	for i := 0; i < g.numVertices; i++ {
		nbrs := g.neighbors[i]
		for j := 1; j < len(nbrs); j++ {
			for k := 0; k < j; k++ {
				total++
				if g.HasEdge(nbrs[k], nbrs[j]) {
					closed++
				}
			}
		}
	}
	if total == 0 {
		return 0
	}

	return float64(closed) / float64(total)
}

// clusteringByVertexIndex is the historical estimator this package grew out
// of: a running average over neighbor pairs weighted by the OUTER vertex
// index rather than by the number of pairs seen. Each pair at vertex i
// folds in as avg = (i·avg + closed)/(i + 1), so early vertices dominate
// and later pairs at the same vertex each re-dilute the total. Kept
// unexported for regression comparison against ClusteringCoefficient.
func (g *Graph) clusteringByVertexIndex() float64 {
	var avg float64
	for i := 0; i < g.numVertices; i++ {
		w := float64(i)
		nbrs := g.neighbors[i]
		for j := 1; j < len(nbrs); j++ {
			for k := 0; k < j; k++ {
				if g.HasEdge(nbrs[k], nbrs[j]) {
					avg = (w*avg + 1) / (w + 1)
				} else {
					avg = avg * w / (w + 1)
				}
			}
		}
	}

	return avg
}
