package simplegraph

// queueItem pairs a vertex with its BFS depth so the traversal never needs
// a separate per-level sweep.
type queueItem struct {
	vertex int
	dist   int
}

// Distances runs breadth-first search from source and returns the hop count
// to every reachable vertex, source included (distance 0). Vertices in other
// components are absent from the map. A source outside 0..n-1 panics
// (trusted input).
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) Distances(source int) map[int]int {
	dist := make(map[int]int, g.numVertices)
	dist[source] = 0

	// Slice-backed FIFO: qi chases the tail, appends grow the head.
	queue := make([]queueItem, 0, g.numVertices)
	queue = append(queue, queueItem{vertex: source, dist: 0})

	for qi := 0; qi < len(queue); qi++ {
		item := queue[qi]
		for _, nb := range g.neighbors[item.vertex] {
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = item.dist + 1
			queue = append(queue, queueItem{vertex: nb, dist: item.dist + 1})
		}
	}

	return dist
}
