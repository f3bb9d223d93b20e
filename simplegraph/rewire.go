package simplegraph

import (
	"fmt"
	"math/rand"
)

// maxRewireDraws bounds the rejection-sampling phase of a single rewire
// before falling back to a linear catalogue scan. 64 misses in a row means
// the unused fraction is tiny, so the scan is the cheaper path.
const maxRewireDraws = 64

// Rewire returns a new Graph in which each edge was independently replaced,
// with probability p, by an edge drawn uniformly from the catalogue of all
// possible edges not currently present. The receiver is never modified.
// Positions keep their slot in the edge sequence, replaced or not.
//
// A replacement candidate must be absent from the evolving edge multiset,
// the edge being replaced included, so a rewired position always changes.
// When the catalogue is exhausted (graph already complete) the original
// edge is retained. Duplicate edges in the receiver occupy one catalogue
// slot each and drain toward distinct edges as they rewire.
//
// Options: WithRand / WithSeed select the generator; identical seeds yield
// identical results. Returns ErrInvalidProbability unless 0 ≤ p ≤ 1.
// Complexity: O(V² + E) expected time.
func (g *Graph) Rewire(p float64, opts ...Option) (*Graph, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Rewire: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
	}
	o := newOptions(opts...)

	newEdges := make([]Edge, len(g.edges))
	copy(newEdges, g.edges)

	used := make(map[Edge]int, len(newEdges))
	for _, e := range newEdges {
		used[e]++
	}

	for i := range newEdges {
		if o.rng.Float64() >= p {
			continue
		}
		cand, ok := drawUnused(g.possible, used, o.rng)
		if !ok {
			continue // every possible edge present, keep this one
		}
		old := newEdges[i]
		used[old]--
		if used[old] == 0 {
			delete(used, old)
		}
		used[cand]++
		newEdges[i] = cand
	}

	return New(g.numVertices, newEdges)
}

// drawUnused picks a catalogue edge absent from used: up to maxRewireDraws
// uniform draws, then a wrap-around scan from a random offset. Reports
// false only when every catalogue edge is in use.
func drawUnused(catalogue []Edge, used map[Edge]int, rng *rand.Rand) (Edge, bool) {
	m := len(catalogue)
	if m == 0 {
		return Edge{}, false
	}
	for d := 0; d < maxRewireDraws; d++ {
		cand := catalogue[rng.Intn(m)]
		if used[cand] == 0 {
			return cand, true
		}
	}
	offset := rng.Intn(m)
	for k := 0; k < m; k++ {
		cand := catalogue[(offset+k)%m]
		if used[cand] == 0 {
			return cand, true
		}
	}

	return Edge{}, false
}
