package simplegraph_test

import (
	"fmt"

	"github.com/goldenratio1618/smallworld/simplegraph"
)

// ExampleRingLattice demonstrates building the regular ring lattice.
// Scenario:
//
//   - 6 vertices, separation 1: the plain 6-cycle.
//   - Vertex 0 meets its wrapped neighbor 5 before its forward neighbor 1.
func ExampleRingLattice() {
	g, _ := simplegraph.RingLattice(6, 1)

	fmt.Printf("vertices=%d edges=%d\n", g.NumVertices(), g.NumEdges())
	fmt.Println("neighbors of 0:", g.Neighbors(0))

	// Output:
	// vertices=6 edges=6
	// neighbors of 0: [5 1]
}

// ExampleGraph_Distances demonstrates BFS hop counts on the 6-cycle: the
// antipodal vertex 3 sits three hops away, everything else closer.
func ExampleGraph_Distances() {
	g, _ := simplegraph.RingLattice(6, 1)

	fmt.Println(g.Distances(0))

	// Output:
	// map[0:0 1:1 2:2 3:3 4:2 5:1]
}

// ExampleGraph_ClusteringCoefficient demonstrates the lattice's high
// clustering: at separation 2, half of each vertex's neighbor pairs close.
func ExampleGraph_ClusteringCoefficient() {
	g, _ := simplegraph.RingLattice(20, 2)

	fmt.Printf("clustering=%.2f\n", g.ClusteringCoefficient())

	// Output:
	// clustering=0.50
}

// ExampleGraph_AveragePathLength demonstrates the exact all-pairs mean on
// the 6-cycle: 15 pairs at total distance 27.
func ExampleGraph_AveragePathLength() {
	g, _ := simplegraph.RingLattice(6, 1)

	fmt.Printf("path length=%.1f\n", g.AveragePathLength())

	// Output:
	// path length=1.8
}

// ExampleGraph_Rewire demonstrates that rewiring preserves the edge count
// while redirecting a random fraction of edges. Counts are deterministic
// even though the topology depends on the seed.
func ExampleGraph_Rewire() {
	g, _ := simplegraph.RingLattice(12, 2)
	rewired, _ := g.Rewire(0.3, simplegraph.WithSeed(7))

	fmt.Printf("edges before=%d after=%d\n", g.NumEdges(), rewired.NumEdges())

	// Output:
	// edges before=24 after=24
}
