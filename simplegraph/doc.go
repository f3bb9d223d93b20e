// Package simplegraph provides an immutable simple undirected graph over
// integer vertices, together with the four algorithms of the small-world
// rewiring experiment: shortest-path distances, clustering coefficient,
// average path length, and probabilistic edge rewiring.
//
// What:
//
//   - Graph is an immutable value: vertex count, canonical edge sequence,
//     derived adjacency lists, and a precomputed catalogue of every possible
//     edge. Any topology change produces a brand-new Graph.
//   - RingLattice builds the canonical regular starting graph: each vertex
//     connected to its `separation` nearest predecessors on a cycle.
//   - Distances runs breadth-first search from one source, returning the
//     shortest-path distance to every reachable vertex.
//   - ClusteringCoefficient measures triangle density as the ratio of closed
//     to connected neighbor pairs.
//   - AveragePathLength and AveragePathLengthSampled compute the mean
//     shortest-path distance over vertex pairs, exactly or from a random
//     sample of source vertices.
//   - Rewire replaces each edge independently with probability p by a fresh
//     duplicate-free draw from the catalogue of all possible edges.
//
// Why:
//
//   - Small-world analysis: track how clustering and path length react as a
//     regular lattice is progressively randomized (the Watts–Strogatz
//     transition).
//   - Deterministic simulation: every stochastic method accepts an explicit
//     seed or *rand.Rand, so runs are reproducible across platforms.
//
// Complexity (V = |vertices|, E = |edges|):
//
//   - New:                        O(V² + E) time, O(V² + E) memory (catalogue).
//   - Distances:                  O(V + E) per call.
//   - ClusteringCoefficient:      O(Σ deg(v)²).
//   - AveragePathLength:          O(V·(V + E)).
//   - AveragePathLengthSampled:   O(k·(V + E)) for k sampled sources.
//   - Rewire:                     O(E) expected draws plus one O(V²) rebuild.
//
// Options:
//
//   - WithSeed(seed): deterministic RNG from a seed (0 selects the fixed
//     default seed).
//   - WithRand(r): explicit RNG, useful for deriving independent streams.
//   - WithSampleSize(k): number of BFS sources for the sampled path length
//     (default DefaultSampleSize).
//
// Errors:
//
//   - ErrTooFewVertices: a vertex count or separation below 1.
//   - ErrInvalidProbability: a rewiring probability outside [0,1].
//
// Vertex indices are trusted input: passing a vertex outside 0..V-1 to
// Distances or constructing edges with out-of-range endpoints causes an
// index panic rather than a reported error.
//
// See example_test.go for runnable scenarios.
package simplegraph
