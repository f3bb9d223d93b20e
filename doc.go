// Package smallworld models undirected graphs and measures the structural
// statistics behind small-world network transitions: clustering coefficient
// and average shortest-path length under progressive random rewiring of a
// regular ring lattice.
//
// 🚀 What is smallworld?
//
//	A small, deterministic toolkit for the classic rewiring experiment:
//		• Immutable graphs: integer vertices, canonical ascending edges,
//		  precomputed adjacency and a full catalogue of candidate edges
//		• Traversal: breadth-first shortest-path distances from any vertex
//		• Statistics: clustering coefficient, exact and sampled average
//		  shortest-path length
//		• Rewiring: probabilistic edge replacement with duplicate rejection,
//		  interpolating between regular and random graph regimes
//		• Experiments: log-spaced probability sweeps, per-datapoint trial
//		  averaging, normalized CSV reports
//
// ✨ Why smallworld?
//
//   - Reproducible – every stochastic method takes an explicit seed or RNG
//   - Immutable values – a graph is never mutated; transformations return new ones
//   - Small API – a handful of methods with clear contracts and sentinel errors
//   - Pure Go core – the graph algorithms have no dependencies beyond stdlib
//
// Under the hood, everything is organized under two subpackages and a binary:
//
//	simplegraph/   — the Graph value and its four algorithms
//	experiment/    — Measure, Sweep, Config, Report
//	cmd/smallworld — command-line sweep runner emitting normalized CSV
//
// Quick ASCII example:
//
//	    0───1
//	   ╱     ╲
//	  5       2
//	   ╲     ╱
//	    4───3
//
//	a ring lattice with separation 1 — the regular starting point that
//	rewiring gradually turns into a random graph.
//
//	go get github.com/goldenratio1618/smallworld
package smallworld
