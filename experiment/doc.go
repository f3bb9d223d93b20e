// Package experiment drives Watts–Strogatz rewiring sweeps over
// simplegraph values and aggregates the resulting small-world statistics.
//
// What:
//
//   - Config declares a sweep: lattice size and separation, trials per
//     probability, number of log-spaced probabilities, base seed, and
//     whether the path length is exact or sampled. Configs load from YAML
//     (ParseConfig) or start from DefaultConfig.
//   - LogSpace produces the probability grid 1.1^(x-(n-1)), a geometric
//     ramp ending exactly at 1.
//   - Measure rewires one graph at one probability and reports its
//     clustering coefficient and average path length as a Point.
//   - Sweep runs the full grid: Trials independent rewirings per
//     probability, each on a fresh RNG stream derived from the base seed,
//     averaged into one Point per probability with sample standard
//     deviations alongside.
//   - Report carries the sweep output: a unique RunID, the Points, and the
//     per-probability standard deviations. Normalized rescales both series
//     against the first probability's values; WriteCSV renders the rows.
//
// Why:
//
//   - The small-world regime announces itself in normalized curves:
//     clustering stays near 1 while path length collapses. Sweep produces
//     exactly those curves, reproducibly, from one seed.
//   - Trials are independent measurements, so Points carry honest error
//     bars (sample standard deviation) rather than bare means.
//
// Complexity: one Sweep costs Datapoints·Trials measurements; each
// measurement is one Rewire plus one clustering scan plus one path-length
// pass (exact O(V·(V+E)) or sampled O(k·(V+E))).
//
// Options:
//
//   - WithSeed(seed) / WithRand(r): the base RNG for stream derivation.
//   - WithExactPathLength(): exact all-pairs mean instead of the sampled
//     estimate.
//   - WithSampleSize(k): sources for the sampled estimate.
//   - WithOnDatapoint(fn) / WithOnTrial(fn): progress callbacks, invoked
//     synchronously before each unit of work.
//
// Errors:
//
//   - ErrBadConfig: a Config field outside its documented range.
//   - ErrNilGraph: Measure called with a nil *simplegraph.Graph.
//
// See example_test.go for runnable scenarios.
package experiment
