// Package simplegraph - deterministic random generation for the stochastic
// Graph methods (Rewire, AveragePathLengthSampled).
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; give each caller its own via WithSeed or WithRand.
package simplegraph

import "math/rand"

// defaultRNGSeed replaces seed==0 so that unseeded calls are still
// reproducible run to run.
const defaultRNGSeed int64 = 1

// rngFromSeed builds a deterministic *rand.Rand from a caller seed.
// seed==0 selects defaultRNGSeed; any other value is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
