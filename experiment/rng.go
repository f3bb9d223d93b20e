// Package experiment - deterministic random generation for the sweep
// driver.
//
// Every trial of a sweep runs on its own derived RNG stream, so a sweep's
// results depend only on the base seed and the grid position, never on
// execution order side effects.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Derive one stream per worker
//     with deriveRNG instead of sharing the base generator.
package experiment

import "math/rand"

// defaultRNGSeed stands in for seed==0, keeping unseeded sweeps
// deterministic. Matches the simplegraph policy so the two packages agree
// on what an unseeded run means.
const defaultRNGSeed int64 = 1

// rngFromSeed builds the base generator for a sweep. seed==0 selects
// defaultRNGSeed, anything else is used as given.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche, so nearby trial indices yield
// uncorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base==nil, defaultRNGSeed is the parent.
// Otherwise base.Int63() is consumed once, so repeated derivations with the
// same stream id still differ.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
