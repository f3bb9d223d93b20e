// Package simplegraph defines core types, options, and sentinel errors
// for the simplegraph subpackage of github.com/goldenratio1618/smallworld.
package simplegraph

import (
	"errors"
	"math/rand"
)

// Sentinel errors for simplegraph operations.
var (
	// ErrTooFewVertices indicates a vertex count or separation below the minimum of 1.
	ErrTooFewVertices = errors.New("simplegraph: parameter too small")
	// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("simplegraph: probability out of range")
)

// DefaultSampleSize is the number of source vertices AveragePathLengthSampled
// draws when WithSampleSize is not supplied.
const DefaultSampleSize = 20

// Edge is an unordered pair of vertices stored in canonical ascending order,
// U < V. Use NewEdge to construct one; it never needs to be canonicalized by
// callers.
type Edge struct {
	U, V int
}

// NewEdge returns the canonical form of the edge {a, b}: the smaller endpoint
// first. Endpoint range is not validated (trusted input).
// Complexity: O(1).
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Options holds tunable parameters for the stochastic Graph methods.
// Zero-value fields are resolved to deterministic defaults at call time.
type Options struct {
	// rng drives every random draw. nil selects the fixed default seed.
	rng *rand.Rand
	// sampleSize is the number of BFS sources for AveragePathLengthSampled.
	sampleSize int
}

// Option configures stochastic Graph methods via functional arguments.
// Option constructors validate their input and panic on meaningless values;
// the methods themselves never panic on option state.
type Option func(*Options)

// DefaultOptions returns the Options every stochastic method starts from:
// no explicit RNG (the fixed default seed applies) and DefaultSampleSize
// sources for the sampled path length.
func DefaultOptions() Options {
	return Options{
		rng:        nil,
		sampleSize: DefaultSampleSize,
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible one-off calls.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simplegraph: WithRand(nil)")
	}

	return func(o *Options) {
		o.rng = r
	}
}

// WithSeed derives a deterministic RNG from seed. A seed of 0 selects the
// fixed default seed, so the zero value still yields reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rngFromSeed(seed)
	}
}

// WithSampleSize sets how many source vertices AveragePathLengthSampled
// draws. Panics when k < 1.
func WithSampleSize(k int) Option {
	if k < 1 {
		panic("simplegraph: WithSampleSize: sample size must be positive")
	}

	return func(o *Options) {
		o.sampleSize = k
	}
}

// newOptions applies opts over DefaultOptions and resolves the RNG so that
// callers always observe a non-nil, deterministic stream.
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(0)
	}

	return o
}
