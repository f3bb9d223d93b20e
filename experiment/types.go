// Package experiment defines configuration, result types, options, and
// sentinel errors for the sweep driver.
package experiment

import (
	"errors"
	"math/rand"

	"github.com/goldenratio1618/smallworld/simplegraph"
)

// Sentinel errors for experiment operations.
var (
	// ErrBadConfig indicates a Config field outside its documented range.
	ErrBadConfig = errors.New("experiment: invalid configuration")
	// ErrNilGraph indicates a nil *simplegraph.Graph passed to Measure.
	ErrNilGraph = errors.New("experiment: nil graph")
)

// Config declares one rewiring sweep. The yaml tags match the on-disk
// configuration format accepted by ParseConfig.
type Config struct {
	// Vertices is the ring-lattice size. Must be at least 1.
	Vertices int `yaml:"vertices"`
	// Separation is the lattice neighbor distance. Must be at least 1 and
	// satisfy 2·Separation < Vertices.
	Separation int `yaml:"separation"`
	// Trials is the number of independent rewirings averaged per
	// probability. Must be at least 1.
	Trials int `yaml:"trials"`
	// Datapoints is the number of log-spaced probabilities. Must be at
	// least 1.
	Datapoints int `yaml:"datapoints"`
	// Seed feeds the base RNG; 0 selects the fixed default seed.
	Seed int64 `yaml:"seed"`
	// ExactPathLength switches Sweep from the sampled path-length estimate
	// to the exact all-pairs mean.
	ExactPathLength bool `yaml:"exact_path_length"`
}

// Point is the aggregate of all trials at one rewiring probability.
type Point struct {
	// Probability is the grid value the trials rewired at.
	Probability float64
	// Clustering is the mean clustering coefficient across trials.
	Clustering float64
	// PathLength is the mean average path length across trials.
	PathLength float64
}

// Report is the complete output of one Sweep.
type Report struct {
	// RunID uniquely identifies the sweep execution.
	RunID string
	// Points holds one aggregate per probability, grid order.
	Points []Point
	// ClusteringSD and PathLengthSD hold the sample standard deviation
	// across trials, indexed like Points. Zero when Trials < 2.
	ClusteringSD []float64
	PathLengthSD []float64
}

// Options holds tunable parameters for Measure and Sweep.
type Options struct {
	// rng is the base generator for stream derivation. nil defers to the
	// Config seed (Sweep) or the fixed default seed (Measure).
	rng *rand.Rand
	// exact selects the all-pairs path length over the sampled estimate.
	exact bool
	// sampleSize is the number of BFS sources for the sampled estimate.
	sampleSize int
	// onDatapoint fires before each probability's first trial.
	onDatapoint func(index int, probability float64)
	// onTrial fires before each individual trial.
	onTrial func(datapoint, trial int)
}

// Option configures Measure and Sweep via functional arguments. Option
// constructors validate their input and panic on meaningless values.
type Option func(*Options)

// DefaultOptions returns the baseline: no explicit RNG, sampled path length
// with simplegraph.DefaultSampleSize sources, no progress callbacks.
func DefaultOptions() Options {
	return Options{
		rng:        nil,
		exact:      false,
		sampleSize: simplegraph.DefaultSampleSize,
	}
}

// WithRand provides an explicit base RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("experiment: WithRand(nil)")
	}

	return func(o *Options) {
		o.rng = r
	}
}

// WithSeed derives the base RNG from seed. A seed of 0 selects the fixed
// default seed. For Sweep this overrides Config.Seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rngFromSeed(seed)
	}
}

// WithExactPathLength selects the exact all-pairs path length. Expensive on
// large graphs; the sampled default tracks it closely.
func WithExactPathLength() Option {
	return func(o *Options) {
		o.exact = true
	}
}

// WithSampleSize sets how many BFS sources the sampled path length draws.
// Panics when k < 1.
func WithSampleSize(k int) Option {
	if k < 1 {
		panic("experiment: WithSampleSize: sample size must be positive")
	}

	return func(o *Options) {
		o.sampleSize = k
	}
}

// WithOnDatapoint registers a callback fired before each probability is
// measured, with the grid index and probability value. A nil fn is ignored.
func WithOnDatapoint(fn func(index int, probability float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onDatapoint = fn
		}
	}
}

// WithOnTrial registers a callback fired before each trial, with the grid
// index and trial number. A nil fn is ignored.
func WithOnTrial(fn func(datapoint, trial int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onTrial = fn
		}
	}
}

// newOptions applies opts over DefaultOptions. The rng field may stay nil;
// Measure and Sweep resolve it against their own seed policy.
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
