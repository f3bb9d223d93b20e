package experiment

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/goldenratio1618/smallworld/simplegraph"
)

// Measure rewires g at probability p and reports the rewired graph's
// clustering coefficient and average path length as a Point. The receiver
// graph is never modified.
//
// Options: WithSeed / WithRand drive the rewiring and the sampled
// path-length sources from one stream; WithExactPathLength and
// WithSampleSize select the path-length flavor.
// Returns ErrNilGraph for a nil graph and wraps the rewiring error
// (simplegraph.ErrInvalidProbability) for p outside [0,1].
func Measure(g *simplegraph.Graph, p float64, opts ...Option) (Point, error) {
	if g == nil {
		return Point{}, fmt.Errorf("Measure: %w", ErrNilGraph)
	}
	o := newOptions(opts...)
	rng := o.rng
	if rng == nil {
		rng = rngFromSeed(0)
	}

	return measure(g, p, rng, o)
}

// measure is the per-trial worker shared by Measure and Sweep. The rng
// drives the rewiring first, then the sampled path-length sources, so one
// stream fully determines the trial.
func measure(g *simplegraph.Graph, p float64, rng *rand.Rand, o Options) (Point, error) {
	rewired, err := g.Rewire(p, simplegraph.WithRand(rng))
	if err != nil {
		return Point{}, fmt.Errorf("experiment: rewire at p=%g: %w", p, err)
	}

	pt := Point{
		Probability: p,
		Clustering:  rewired.ClusteringCoefficient(),
	}
	if o.exact {
		pt.PathLength = rewired.AveragePathLength()
	} else {
		pt.PathLength = rewired.AveragePathLengthSampled(
			simplegraph.WithRand(rng),
			simplegraph.WithSampleSize(o.sampleSize),
		)
	}

	return pt, nil
}

// Sweep runs the full experiment declared by cfg: one ring lattice, rewired
// independently cfg.Trials times at each of cfg.Datapoints log-spaced
// probabilities, every trial on its own RNG stream derived from the base
// generator. Points hold the per-probability means; the SD slices hold the
// matching sample standard deviations.
//
// The base generator comes from WithRand / WithSeed when given, otherwise
// from cfg.Seed. Two Sweeps with equal configs and seeds produce equal
// Points and SDs; only RunID differs.
//
// Complexity: Datapoints·Trials measurements.
func Sweep(cfg Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)
	if cfg.ExactPathLength {
		o.exact = true
	}
	base := o.rng
	if base == nil {
		base = rngFromSeed(cfg.Seed)
	}

	lattice, err := simplegraph.RingLattice(cfg.Vertices, cfg.Separation)
	if err != nil {
		return nil, fmt.Errorf("experiment: build lattice: %w", err)
	}

	grid := LogSpace(cfg.Datapoints)
	report := &Report{
		RunID:        uuid.NewString(),
		Points:       make([]Point, 0, cfg.Datapoints),
		ClusteringSD: make([]float64, 0, cfg.Datapoints),
		PathLengthSD: make([]float64, 0, cfg.Datapoints),
	}

	clusterings := make([]float64, cfg.Trials)
	pathLengths := make([]float64, cfg.Trials)
	for di, p := range grid {
		if o.onDatapoint != nil {
			o.onDatapoint(di, p)
		}
		for t := 0; t < cfg.Trials; t++ {
			if o.onTrial != nil {
				o.onTrial(di, t)
			}
			rng := deriveRNG(base, uint64(di*cfg.Trials+t))
			pt, err := measure(lattice, p, rng, o)
			if err != nil {
				return nil, err
			}
			clusterings[t] = pt.Clustering
			pathLengths[t] = pt.PathLength
		}
		report.Points = append(report.Points, Point{
			Probability: p,
			Clustering:  stat.Mean(clusterings, nil),
			PathLength:  stat.Mean(pathLengths, nil),
		})
		report.ClusteringSD = append(report.ClusteringSD, sampleStdDev(clusterings))
		report.PathLengthSD = append(report.PathLengthSD, sampleStdDev(pathLengths))
	}

	return report, nil
}

// sampleStdDev guards stat.StdDev against the single-observation case,
// where the sample standard deviation is undefined and gonum reports NaN.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}

	return stat.StdDev(xs, nil)
}
