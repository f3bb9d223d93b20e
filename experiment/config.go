package experiment

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Default sweep shape: a 1000-vertex lattice of separation 5, 100 trials at
// each of 100 log-spaced probabilities.
const (
	DefaultVertices   = 1000
	DefaultSeparation = 5
	DefaultTrials     = 100
	DefaultDatapoints = 100
)

// logSpaceBase is the ratio between consecutive grid probabilities.
const logSpaceBase = 1.1

// DefaultConfig returns the standard sweep configuration with a zero seed
// (the fixed default seed applies) and the sampled path length.
func DefaultConfig() Config {
	return Config{
		Vertices:   DefaultVertices,
		Separation: DefaultSeparation,
		Trials:     DefaultTrials,
		Datapoints: DefaultDatapoints,
	}
}

// ParseConfig reads a YAML sweep configuration. Omitted fields keep their
// DefaultConfig values; an empty document yields DefaultConfig itself.
// Unknown fields are rejected. The result is validated before return.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("ParseConfig: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first field outside its documented range, wrapped
// around ErrBadConfig. The lattice must stay simple, hence the requirement
// 2·Separation < Vertices.
func (c Config) Validate() error {
	if c.Vertices < 1 {
		return fmt.Errorf("Validate: vertices=%d: %w", c.Vertices, ErrBadConfig)
	}
	if c.Separation < 1 {
		return fmt.Errorf("Validate: separation=%d: %w", c.Separation, ErrBadConfig)
	}
	if 2*c.Separation >= c.Vertices {
		return fmt.Errorf("Validate: separation=%d too large for %d vertices: %w",
			c.Separation, c.Vertices, ErrBadConfig)
	}
	if c.Trials < 1 {
		return fmt.Errorf("Validate: trials=%d: %w", c.Trials, ErrBadConfig)
	}
	if c.Datapoints < 1 {
		return fmt.Errorf("Validate: datapoints=%d: %w", c.Datapoints, ErrBadConfig)
	}

	return nil
}

// LogSpace returns the n-point probability grid 1.1^(x-(n-1)) for
// x = 0..n-1: a geometric ramp whose last entry is exactly 1. Returns nil
// when n < 1.
// Complexity: O(n).
func LogSpace(n int) []float64 {
	if n < 1 {
		return nil
	}

	grid := make([]float64, n)
	for x := 0; x < n; x++ {
		grid[x] = math.Pow(logSpaceBase, float64(x-(n-1)))
	}

	return grid
}
