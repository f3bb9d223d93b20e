package experiment_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/goldenratio1618/smallworld/experiment"
)

// TestDefaultConfig verifies the standard sweep shape and that it validates.
func TestDefaultConfig(t *testing.T) {
	cfg := experiment.DefaultConfig()

	if cfg.Vertices != 1000 || cfg.Separation != 5 {
		t.Errorf("lattice = %d/%d; want 1000/5", cfg.Vertices, cfg.Separation)
	}
	if cfg.Trials != 100 || cfg.Datapoints != 100 {
		t.Errorf("sweep = %d trials × %d datapoints; want 100 × 100", cfg.Trials, cfg.Datapoints)
	}
	if cfg.Seed != 0 || cfg.ExactPathLength {
		t.Errorf("defaults: seed=%d exact=%v; want 0/false", cfg.Seed, cfg.ExactPathLength)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v; want nil", err)
	}
}

// TestConfig_Validate rejects each out-of-range field.
func TestConfig_Validate(t *testing.T) {
	valid := experiment.Config{Vertices: 24, Separation: 2, Trials: 3, Datapoints: 4}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*experiment.Config)
	}{
		{"ZeroVertices", func(c *experiment.Config) { c.Vertices = 0 }},
		{"ZeroSeparation", func(c *experiment.Config) { c.Separation = 0 }},
		{"SeparationTooLarge", func(c *experiment.Config) { c.Separation = 12 }},
		{"ZeroTrials", func(c *experiment.Config) { c.Trials = 0 }},
		{"ZeroDatapoints", func(c *experiment.Config) { c.Datapoints = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, experiment.ErrBadConfig) {
				t.Errorf("Validate() = %v; want ErrBadConfig", err)
			}
		})
	}
}

// TestParseConfig covers full, partial, and empty documents.
func TestParseConfig(t *testing.T) {
	full := `
vertices: 64
separation: 3
trials: 5
datapoints: 8
seed: 42
exact_path_length: true
`
	cfg, err := experiment.ParseConfig(strings.NewReader(full))
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	want := experiment.Config{
		Vertices: 64, Separation: 3, Trials: 5, Datapoints: 8,
		Seed: 42, ExactPathLength: true,
	}
	if cfg != want {
		t.Errorf("ParseConfig = %+v; want %+v", cfg, want)
	}

	// Omitted fields keep their defaults.
	partial, err := experiment.ParseConfig(strings.NewReader("vertices: 128\n"))
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if partial.Vertices != 128 || partial.Separation != experiment.DefaultSeparation {
		t.Errorf("partial = %+v; want vertices 128 with default separation", partial)
	}
	if partial.Trials != experiment.DefaultTrials || partial.Datapoints != experiment.DefaultDatapoints {
		t.Errorf("partial = %+v; want default trials and datapoints", partial)
	}

	// An empty document is the default configuration.
	empty, err := experiment.ParseConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if empty != experiment.DefaultConfig() {
		t.Errorf("empty document = %+v; want DefaultConfig", empty)
	}
}

// TestParseConfig_Errors covers unknown fields, syntax errors, and values
// that fail validation.
func TestParseConfig_Errors(t *testing.T) {
	if _, err := experiment.ParseConfig(strings.NewReader("verticies: 10\n")); err == nil {
		t.Error("unknown field accepted; want decode error")
	}
	if _, err := experiment.ParseConfig(strings.NewReader("vertices: [\n")); err == nil {
		t.Error("malformed document accepted; want decode error")
	}
	if _, err := experiment.ParseConfig(strings.NewReader("vertices: 0\n")); !errors.Is(err, experiment.ErrBadConfig) {
		t.Errorf("vertices=0 error = %v; want ErrBadConfig", err)
	}
}

// TestLogSpace pins the grid shape: geometric with ratio 1.1, ending at
// exactly 1.
func TestLogSpace(t *testing.T) {
	grid := experiment.LogSpace(100)
	if len(grid) != 100 {
		t.Fatalf("len = %d; want 100", len(grid))
	}
	if grid[99] != 1.0 {
		t.Errorf("last = %v; want exactly 1", grid[99])
	}
	for i := 1; i < len(grid); i++ {
		if ratio := grid[i] / grid[i-1]; math.Abs(ratio-1.1) > 1e-9 {
			t.Fatalf("ratio at %d = %v; want 1.1", i, ratio)
		}
	}

	if got := experiment.LogSpace(1); len(got) != 1 || got[0] != 1.0 {
		t.Errorf("LogSpace(1) = %v; want [1]", got)
	}
	if got := experiment.LogSpace(0); got != nil {
		t.Errorf("LogSpace(0) = %v; want nil", got)
	}
}
