package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/numint/internal/steppers"
)

const (
	DefaultDelta      = 1e-3
	DefaultEnd        = 10.0
	DefaultMinDelta   = 1e-8
	DefaultMaxDelta   = 1e-1
	DefaultTolerance  = 1e-6
	DefaultIterations = 3
	DefaultOutputDir  = "runs"
)

type Config struct {
	Model     string    `yaml:"model"`
	Stepper   string    `yaml:"stepper"`
	Start     float64   `yaml:"start"`
	End       float64   `yaml:"end"`
	Delta     float64   `yaml:"delta"`
	InitState []float64 `yaml:"init_state,omitempty"`

	Adaptive AdaptiveConfig `yaml:"adaptive"`

	// Decimate keeps every nth recorded sample; 0 or 1 keeps them all.
	Decimate int `yaml:"decimate"`

	Output string `yaml:"output"`
}

type AdaptiveConfig struct {
	Enabled         bool    `yaml:"enabled"`
	MinDelta        float64 `yaml:"min_delta"`
	MaxDelta        float64 `yaml:"max_delta"`
	Tolerance       float64 `yaml:"tolerance"`
	Iterations      int     `yaml:"iterations"`
	ErrorFormula    string  `yaml:"error_formula"`
	FailOnTolerance bool    `yaml:"fail_on_tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:   "springmass",
		Stepper: "rk4",
		Start:   0.0,
		End:     DefaultEnd,
		Delta:   DefaultDelta,
		Adaptive: AdaptiveConfig{
			MinDelta:     DefaultMinDelta,
			MaxDelta:     DefaultMaxDelta,
			Tolerance:    DefaultTolerance,
			Iterations:   DefaultIterations,
			ErrorFormula: "mixed",
		},
		Output: DefaultOutputDir,
	}
}

// Load reads path over the defaults, so partial files stay valid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must be set")
	}
	if c.Stepper == "" {
		return fmt.Errorf("stepper must be set")
	}
	if c.Delta <= 0 {
		return fmt.Errorf("delta must be positive, got %g", c.Delta)
	}
	if c.End <= c.Start {
		return fmt.Errorf("end %g must be greater than start %g", c.End, c.Start)
	}
	if c.Decimate < 0 {
		return fmt.Errorf("decimate must be non-negative, got %d", c.Decimate)
	}
	if c.Adaptive.Enabled {
		if c.Adaptive.MinDelta <= 0 {
			return fmt.Errorf("min_delta must be positive, got %g", c.Adaptive.MinDelta)
		}
		if c.Adaptive.MaxDelta < c.Adaptive.MinDelta {
			return fmt.Errorf("max_delta %g below min_delta %g", c.Adaptive.MaxDelta, c.Adaptive.MinDelta)
		}
		if c.Adaptive.Tolerance <= 0 {
			return fmt.Errorf("tolerance must be positive, got %g", c.Adaptive.Tolerance)
		}
		if c.Adaptive.Iterations < 0 {
			return fmt.Errorf("iterations must be non-negative, got %d", c.Adaptive.Iterations)
		}
		if _, err := steppers.ParseErrorFormula(c.Adaptive.ErrorFormula); err != nil {
			return err
		}
	}
	return nil
}

// Options maps the adaptive section onto controller options.
func (c *Config) Options() (steppers.Options, error) {
	formula, err := steppers.ParseErrorFormula(c.Adaptive.ErrorFormula)
	if err != nil {
		return steppers.Options{}, err
	}
	return steppers.Options{
		MinDelta:        c.Adaptive.MinDelta,
		MaxDelta:        c.Adaptive.MaxDelta,
		Tolerance:       c.Adaptive.Tolerance,
		Iterations:      c.Adaptive.Iterations,
		Formula:         formula,
		FailOnTolerance: c.Adaptive.FailOnTolerance,
	}, nil
}
