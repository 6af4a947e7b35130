package config

import "sort"

// Presets mirror the benchmark scenarios the engine ships with. Each is a
// complete config; unset fields keep their zero values.
var Presets = map[string]*Config{
	"springmass": {
		Model: "springmass", Stepper: "rk4",
		Start: 0.0, End: 10.0, Delta: 1e-3,
		Output: DefaultOutputDir,
	},
	"springmass-adaptive": {
		Model: "springmass", Stepper: "rk4",
		Start: 0.0, End: 10.0, Delta: 1e-3,
		Adaptive: AdaptiveConfig{
			Enabled: true, MinDelta: 1e-12, MaxDelta: 1e-1,
			Tolerance: 1e-9, Iterations: 3, ErrorFormula: "mixed",
		},
		Output: DefaultOutputDir,
	},
	"torsion": {
		Model: "torsion", Stepper: "rk4",
		Start: 0.0, End: 2.0, Delta: 1e-3,
		Adaptive: AdaptiveConfig{
			Enabled: true, MinDelta: 1e-3, MaxDelta: 5e-2,
			Tolerance: 1e-6, Iterations: 1, ErrorFormula: "mixed",
		},
		Output: DefaultOutputDir,
	},
	"torsion-fine": {
		Model: "torsion", Stepper: "rk4",
		Start: 0.0, End: 2.0, Delta: 5e-4,
		Adaptive: AdaptiveConfig{
			Enabled: true, MinDelta: 1e-3, MaxDelta: 5e-2,
			Tolerance: 1e-6, Iterations: 1, ErrorFormula: "mixed",
		},
		Output: DefaultOutputDir,
	},
	"robotarm": {
		Model: "robotarm", Stepper: "rk4",
		Start: 0.0, End: 20.0, Delta: 1e-3,
		Adaptive: AdaptiveConfig{
			Enabled: true, MinDelta: 1e-12, MaxDelta: 1e-1,
			Tolerance: 1e-9, Iterations: 3, ErrorFormula: "mixed",
		},
		Output: DefaultOutputDir,
	},
	"doublependulum": {
		Model: "doublependulum", Stepper: "rk4",
		Start: 0.0, End: 10.0, Delta: 1e-4,
		Adaptive: AdaptiveConfig{
			Enabled: true, MinDelta: 1e-12, MaxDelta: 1e-2,
			Tolerance: 1e-9, Iterations: 3, ErrorFormula: "mixed",
		},
		Output: DefaultOutputDir,
	},
	// One full period of the figure-eight choreography.
	"threebody": {
		Model: "threebody", Stepper: "rk4",
		Start: 0.0, End: 6.32591398, Delta: 1e-3,
		Adaptive: AdaptiveConfig{
			Enabled: true, MinDelta: 1e-12, MaxDelta: 1e-2,
			Tolerance: 1e-10, Iterations: 3, ErrorFormula: "mixed",
		},
		Output: DefaultOutputDir,
	},
}

// GetPreset returns a copy, so callers can layer overrides without
// touching the catalog.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	if cfg.InitState != nil {
		cp.InitState = append([]float64(nil), cfg.InitState...)
	}
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
