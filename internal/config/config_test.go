package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/numint/internal/steppers"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "springmass" {
		t.Errorf("expected model springmass, got %s", cfg.Model)
	}
	if cfg.Stepper != "rk4" {
		t.Errorf("expected stepper rk4, got %s", cfg.Stepper)
	}
	if cfg.Delta != DefaultDelta {
		t.Errorf("expected delta %g, got %g", DefaultDelta, cfg.Delta)
	}
	if cfg.Adaptive.Enabled {
		t.Error("adaptive should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no model", func(c *Config) { c.Model = "" }, "model"},
		{"no stepper", func(c *Config) { c.Stepper = "" }, "stepper"},
		{"zero delta", func(c *Config) { c.Delta = 0 }, "delta"},
		{"negative delta", func(c *Config) { c.Delta = -1 }, "delta"},
		{"inverted span", func(c *Config) { c.End = c.Start }, "end"},
		{"negative decimate", func(c *Config) { c.Decimate = -1 }, "decimate"},
		{"bad min delta", func(c *Config) {
			c.Adaptive.Enabled = true
			c.Adaptive.MinDelta = 0
		}, "min_delta"},
		{"bounds reversed", func(c *Config) {
			c.Adaptive.Enabled = true
			c.Adaptive.MaxDelta = c.Adaptive.MinDelta / 2
		}, "max_delta"},
		{"bad tolerance", func(c *Config) {
			c.Adaptive.Enabled = true
			c.Adaptive.Tolerance = -1
		}, "tolerance"},
		{"bad formula", func(c *Config) {
			c.Adaptive.Enabled = true
			c.Adaptive.ErrorFormula = "euclidean"
		}, "error formula"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate_AdaptiveOffSkipsAdaptiveChecks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Adaptive.MinDelta = 0
	cfg.Adaptive.ErrorFormula = "nonsense"

	if err := cfg.Validate(); err != nil {
		t.Errorf("adaptive section should be ignored while disabled: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = "torsion"
	cfg.End = 2.5
	cfg.InitState = []float64{0.1, 0.0}
	cfg.Adaptive.Enabled = true
	cfg.Adaptive.Tolerance = 1e-9

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.Model != "torsion" || got.End != 2.5 {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if len(got.InitState) != 2 || got.InitState[0] != 0.1 {
		t.Errorf("init state lost: %v", got.InitState)
	}
	if !got.Adaptive.Enabled || got.Adaptive.Tolerance != 1e-9 {
		t.Errorf("adaptive section lost: %+v", got.Adaptive)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	if err := os.WriteFile(path, []byte("model: robotarm\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Model != "robotarm" {
		t.Errorf("expected robotarm, got %s", cfg.Model)
	}
	if cfg.Stepper != "rk4" || cfg.Delta != DefaultDelta {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("springmass-adaptive")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Adaptive.Enabled {
		t.Error("preset should enable adaptive stepping")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for an unknown preset")
	}
}

func TestGetPreset_ReturnsCopy(t *testing.T) {
	a := GetPreset("torsion")
	a.End = 99

	b := GetPreset("torsion")
	if b.End == 99 {
		t.Error("preset mutations should not leak into the catalog")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Adaptive.ErrorFormula = "relative"
	cfg.Adaptive.FailOnTolerance = true

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}

	if opts.Formula != steppers.ErrorRelative {
		t.Errorf("expected relative formula, got %v", opts.Formula)
	}
	if !opts.FailOnTolerance {
		t.Error("strict flag lost")
	}
	if opts.MinDelta != cfg.Adaptive.MinDelta || opts.MaxDelta != cfg.Adaptive.MaxDelta {
		t.Error("bounds lost in translation")
	}
}

func TestOptions_BadFormula(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Adaptive.ErrorFormula = "manhattan"

	if _, err := cfg.Options(); err == nil {
		t.Error("expected an error for an unknown formula")
	}
}
