package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/anneal/internal/anneal"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Objective != "rosenbrock" {
		t.Errorf("expected objective rosenbrock, got %s", cfg.Objective)
	}
	if cfg.Bounds.A != -2 || cfg.Bounds.B != 2 {
		t.Errorf("expected bounds [-2, 2], got [%v, %v]", cfg.Bounds.A, cfg.Bounds.B)
	}
	if cfg.Kmax != 1000 {
		t.Errorf("expected kmax 1000, got %d", cfg.Kmax)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"negative kmax", func(c *Config) { c.Kmax = -1 }, nil},
		{"missing objective", func(c *Config) { c.Objective = "" }, nil},
		{"zero plot width", func(c *Config) { c.Plot.Width = 0 }, nil},
		{"negative plot height", func(c *Config) { c.Plot.Height = -3 }, nil},
		{"NaN bound", func(c *Config) { c.Bounds.A = math.NaN() }, anneal.ErrInvalidBounds},
		{"infinite bound", func(c *Config) { c.Bounds.B = math.Inf(-1) }, anneal.ErrInvalidBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Kmax = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("kmax 0 should be valid, got %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anneal.yaml")
	data := []byte("objective: himmelblau\nkmax: 250\nbounds:\n  a: 3\n  b: -3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Objective != "himmelblau" || cfg.Kmax != 250 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Bounds.A != 3 || cfg.Bounds.B != -3 {
		t.Errorf("bounds not loaded: %+v", cfg.Bounds)
	}
	if cfg.Plot.Width != DefaultPlotWidth || cfg.Plot.Height != DefaultPlotHeight {
		t.Errorf("plot defaults lost: %+v", cfg.Plot)
	}

	ac := cfg.AnnealConfig()
	if ac.A != 3 || ac.B != -3 || ac.Kmax != 250 {
		t.Errorf("unexpected anneal config: %+v", ac)
	}
}

func TestLoadIntoKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte("seed: 7\nplot:\n  height: 20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("rosenbrock", "quick")
	cfg, err := LoadInto(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Seed != 7 || cfg.Plot.Height != 20 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Kmax != 100 || cfg.Plot.Width != 60 {
		t.Errorf("base values lost: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("kmax: -10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anneal.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Objective = "booth"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("rosenbrock", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Kmax != 1000 || cfg.Bounds.A != -2 || cfg.Bounds.B != 2 {
		t.Errorf("unexpected classic preset: %+v", cfg)
	}

	cfg.Kmax = 1
	if Presets["rosenbrock"]["classic"].Kmax != 1000 {
		t.Error("GetPreset returned shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("rosenbrock", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "classic"); cfg != nil {
		t.Error("expected nil for nonexistent objective")
	}
}

func TestPresetsValid(t *testing.T) {
	for objective, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Objective != objective {
				t.Errorf("%s/%s: objective %s", objective, name, cfg.Objective)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", objective, name, err)
			}
		}
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("rosenbrock")
	if len(presets) != 3 || presets[0] != "classic" {
		t.Errorf("unexpected presets: %v", presets)
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent objective")
	}
}
