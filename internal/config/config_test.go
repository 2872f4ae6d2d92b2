package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/flight"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Integrator != DefaultIntegrator {
		t.Errorf("expected integrator %s, got %s", DefaultIntegrator, cfg.Integrator)
	}
	if cfg.Integration.TimeStep != 0.01 {
		t.Errorf("expected dt 0.01, got %v", cfg.Integration.TimeStep)
	}
	if cfg.Integration.MaxTime != 100 {
		t.Errorf("expected max time 100, got %v", cfg.Integration.MaxTime)
	}
	if _, err := cfg.Flight(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")

	cfg := DefaultConfig()
	cfg.Launch.LaunchAngle = 42
	cfg.Integration.TimeStep = 0.002
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	doc := "launch:\n  launch_angle_deg: 45\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Launch.LaunchAngle != 45 {
		t.Errorf("angle = %v, want 45", cfg.Launch.LaunchAngle)
	}
	if cfg.Launch.Mass != DefaultMass || cfg.Integration.MaxTime != flight.DefaultMaxTime {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadIntoKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("launch:\n  mass_kg: 0.02\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("vacuum")
	cfg, err := LoadInto(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Launch.Mass != 0.02 {
		t.Errorf("mass = %v, want 0.02 from file", cfg.Launch.Mass)
	}
	if cfg.Launch.DragCoefficient != 0 || cfg.Launch.WingArea != 0 {
		t.Errorf("preset drag lost: drag=%v area=%v", cfg.Launch.DragCoefficient, cfg.Launch.WingArea)
	}
	if base.Launch.Mass == 0.02 {
		t.Error("LoadInto modified its base")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("launch: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestFlightRejectsZeroTimeStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Integration.TimeStep = 0
	if _, err := cfg.Flight(); !errors.Is(err, dynamo.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("listed %d presets, have %d", len(names), len(Presets))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}

	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if _, err := cfg.Flight(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestGetPreset_Copy(t *testing.T) {
	cfg := GetPreset("vacuum")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	cfg.Launch.Mass = 99
	if Presets["vacuum"].Launch.Mass == 99 {
		t.Error("GetPreset must return a copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestBounds(t *testing.T) {
	for _, b := range Bounds {
		if b.Min >= b.Max || b.Step <= 0 {
			t.Errorf("bad bound %+v", b)
		}
		if b.Clamp(b.Min-1) != b.Min || b.Clamp(b.Max+1) != b.Max {
			t.Errorf("clamp failed for %s", b.Param)
		}

		base, err := DefaultConfig().Flight()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := base.WithParam(b.Param, b.Min); err != nil {
			t.Errorf("bound %s min not settable: %v", b.Param, err)
		}
	}
}

func TestPresetsWithinBounds(t *testing.T) {
	for _, name := range ListPresets() {
		fc, err := GetPreset(name).Flight()
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
		params := fc.Params()
		for _, b := range Bounds {
			if v := params[b.Param]; v < b.Min || v > b.Max {
				t.Errorf("preset %s: %s = %v outside [%v, %v]", name, b.Param, v, b.Min, b.Max)
			}
		}
	}
}
