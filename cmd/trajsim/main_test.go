package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/config"
)

func launchCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "test"}
	addLaunchFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(launchCommand(t))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestResolveConfigFlagsOverridePreset(t *testing.T) {
	cfg, err := resolveConfig(launchCommand(t, "--preset", "vacuum", "--angle", "45"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Launch.LaunchAngle != 45 {
		t.Errorf("angle = %v, want flag value 45", cfg.Launch.LaunchAngle)
	}
	if cfg.Launch.DragCoefficient != 0 {
		t.Errorf("drag = %v, want preset value 0", cfg.Launch.DragCoefficient)
	}
}

func TestResolveConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.yaml")
	if err := os.WriteFile(path, []byte("launch:\n  mass_kg: 0.02\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(launchCommand(t, "--config", path, "--speed", "15"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Launch.Mass != 0.02 {
		t.Errorf("mass = %v, want 0.02 from file", cfg.Launch.Mass)
	}
	if cfg.Launch.InitialSpeed != 15 {
		t.Errorf("speed = %v, want 15 from flag", cfg.Launch.InitialSpeed)
	}
}

func TestResolveConfigFileOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.yaml")
	if err := os.WriteFile(path, []byte("launch:\n  mass_kg: 0.02\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(launchCommand(t, "--preset", "vacuum", "--config", path))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Launch.Mass != 0.02 {
		t.Errorf("mass = %v, want 0.02 from file", cfg.Launch.Mass)
	}
	if cfg.Launch.DragCoefficient != 0 || cfg.Launch.WingArea != 0 {
		t.Errorf("vacuum preset values lost: drag=%v area=%v", cfg.Launch.DragCoefficient, cfg.Launch.WingArea)
	}
}

func TestResolveConfigUnknownPreset(t *testing.T) {
	if _, err := resolveConfig(launchCommand(t, "--preset", "nope")); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info", "json")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden")
	logger.Info("shown", "steps", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record should be filtered at info level")
	}
	if !strings.Contains(out, `"steps":3`) {
		t.Errorf("json output missing attr: %s", out)
	}

	if _, err := newLogger(&buf, "loud", "text"); err == nil {
		t.Error("expected error for bad level")
	}
	if _, err := newLogger(&buf, "info", "xml"); err == nil {
		t.Error("expected error for bad format")
	}
}
