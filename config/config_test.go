package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/topdown/controls"
	"github.com/automoto/topdown/kinematics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	mc, err := cfg.Movement()
	if err != nil {
		t.Fatalf("Movement() error = %v", err)
	}
	if mc != kinematics.DefaultConfig() {
		t.Errorf("Movement() = %+v, want %+v", mc, kinematics.DefaultConfig())
	}
	if got := cfg.Controls["Run"]; len(got) != 1 || got[0] != "ShiftLeft" {
		t.Errorf("Run keys = %v, want [ShiftLeft]", got)
	}
	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("screen = %dx%d, want 800x600", cfg.Screen.Width, cfg.Screen.Height)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
player:
  run_max_velocity: 500
  policy: coast
controls:
  Left: [Left, A]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	mc, err := cfg.Movement()
	if err != nil {
		t.Fatalf("Movement() error = %v", err)
	}
	if mc.RunMaxVelocity != 500 || mc.Policy != kinematics.PolicyCoast {
		t.Errorf("Movement() = %+v, want run max 500 and coast", mc)
	}
	if mc.WalkMaxVelocity != 200 {
		t.Errorf("walk max = %v, want default 200", mc.WalkMaxVelocity)
	}
	if got := cfg.Controls["Left"]; len(got) != 2 {
		t.Errorf("Left keys = %v, want two keys", got)
	}
	if got := cfg.Controls["Right"]; len(got) != 1 || got[0] != "D" {
		t.Errorf("Right keys = %v, want default [D]", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		target error
	}{
		{"unknown control", "controls:\n  Sprint: [ShiftLeft]\n", controls.ErrUnknownControl},
		{"unknown policy", "player:\n  policy: drift\n", kinematics.ErrUnknownPolicy},
		{"run below walk", "player:\n  run_max_velocity: 50\n", kinematics.ErrInvalidConfig},
		{"empty binding", "controls:\n  Jump: []\n", ErrInvalid},
		{"bad screen", "screen:\n  width: 0\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("Load() error = %v, want %v", err, tt.target)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load() of a missing file succeeded")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Player.Policy = "coast"

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load(written) error = %v", err)
	}
	if back.Player.Policy != "coast" {
		t.Errorf("policy = %q, want coast", back.Player.Policy)
	}
}
