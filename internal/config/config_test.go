package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadThresholds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero thrust accel", func(c *Config) { c.Physics.ThrustAccel = 0 }},
		{"negative drain", func(c *Config) { c.Physics.ThrustDrain = -1 }},
		{"zero pump rate", func(c *Config) { c.Physics.PumpRate = 0 }},
		{"non-positive mass_min", func(c *Config) { c.Physics.MassMin = 0 }},
		{"max below min", func(c *Config) { c.Physics.MassMax = 2 }},
		{"start mass below min", func(c *Config) { c.Physics.StartMass = 1 }},
		{"zero mine size", func(c *Config) { c.Objects.MineSize = 0 }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate should have failed", tt.name)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tune.yaml")
	body := `
physics:
  thrust_drain: 1.5
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.ThrustDrain != 1.5 {
		t.Errorf("ThrustDrain = %g, expected override 1.5", cfg.Physics.ThrustDrain)
	}
	// Unset fields keep defaults.
	if cfg.Physics.StartMass != Default().Physics.StartMass {
		t.Errorf("StartMass = %g, expected default", cfg.Physics.StartMass)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for an explicit missing path")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: {mass_min: -4}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load should surface validation errors for an explicit path")
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Physics.ThrustDrain >= base.Physics.ThrustDrain {
		t.Error("easy preset should drain slower")
	}
	if easy.Physics.PumpRate <= base.Physics.PumpRate {
		t.Error("easy preset should pump faster")
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Physics.ThrustDrain <= base.Physics.ThrustDrain {
		t.Error("hard preset should drain faster")
	}

	if hard.Physics.MassMin != base.Physics.MassMin || hard.Physics.MassMax != base.Physics.MassMax {
		t.Error("presets must not move the mass bounds")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("impossible"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
	if _, ok := ParsePreset(""); ok {
		t.Error("ParsePreset should reject the empty string")
	}
}
