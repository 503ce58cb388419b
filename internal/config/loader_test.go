package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snek.yaml")
	data := "clock:\n  initial_interval: 250ms\nprojectile:\n  hostile: true\narena:\n  edges: solid\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Clock.InitialInterval != 250*time.Millisecond {
		t.Errorf("InitialInterval = %s, expected 250ms", cfg.Clock.InitialInterval)
	}
	if !cfg.Projectile.Hostile {
		t.Error("Hostile should be true")
	}
	if cfg.Arena.Edges != EdgesSolid {
		t.Errorf("Edges = %q, expected solid", cfg.Arena.Edges)
	}
	// Untouched keys keep their defaults
	if cfg.Snake.InitialLength != 3 || cfg.Projectile.Speed != 15 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  initial_length: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "initial_length") {
		t.Errorf("error should name the bad key, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Clock.InitialInterval = 0 }},
		{"floor above initial", func(c *Config) { c.Clock.MinInterval = time.Second }},
		{"factor of one", func(c *Config) { c.Clock.SpeedUpFactor = 1 }},
		{"negative factor", func(c *Config) { c.Clock.SpeedUpFactor = -0.5 }},
		{"bad facing", func(c *Config) { c.Snake.InitialFacing = "north" }},
		{"zero cell", func(c *Config) { c.Snake.CellSize = 0 }},
		{"zero speed", func(c *Config) { c.Projectile.Speed = 0 }},
		{"bad edges", func(c *Config) { c.Arena.Edges = "bouncy" }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Arena.Edges = EdgesOpen
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "initial_interval: 500ms") {
		t.Errorf("durations should be encoded as strings, got:\n%s", data)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", back, cfg)
	}
}

func TestPresets(t *testing.T) {
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}

	easy, hard := Default(), Default()
	ApplyPreset(&easy, DifficultyEasy)
	ApplyPreset(&hard, DifficultyHard)

	if easy.Clock.InitialInterval <= hard.Clock.InitialInterval {
		t.Error("easy should start slower than hard")
	}
	if easy.Clock.SpeedUpFactor <= hard.Clock.SpeedUpFactor {
		t.Error("easy should speed up more gently than hard")
	}
	for _, cfg := range []Config{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}

	unchanged := Default()
	ApplyPreset(&unchanged, "")
	if unchanged != Default() {
		t.Error("empty preset should not change the config")
	}
}
