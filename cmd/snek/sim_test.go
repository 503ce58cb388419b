package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/games/snake"
)

func TestParseScript(t *testing.T) {
	script, err := parseScript("10:up, 10:fire,40:Left")
	if err != nil {
		t.Fatalf("parseScript() failed: %v", err)
	}
	if got := script[10]; len(got) != 2 || got[0] != core.ActionUp || got[1] != core.ActionFire {
		t.Errorf("frame 10 = %v, expected [Up Fire]", got)
	}
	if got := script[40]; len(got) != 1 || got[0] != core.ActionLeft {
		t.Errorf("frame 40 = %v, expected [Left]", got)
	}

	empty, err := parseScript("")
	if err != nil || len(empty) != 0 {
		t.Errorf("empty script = %v, %v", empty, err)
	}

	for _, bad := range []string{"up", "x:up", "0:up", "5:jump"} {
		if _, err := parseScript(bad); err == nil {
			t.Errorf("parseScript(%q) should fail", bad)
		}
	}
}

func simOpts(script string) simOptions {
	s, _ := parseScript(script)
	return simOptions{
		Variant: string(snake.VariantClassic),
		Frames:  200,
		Script:  s,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
	}
}

func TestSimulateDeterministic(t *testing.T) {
	decode := func() snake.Snapshot {
		var buf bytes.Buffer
		if err := simulate(&buf, simOpts("20:up,80:left")); err != nil {
			t.Fatalf("simulate() failed: %v", err)
		}
		var out struct {
			Tick   uint64 `yaml:"tick"`
			Head   core.Point
			Facing string `yaml:"facing"`
		}
		if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
			t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
		}
		return snake.Snapshot{Tick: out.Tick, Head: out.Head}
	}

	a, b := decode(), decode()
	if a.Tick == 0 {
		t.Error("expected ticks in 200 frames")
	}
	if a.Tick != b.Tick || a.Head != b.Head {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}

func TestSimulateEveryAndRender(t *testing.T) {
	opts := simOpts("")
	opts.Every = 50
	opts.Render = true

	var buf bytes.Buffer
	if err := simulate(&buf, opts); err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	out := buf.String()
	if n := strings.Count(out, "frame: "); n != 4 {
		t.Errorf("expected 4 snapshots, got %d", n)
	}
	if !strings.Contains(out, "Score: ") {
		t.Error("expected the rendered HUD")
	}
}

func TestSimulateUnknownVariant(t *testing.T) {
	opts := simOpts("")
	opts.Variant = "nope"
	if err := simulate(&bytes.Buffer{}, opts); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestLoadConfigPreset(t *testing.T) {
	cfg, err := loadConfig("", "hard")
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Clock.SpeedUpFactor != 0.95 {
		t.Errorf("hard preset not applied: %+v", cfg.Clock)
	}
	if _, err := loadConfig("", "insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
