package snake

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/registry"
)

func newTestGame(v Variant) *Game {
	g := New(v, WithConfig(config.Default()))
	g.Reset(core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range []Variant{VariantClassic, VariantArmed, VariantHostile} {
		if !registry.Exists(string(v)) {
			t.Errorf("variant %q not registered", v)
		}
		g, err := registry.Create(string(v))
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", v, err)
		}
		if g.ID() != string(v) || g.Title() == "" {
			t.Errorf("Create(%q) returned %q / %q", v, g.ID(), g.Title())
		}
	}
}

func TestVariantSettings(t *testing.T) {
	tests := []struct {
		v             Variant
		fire, hostile bool
	}{
		{VariantClassic, false, false},
		{VariantArmed, true, false},
		{VariantHostile, true, true},
	}
	for _, tc := range tests {
		s := newTestGame(tc.v).World().Settings()
		if s.FireEnabled != tc.fire || s.HostileShots != tc.hostile {
			t.Errorf("%s: fire=%v hostile=%v", tc.v, s.FireEnabled, s.HostileShots)
		}
	}
}

func TestGameFire(t *testing.T) {
	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)

	classic := newTestGame(VariantClassic)
	classic.Step(fire)
	if n := len(classic.World().Projectiles()); n != 0 {
		t.Errorf("classic variant fired %d shots", n)
	}

	armed := newTestGame(VariantArmed)
	armed.Step(fire)
	if n := len(armed.World().Projectiles()); n != 1 {
		t.Errorf("armed variant has %d shots, expected 1", n)
	}
}

func TestPlayBounds(t *testing.T) {
	g := newTestGame(VariantClassic)
	b := g.PlayBounds()
	// 80 columns / 2 per cell, 24 rows minus the HUD, 25 units per cell.
	if b.W != 1000 || b.H != 550 {
		t.Errorf("PlayBounds() = %+v, expected 1000x550", b)
	}

	g.Resize(81, 25)
	if b := g.PlayBounds(); b.W != 1000 || b.H != 550 {
		t.Errorf("odd sizes should round down to even cells, got %+v", b)
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(VariantArmed)
	g2 := newTestGame(VariantArmed)

	input := core.NewInputFrame()
	for i := range 600 {
		input.Clear()
		switch i {
		case 40:
			input.Set(core.ActionDown)
		case 90:
			input.Set(core.ActionFire)
		case 200:
			input.Set(core.ActionRight)
		case 320:
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Session == s2.Session {
		t.Error("sessions should get distinct ids")
	}
	s1.Session, s2.Session = "", ""
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
	if s1.Tick == 0 {
		t.Error("expected ticks after 600 frames")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := New(VariantClassic, WithConfig(config.Default()))
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 3, ScreenH: 2})

	g.Step(core.NewInputFrame())
	if s := g.Snapshot(); s.State != StatePausedSmall || s.Frame != 0 {
		t.Fatalf("state = %s frame = %d, expected paused_small_window and no frames", s.State, s.Frame)
	}

	screen := core.NewScreen(3, 2)
	g.Render(screen)

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	if s := g.Snapshot(); s.State != StatePlaying || s.Frame != 1 {
		t.Errorf("state = %s frame = %d after resize", s.State, s.Frame)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(VariantClassic)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("expected paused state")
	}
	frozen := g.Snapshot()
	for range 100 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Tick != frozen.Tick {
		t.Error("paused game should not tick")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(VariantClassic)
	session := g.Snapshot().Session

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.Snapshot().Session != session {
		t.Fatal("restart should be ignored while playing")
	}

	g.World().die(CauseSelf)
	if !g.State().GameOver || g.Snapshot().State != StateGameOver {
		t.Fatal("expected game over")
	}

	g.Step(restart)
	s := g.Snapshot()
	if g.State().GameOver || s.Session == session || s.Score != 0 || s.Tick != 0 {
		t.Errorf("restart should start a fresh session, got %+v", s)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(VariantClassic)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	// Origin cell: 20 cells from the left, 10 rows below the top of the grid.
	if screen.Get(40, 12) != '█' || screen.Get(41, 12) != '█' {
		t.Errorf("head not drawn at the origin cell:\n%s", screen.String())
	}

	g.World().die(CauseWall)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("expected game over overlay")
	}
}
