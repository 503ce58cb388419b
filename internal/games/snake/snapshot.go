package snake

import (
	"time"

	"github.com/vovakirdan/snek/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete observable state for determinism testing
// and for the sim command output.
type Snapshot struct {
	Session     string        `yaml:"session,omitempty"`
	Variant     string        `yaml:"variant,omitempty"`
	State       GameStateType `yaml:"state,omitempty"`
	Tick        uint64        `yaml:"tick"`
	Frame       uint64        `yaml:"frame"`
	Score       int           `yaml:"score"`
	Length      int           `yaml:"length"`
	Head        core.Point    `yaml:"head"`
	Facing      Direction     `yaml:"facing"`
	Segments    []Segment     `yaml:"segments"`
	FoodAlive   bool          `yaml:"food_alive"`
	Food        core.Point    `yaml:"food"`
	Projectiles []Projectile  `yaml:"projectiles"`
	Interval    time.Duration `yaml:"interval"`
	Halted      bool          `yaml:"halted"`
	Cause       DeathCause    `yaml:"cause"`
}

// Snapshot returns the world state.
func (w *World) Snapshot() Snapshot {
	f, alive := w.spawner.Food()
	return Snapshot{
		Tick:        w.tick,
		Frame:       w.frame,
		Score:       w.score,
		Length:      w.actor.Length,
		Head:        w.actor.Cell,
		Facing:      w.actor.Facing,
		Segments:    w.trail.Segments(),
		FoodAlive:   alive,
		Food:        f.Cell,
		Projectiles: w.shots.All(),
		Interval:    w.clock.Interval(),
		Halted:      w.Halted(),
		Cause:       w.cause,
	}
}

// Snapshot returns the current game snapshot, including session metadata.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{Session: g.session, Variant: string(g.variant), State: StatePlaying}
	}
	s := g.world.Snapshot()
	s.Session = g.session
	s.Variant = string(g.variant)

	s.State = StatePlaying
	switch {
	case g.tooSmall:
		s.State = StatePausedSmall
	case s.Halted:
		s.State = StateGameOver
	case g.paused:
		s.State = StatePaused
	}
	return s
}

// MarshalYAML encodes a direction by name.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// MarshalYAML encodes a death cause by name.
func (c DeathCause) MarshalYAML() (any, error) {
	return c.String(), nil
}
