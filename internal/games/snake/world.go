package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
)

// Settings are the resolved simulation parameters of one world.
type Settings struct {
	InitialInterval time.Duration
	MinInterval     time.Duration
	SpeedUpFactor   float64

	InitialLength int
	InitialFacing Direction
	CellSize      float64

	ProjectileSpeed float64
	FireEnabled     bool
	HostileShots    bool
	PiercingShots   bool

	Edges string
}

// SettingsFrom resolves a validated config into world settings.
func SettingsFrom(cfg config.Config) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	facing, err := ParseDirection(cfg.Snake.InitialFacing)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		InitialInterval: cfg.Clock.InitialInterval,
		MinInterval:     cfg.Clock.MinInterval,
		SpeedUpFactor:   cfg.Clock.SpeedUpFactor,
		InitialLength:   cfg.Snake.InitialLength,
		InitialFacing:   facing,
		CellSize:        cfg.Snake.CellSize,
		ProjectileSpeed: cfg.Projectile.Speed,
		FireEnabled:     true,
		HostileShots:    cfg.Projectile.Hostile,
		PiercingShots:   cfg.Projectile.Pierce,
		Edges:           cfg.Arena.Edges,
	}, nil
}

// DefaultSettings returns settings for the default config.
func DefaultSettings() Settings {
	s, err := SettingsFrom(config.Default())
	if err != nil {
		panic(fmt.Sprintf("snake: default config is invalid: %v", err))
	}
	return s
}

// WorldOption configures a World.
type WorldOption func(*World)

// WithLogger sets the logger used for gameplay events.
func WithLogger(l *log.Logger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// World is the simulation state: one actor, its trail, at most one food,
// the live projectiles, the score and the adaptive clock.
//
// Frame order: spawn food if missing, apply input, move and cull shots,
// frame-level shot checks, then at most one tick. Tick order: resolve
// facing, age trail, emit segment, move head, edge policy, food check,
// fatal checks, sweep expired segments.
type World struct {
	settings Settings
	bounds   BoundsProvider
	rng      *rand.Rand
	logger   *log.Logger

	clock   *Clock
	control Controller
	actor   Actor
	trail   Trail
	spawner *Spawner
	shots   *Projectiles

	score  int
	tick   uint64
	frame  uint64
	cause  DeathCause
	events []Event
}

// NewWorld creates a world with the actor at the origin cell.
func NewWorld(s Settings, bounds BoundsProvider, seed int64, opts ...WorldOption) *World {
	w := &World{
		settings: s,
		bounds:   bounds,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   log.New(io.Discard),
		clock:    NewClock(s.InitialInterval, s.MinInterval),
		actor:    NewActor(s.InitialLength, s.InitialFacing, core.Point{}),
		spawner:  NewSpawner(s.CellSize),
		shots:    NewProjectiles(s.ProjectileSpeed, s.CellSize),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Frame runs one frame of dt elapsed time with the given input.
// It returns the events of this frame. Once the world is halted or paused
// nothing changes and no events are produced. A degenerate play area is
// reported as ErrInvalidBounds and leaves the world untouched.
func (w *World) Frame(dt time.Duration, in core.InputFrame) ([]Event, error) {
	w.events = w.events[:0]
	if w.clock.Paused() {
		return nil, nil
	}

	b := w.bounds.PlayBounds()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	w.frame++

	spawned, err := w.spawner.EnsureSpawned(b, w.rng)
	if err != nil {
		return nil, err
	}
	if spawned {
		f, _ := w.spawner.Food()
		w.emit(Event{Kind: EventFoodSpawned, Cell: f.Cell})
	}

	w.shots.settle()
	w.applyInput(in)

	w.shots.Advance()
	w.shots.Cull(b)
	w.shotsVsFood()
	if w.settings.HostileShots && w.headHitByShot() {
		w.die(CauseProjectile)
		return w.events, nil
	}

	if w.clock.Advance(dt) {
		w.step(b)
	}
	return w.events, nil
}

// applyInput forwards direction presses to the controller in arrival order
// and fires one shot per fire press.
func (w *World) applyInput(in core.InputFrame) {
	for _, a := range in.Presses {
		if dir, ok := directionFor(a); ok {
			w.control.Request(dir)
			continue
		}
		if a == core.ActionFire && w.settings.FireEnabled {
			shot := w.shots.Fire(w.actor.Cell.Scale(w.settings.CellSize), w.actor.Facing)
			w.emit(Event{Kind: EventFired, Cell: w.actor.Cell})
			w.logger.Debug("fired", "tick", w.tick, "facing", w.actor.Facing, "x", shot.Pos.X, "y", shot.Pos.Y)
		}
	}
}

// step runs one tick.
func (w *World) step(b Bounds) {
	w.tick++

	facing := w.control.Resolve(w.actor.Facing)
	w.trail.Age()
	prev := w.actor.Advance(facing)
	w.trail.Emit(prev, w.actor.Length)

	if w.applyEdges(b) {
		w.trail.Sweep()
		return
	}

	head := w.headBody()
	if f, ok := w.spawner.Food(); ok && Overlaps(head, cellBody{cell: f.Cell, size: w.settings.CellSize}) {
		w.feed(EventFoodEaten, f.Cell)
	}

	switch {
	case w.headHitsTrail(head):
		w.die(CauseSelf)
	case w.settings.HostileShots && w.headHitByShot():
		w.die(CauseProjectile)
	}

	w.trail.Sweep()
}

// applyEdges enforces the arena edge policy and reports whether the actor died.
func (w *World) applyEdges(b Bounds) bool {
	size := w.settings.CellSize
	if b.ContainsCell(w.actor.Cell, size) {
		return false
	}
	switch w.settings.Edges {
	case config.EdgesWrap:
		w.actor.Cell = b.WrapCell(w.actor.Cell, size)
	case config.EdgesSolid:
		w.die(CauseWall)
		return true
	}
	return false
}

// feed applies one food-eaten event.
func (w *World) feed(kind EventKind, cell core.Point) {
	w.spawner.Eat()
	w.actor.Grow()
	w.trail.Extend(1)
	w.score++
	w.clock.SpeedUp(w.settings.SpeedUpFactor)
	w.emit(Event{Kind: kind, Cell: cell})
	w.logger.Debug("food eaten", "by", kind, "score", w.score, "length", w.actor.Length, "interval", w.clock.Interval())
}

// shotsVsFood lets the first shot touching the food eat it.
func (w *World) shotsVsFood() {
	f, ok := w.spawner.Food()
	if !ok {
		return
	}
	food := cellBody{cell: f.Cell, size: w.settings.CellSize}
	hit := false
	w.shots.removeIf(func(s Projectile) bool {
		if hit || !Overlaps(shotBody{pos: s.Pos, size: w.settings.CellSize}, food) {
			return false
		}
		hit = true
		return !w.settings.PiercingShots
	})
	if hit {
		w.feed(EventFoodShot, f.Cell)
	}
}

func (w *World) headBody() cellBody {
	return cellBody{cell: w.actor.Cell, size: w.settings.CellSize}
}

func (w *World) headHitsTrail(head Body) bool {
	hit := false
	w.trail.each(func(s Segment) bool {
		hit = Overlaps(head, cellBody{cell: s.Cell, size: w.settings.CellSize})
		return !hit
	})
	return hit
}

func (w *World) headHitByShot() bool {
	head := w.headBody()
	for _, s := range w.shots.live {
		if s.fresh {
			continue
		}
		if Overlaps(head, shotBody{pos: s.Pos, size: w.settings.CellSize}) {
			return true
		}
	}
	return false
}

// die halts the world permanently.
func (w *World) die(cause DeathCause) {
	w.cause = cause
	w.actor.Halt()
	w.clock.Halt()
	w.control.Reset()
	w.emit(Event{Kind: EventDeath, Cell: w.actor.Cell, Cause: cause})
	w.logger.Info("game over", "cause", cause, "score", w.score, "length", w.actor.Length, "ticks", w.tick)
}

func (w *World) emit(e Event) {
	e.Tick = w.tick
	w.events = append(w.events, e)
}

// SetPaused pauses or resumes the world. A halted world stays halted.
func (w *World) SetPaused(paused bool) {
	w.clock.Pause(paused)
}

// DiscardFoodOutside removes food that no longer fits in the current bounds,
// so it is placed again on the next frame. It reports whether food was removed.
func (w *World) DiscardFoodOutside() bool {
	f, ok := w.spawner.Food()
	if !ok || w.Halted() {
		return false
	}
	if w.bounds.PlayBounds().ContainsCell(f.Cell, w.settings.CellSize) {
		return false
	}
	w.spawner.Eat()
	return true
}

// Halted reports whether a fatal collision ended the run.
func (w *World) Halted() bool { return !w.actor.Active() }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Actor returns a copy of the actor.
func (w *World) Actor() Actor { return w.actor }

// Trail returns a copy of the body segments, oldest first.
func (w *World) Trail() []Segment { return w.trail.Segments() }

// Food returns the current food item and whether one is alive.
func (w *World) Food() (Food, bool) { return w.spawner.Food() }

// Projectiles returns a copy of the live projectiles.
func (w *World) Projectiles() []Projectile { return w.shots.All() }

// Interval returns the current tick interval.
func (w *World) Interval() time.Duration { return w.clock.Interval() }

// Cause returns why the run ended, or CauseNone.
func (w *World) Cause() DeathCause { return w.cause }

// Settings returns the world settings.
func (w *World) Settings() Settings { return w.settings }
