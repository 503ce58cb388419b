package snake

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/registry"
)

// Variant selects the rule set of a game.
type Variant string

const (
	VariantClassic Variant = "snek"         // no firing
	VariantArmed   Variant = "snek_armed"   // shots eat food
	VariantHostile Variant = "snek_hostile" // shots eat food and kill the snake
)

// hudHeight is the number of screen rows above the play area.
const hudHeight = 2

// cellCols is how many terminal columns one grid cell takes; terminal cells
// are roughly twice as tall as they are wide.
const cellCols = 2

// Package-level defaults used by registry factories, set once by the CLI.
var (
	defaultConfig = config.Default()
	defaultLogger = log.New(io.Discard)
)

// Configure sets the config and logger used by games created from the registry.
func Configure(cfg config.Config, logger *log.Logger) {
	defaultConfig = cfg
	if logger != nil {
		defaultLogger = logger
	}
}

// Game adapts a World to the platform: it derives bounds from the screen,
// handles pause/restart and draws the world into a screen buffer.
type Game struct {
	variant Variant
	cfg     config.Config
	logger  *log.Logger

	session  string
	world    *World
	rng      *rand.Rand
	screenW  int
	screenH  int
	tickRate int

	cellSize float64

	paused   bool
	tooSmall bool
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithConfig overrides the package default config.
func WithConfig(cfg config.Config) GameOption {
	return func(g *Game) { g.cfg = cfg }
}

// WithGameLogger overrides the package default logger.
func WithGameLogger(l *log.Logger) GameOption {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game of the given variant.
func New(v Variant, opts ...GameOption) *Game {
	g := &Game{
		variant: v,
		cfg:     defaultConfig,
		logger:  defaultLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	for _, v := range []Variant{VariantClassic, VariantArmed, VariantHostile} {
		registry.Register(string(v), func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.variant {
	case VariantArmed:
		return "Snek (Armed)"
	case VariantHostile:
		return "Snek (Hostile)"
	default:
		return "Snek"
	}
}

// settings resolves the world settings for this variant.
func (g *Game) settings() Settings {
	s, err := SettingsFrom(g.cfg)
	if err != nil {
		g.logger.Warn("invalid config, using defaults", "error", err)
		s = DefaultSettings()
	}
	switch g.variant {
	case VariantClassic:
		s.FireEnabled = false
		s.HostileShots = false
	case VariantHostile:
		s.HostileShots = true
	}
	return s
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.paused = false
	g.tooSmall = false
	g.session = uuid.NewString()

	s := g.settings()
	g.cellSize = s.CellSize
	logger := g.logger.With("session", g.session, "variant", g.variant)
	g.world = NewWorld(s, g, g.rng.Int63(), WithLogger(logger))
	logger.Info("session started", "seed", cfg.Seed, "screen", [2]int{g.screenW, g.screenH})
}

// Resize updates the screen size without restarting. Bounds follow on the
// next frame; food left outside the new area is placed again.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.world != nil && g.PlayBounds().Validate() == nil && g.world.DiscardFoodOutside() {
		g.logger.Debug("food outside resized area, respawning", "session", g.session)
	}
}

// PlayBounds implements BoundsProvider from the current screen size.
// The grid always has an even number of cells per axis so that it is
// symmetric around the origin cell.
func (g *Game) PlayBounds() Bounds {
	cols := g.screenW / cellCols
	rows := g.screenH - hudHeight
	cols -= cols % 2
	rows -= rows % 2
	size := g.cellSize
	if size <= 0 {
		size = g.cfg.Snake.CellSize
	}
	return Bounds{W: float64(max(cols, 0)) * size, H: float64(max(rows, 0)) * size}
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.world.Halted() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.world.Halted() {
		g.paused = !g.paused
		g.world.SetPaused(g.paused)
	}

	dt := time.Second / time.Duration(g.tickRate)
	_, err := g.world.Frame(dt, input)
	switch {
	case errors.Is(err, ErrInvalidBounds):
		if !g.tooSmall {
			g.logger.Warn("play area too small", "session", g.session, "error", err)
		}
		g.tooSmall = true
	case err != nil:
		g.logger.Error("frame failed", "session", g.session, "error", err)
	default:
		g.tooSmall = false
	}

	return core.StepResult{State: g.State()}
}

// World exposes the simulation for read access.
func (g *Game) World() *World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Halted(),
		Paused:   g.paused,
	}
}
