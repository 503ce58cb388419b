// Package config provides YAML-based configuration loading and difficulty
// presets for the snake simulation.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Config contains all tunables of the simulation.
type Config struct {
	Clock      ClockConfig      `yaml:"clock"`
	Snake      SnakeConfig      `yaml:"snake"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Arena      ArenaConfig      `yaml:"arena"`
}

// ClockConfig defines the adaptive tick timer.
type ClockConfig struct {
	InitialInterval time.Duration `yaml:"initial_interval"`
	SpeedUpFactor   float64       `yaml:"speed_up_factor"` // interval multiplier per food, < 1
	MinInterval     time.Duration `yaml:"min_interval"`    // floor for the interval
}

// SnakeConfig defines the actor at spawn time.
type SnakeConfig struct {
	InitialLength int     `yaml:"initial_length"`
	InitialFacing string  `yaml:"initial_facing"` // up, down, left, right
	CellSize      float64 `yaml:"cell_size"`      // world units per grid cell
}

// ProjectileConfig defines the ranged attack.
type ProjectileConfig struct {
	Speed   float64 `yaml:"speed"`   // world units per frame
	Hostile bool    `yaml:"hostile"` // projectiles kill the snake on contact
	Pierce  bool    `yaml:"pierce"`  // projectiles survive eating food
}

// Edge policies for the play area border.
const (
	EdgesOpen  = "open"
	EdgesWrap  = "wrap"
	EdgesSolid = "solid"
)

// ArenaConfig defines how the play area border behaves.
type ArenaConfig struct {
	Edges string `yaml:"edges"`
}

// Validate checks that the configuration describes a playable simulation.
func (c Config) Validate() error {
	var errs []error

	if c.Clock.InitialInterval <= 0 {
		errs = append(errs, fmt.Errorf("clock.initial_interval must be positive, got %s", c.Clock.InitialInterval))
	}
	if c.Clock.MinInterval <= 0 {
		errs = append(errs, fmt.Errorf("clock.min_interval must be positive, got %s", c.Clock.MinInterval))
	}
	if c.Clock.MinInterval > c.Clock.InitialInterval {
		errs = append(errs, fmt.Errorf("clock.min_interval %s exceeds initial_interval %s",
			c.Clock.MinInterval, c.Clock.InitialInterval))
	}
	if f := c.Clock.SpeedUpFactor; !(f > 0 && f < 1) {
		errs = append(errs, fmt.Errorf("clock.speed_up_factor must be in (0, 1), got %v", f))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be >= 1, got %d", c.Snake.InitialLength))
	}
	switch strings.ToLower(c.Snake.InitialFacing) {
	case "up", "down", "left", "right":
	default:
		errs = append(errs, fmt.Errorf("snake.initial_facing %q is not one of up, down, left, right", c.Snake.InitialFacing))
	}
	if s := c.Snake.CellSize; !(s > 0) || math.IsInf(s, 0) {
		errs = append(errs, fmt.Errorf("snake.cell_size must be positive, got %v", s))
	}
	if s := c.Projectile.Speed; !(s > 0) || math.IsInf(s, 0) {
		errs = append(errs, fmt.Errorf("projectile.speed must be positive, got %v", s))
	}
	switch c.Arena.Edges {
	case EdgesOpen, EdgesWrap, EdgesSolid:
	default:
		errs = append(errs, fmt.Errorf("arena.edges %q is not one of %s, %s, %s",
			c.Arena.Edges, EdgesOpen, EdgesWrap, EdgesSolid))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
