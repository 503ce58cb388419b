package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snek.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/snek.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Clock: ClockConfig{
			InitialInterval: 500 * time.Millisecond,
			SpeedUpFactor:   0.97,
			MinInterval:     60 * time.Millisecond,
		},
		Snake: SnakeConfig{
			InitialLength: 3,
			InitialFacing: "left",
			CellSize:      25,
		},
		Projectile: ProjectileConfig{
			Speed: 15,
		},
		Arena: ArenaConfig{
			Edges: EdgesWrap,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
