package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means "keep the config as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the clock settings based on a difficulty preset.
// Easy starts slower and speeds up gently; hard starts fast and ramps quickly.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Clock.InitialInterval = 650 * time.Millisecond
		cfg.Clock.SpeedUpFactor = 0.985
		cfg.Clock.MinInterval = 90 * time.Millisecond
	case DifficultyNormal:
		cfg.Clock.InitialInterval = 500 * time.Millisecond
		cfg.Clock.SpeedUpFactor = 0.97
		cfg.Clock.MinInterval = 60 * time.Millisecond
	case DifficultyHard:
		cfg.Clock.InitialInterval = 300 * time.Millisecond
		cfg.Clock.SpeedUpFactor = 0.95
		cfg.Clock.MinInterval = 40 * time.Millisecond
	}
}
