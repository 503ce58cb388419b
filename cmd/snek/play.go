package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/platform/tui"
	"github.com/vovakirdan/snek/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or pick one from a menu.

Controls:
  Arrows/WASD  - Turn (no instant reversal)
  Space        - Fire (armed variants)
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  snek play
  snek play snek_hostile
  snek play snek --difficulty easy --log-file snek.log`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE:        runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
	} else {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if result.Quit {
			return nil
		}
		gameID = result.GameID
		cfg = result.Config
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'snek list' to see available variants)", err)
	}

	logger.Info("starting", "game", gameID, "fps", cfg.TickRate, "screen", [2]int{cfg.ScreenW, cfg.ScreenH})
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("play %s: %w", gameID, err)
	}
	return nil
}
