// snek is a tick-driven snake game for the terminal.
//
// Usage:
//
//	snek list              - List available variants
//	snek play [variant]    - Play a variant (menu when omitted)
//	snek sim [variant]     - Run a headless simulation and print snapshots
//	snek config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Frame rate (default: 60)
//	--seed <value>         - RNG seed for reproducible runs
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/games/snake"
)

// tuiAnnotation marks commands that own the terminal; their logs never go
// to stderr.
const tuiAnnotation = "tui"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	logger  = log.New(io.Discard)
	logFile *os.File
	appCfg  = config.Default()
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "Snek - a tick-driven snake game in your terminal",
	Long: `Snek moves one cell per tick. Every food eaten makes the snake longer
and the clock faster, until the head runs into something it should not.

Available commands:
  list     - Show all variants
  play     - Play a variant
  sim      - Headless simulation with YAML snapshots
  config   - Print the effective configuration

Examples:
  snek play
  snek play snek_armed --difficulty hard
  snek sim snek --frames 600 --script 30:up,60:left
  snek config --config ./my-snek.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and the effective config shared by all commands.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	var out io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		out = f
	case cmd.Annotations[tuiAnnotation] == "":
		out = cmd.ErrOrStderr()
	}

	l, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}
	logger = l

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	appCfg = cfg
	snake.Configure(appCfg, logger)

	logger.Debug("config loaded", "path", flagConfig, "difficulty", flagDifficulty, "edges", cfg.Arena.Edges)
	return nil
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snek",
		Level:           lvl,
	}), nil
}

// loadConfig loads the config file and applies a difficulty preset on top.
func loadConfig(path, difficulty string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
