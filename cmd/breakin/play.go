package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin"
	"github.com/vovakirdan/break-in/internal/platform/tui"
	"github.com/vovakirdan/break-in/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagKeyHold    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to breakin.

Controls:
  Left/A/H    - Steer the block row left (held)
  Right/D/L   - Steer the block row right (held)
  Space       - Let go of both directions
  P/Esc       - Pause
  R           - Play again (after the game ends)
  Q/Ctrl+C    - Quit

Terminals do not report key releases, so a direction stays held for
--key-hold after its last key press or auto-repeat.

Difficulty options:
  easy   - 5 lives, faster row acceleration
  normal - Values from the config file
  hard   - 2 lives, slower and capped row

Examples:
  breakin play
  breakin play --difficulty easy
  breakin play --config ./my-breakin.yaml --seed 42
  breakin play --log-file breakin.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().DurationVar(&flagKeyHold, "key-hold", tui.DefaultKeyHold, "How long a direction stays held after a key press")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "breakin"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'breakin list' to see available games)", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Surface config errors here; once the TUI owns the terminal the game
	// can only fall back to defaults.
	if _, err := config.LoadBreakin(flagConfig); err != nil {
		return err
	}
	breakin.SetConfigPath(flagConfig)
	breakin.SetDifficultyPreset(preset)

	// The TUI owns stdout, so without a log file the log is discarded.
	logger, closeLog, err := newLogger(io.Discard, flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, tui.Options{KeyHold: flagKeyHold, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
