// breakin is a breakout variant for the terminal where the player steers
// the row of blocks instead of a paddle.
//
// Usage:
//
//	breakin play             - Play in the terminal
//	breakin list             - List games, difficulty presets and sim policies
//	breakin sim              - Run a headless game with a scripted player
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write the event log to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/break-in/internal/games/breakin"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakin",
	Short: "Break-in - steer the bricks, not the paddle",
	Long: `Break-in is a breakout game played in the terminal. There is no
paddle: the ball bounces off three walls and the bricks, and you
steer the whole row of bricks left and right to keep the ball in play.

Available commands:
  play     - Play in the terminal
  list     - Show games, difficulty presets and sim policies
  sim      - Run a headless game with a scripted player

Examples:
  breakin play
  breakin play --difficulty hard --seed 42
  breakin sim --ticks 5000 --policy track --log-level debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the event log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}
