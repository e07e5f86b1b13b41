package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/games/breakin"
)

var (
	flagSimTicks      int
	flagSimPolicy     string
	flagSimConfig     string
	flagSimDifficulty string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with a scripted player",
	Long: `Runs the simulation without a terminal UI until the game ends or
--ticks steps have passed, then prints a summary. Events go to the log
(stderr unless --log-file is set).

Policies:
  idle   - Never steer
  track  - Keep the row centered on the ball
  sweep  - Alternate left and right

Examples:
  breakin sim --seed 42
  breakin sim --ticks 20000 --policy track --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimCmd,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Maximum number of steps")
	simCmd.Flags().StringVar(&flagSimPolicy, "policy", string(breakin.PolicyTrack), "Scripted player: idle, track, sweep")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// simOptions configures a headless run.
type simOptions struct {
	Ticks  int
	Policy breakin.Policy
	Params breakin.Params
	Seed   int64
}

func runSimCmd(cmd *cobra.Command, args []string) error {
	policy, err := breakin.ParsePolicy(flagSimPolicy)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagSimDifficulty)
	if err != nil {
		return err
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	cfg, err := config.LoadBreakin(flagSimConfig)
	if err != nil {
		return err
	}
	config.ApplyBreakinPreset(&cfg, preset)

	logger, closeLog, err := newLogger(os.Stderr, flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	snap := runSim(logger, simOptions{
		Ticks:  flagSimTicks,
		Policy: policy,
		Params: breakin.ParamsFromConfig(cfg),
		Seed:   seed,
	})
	printSummary(cmd.OutOrStdout(), seed, policy, snap)
	return nil
}

// runSim steps a fresh simulation with the scripted player and logs every
// event. It stops at the tick limit or when the game ends.
func runSim(logger *log.Logger, opts simOptions) breakin.Snapshot {
	sim := breakin.NewSim(opts.Params, breakin.NewSimpleRNG(opts.Seed))
	logger.Info("sim started", "seed", opts.Seed, "policy", opts.Policy,
		"ticks", opts.Ticks, "blocks", sim.BlockCount(), "lives", sim.Lives())

	for range opts.Ticks {
		for _, e := range sim.Step(opts.Policy.Steer(sim)) {
			ce := e.Core()
			fields := append([]any{"tick", sim.Tick()}, ce.Fields...)
			if ce.Notable {
				logger.Info(ce.Name, fields...)
			} else {
				logger.Debug(ce.Name, fields...)
			}
		}
		if sim.Outcome() != breakin.Unresolved {
			break
		}
	}

	snap := sim.Snapshot()
	logger.Info("sim finished", "tick", snap.Tick, "outcome", snap.Outcome, "hash", fmt.Sprintf("%016x", snap.Hash()))
	return snap
}

func printSummary(w io.Writer, seed int64, policy breakin.Policy, snap breakin.Snapshot) {
	fmt.Fprintf(w, "Seed:      %d\n", seed)
	fmt.Fprintf(w, "Policy:    %s\n", policy)
	fmt.Fprintf(w, "Ticks:     %d\n", snap.Tick)
	fmt.Fprintf(w, "Outcome:   %s\n", snap.Outcome)
	fmt.Fprintf(w, "Lives:     %d\n", snap.Lives)
	fmt.Fprintf(w, "Blocks:    %d\n", len(snap.Blocks))
	fmt.Fprintf(w, "Hash:      %016x\n", snap.Hash())
	if msg := snap.EndMessage(); msg != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, msg)
	}
}
