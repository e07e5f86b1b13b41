package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/games/breakin"
	"github.com/vovakirdan/break-in/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games, difficulty presets and sim policies",
	Long:  `Shows the registered games and the values accepted by --difficulty and --policy.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printList(cmd.OutOrStdout())
	},
}

func printList(w io.Writer) {
	games := registry.List()

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Difficulty presets:")
	for _, p := range []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard} {
		fmt.Fprintf(w, "  %s\n", p)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sim policies:")
	for _, p := range []breakin.Policy{breakin.PolicyIdle, breakin.PolicyTrack, breakin.PolicySweep} {
		fmt.Fprintf(w, "  %s\n", p)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'breakin play' to play.")
}
