// Package tui runs a game in the terminal with Bubble Tea.
// It owns the tick loop, maps keys to actions and draws the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval converts a tick rate to the time between ticks.
// Non-positive rates fall back to 60 ticks per second.
func tickInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(normalizeTickRate(tickRate))
}

func normalizeTickRate(tickRate int) int {
	if tickRate <= 0 {
		return 60
	}
	return tickRate
}
