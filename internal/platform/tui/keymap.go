package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/break-in/internal/core"
)

// DefaultKeyHold is how long a direction stays held after its last key
// press or auto-repeat.
const DefaultKeyHold = 250 * time.Millisecond

// KeyMap defines the key bindings for a running game.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Stop    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Stop, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "row left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "row right"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "stop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help footer.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Space maps to ActionNone: it only releases held directions.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// IsStop reports whether the key releases both directions.
func (km *KeyMapper) IsStop(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Stop)
}

// HeldKeys emulates held arrow keys. Terminals report presses and
// auto-repeats but never releases, so a direction counts as held for a
// fixed number of ticks after its last press.
type HeldKeys struct {
	window int
	left   int // Ticks left holding ActionLeft
	right  int // Ticks left holding ActionRight
}

// NewHeldKeys creates a tracker that holds a direction for window ticks.
func NewHeldKeys(window int) *HeldKeys {
	return &HeldKeys{window: max(window, 1)}
}

// HoldTicks converts a hold duration to a tick count at the given rate,
// rounding up. The result is at least one tick.
func HoldTicks(hold time.Duration, tickRate int) int {
	rate := int64(normalizeTickRate(tickRate))
	ticks := (int64(hold)*rate + int64(time.Second) - 1) / int64(time.Second)
	return max(int(ticks), 1)
}

// Press marks a direction as held. Pressing one direction releases the
// other. Non-direction actions are ignored.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.window, 0
	case core.ActionRight:
		h.left, h.right = 0, h.window
	}
}

// Release drops both directions at once.
func (h *HeldKeys) Release() {
	h.left, h.right = 0, 0
}

// Held reports whether the action is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		return h.left > 0
	case core.ActionRight:
		return h.right > 0
	}
	return false
}

// Apply sets the held directions on the frame and ages them by one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}
