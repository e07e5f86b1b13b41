package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/break-in/internal/core"
)

// recordingGame records the frames it is stepped with.
type recordingGame struct {
	frames []core.InputFrame
	resets []core.RuntimeConfig
	state  core.GameState
	events []core.Event
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{Lives: 3}
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state, Events: g.events}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "arena")
}

func (g *recordingGame) State() core.GameState { return g.state }

func newTestModel(t *testing.T, g *recordingGame, logger *log.Logger) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
	m := NewModel(g, cfg, Options{KeyHold: 50 * time.Millisecond, Logger: logger})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModelHeldDirection(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(t, g, nil)

	// 50ms at 60 ticks per second holds for 3 ticks.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 4 {
		m = update(t, m, TickMsg(time.Now()))
	}

	require.Len(t, g.frames, 4)
	for i := range 3 {
		assert.True(t, g.frames[i].Has(core.ActionLeft), "tick %d", i)
	}
	assert.False(t, g.frames[3].Has(core.ActionLeft))
}

func TestModelSpaceReleases(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(time.Now()))

	require.Len(t, g.frames, 2)
	assert.True(t, g.frames[0].Has(core.ActionRight))
	assert.False(t, g.frames[1].Has(core.ActionRight))
}

func TestModelOneShotActionsLastOneTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	require.Len(t, g.frames, 2)
	assert.True(t, g.frames[0].Has(core.ActionPause))
	assert.False(t, g.frames[1].Has(core.ActionPause))
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(t, g, nil)
	require.Len(t, g.resets, 1)

	g.state.GameOver = true
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, runeKey('r'))
	update(t, m, TickMsg(time.Now()))

	require.Len(t, g.resets, 2)
	assert.Equal(t, int64(7), g.resets[1].Seed, "a fixed seed is kept across restarts")
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Len(t, g.resets, 1)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height(), "last line is the help footer")
}

func TestModelQuit(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(t, g, nil)

	next, cmd := m.Update(runeKey('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModelView(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(t, g, nil)

	view := m.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, lines[0], "arena")
	assert.Contains(t, lines[11], "quit")
}

func TestModelLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	g := &recordingGame{events: []core.Event{
		{Name: "wall bounce"},
		{Name: "life lost", Fields: []any{"lives", 2}, Notable: true},
	}}
	m := newTestModel(t, g, logger)

	update(t, m, TickMsg(time.Now()))

	out := buf.String()
	assert.Contains(t, out, "life lost")
	assert.Contains(t, out, "lives=2")
	assert.NotContains(t, out, "wall bounce", "debug events are filtered at info level")
}
