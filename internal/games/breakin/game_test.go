package breakin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/registry"
)

// newTestGame returns a game loaded from the embedded defaults, isolated
// from any config in the user's home directory.
func newTestGame(t *testing.T) *Game {
	t.Helper()

	path := filepath.Join(t.TempDir(), "breakin.yaml")
	require.NoError(t, os.WriteFile(path, config.DefaultYAML(), 0o600))
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIsRegistered(t *testing.T) {
	require.True(t, registry.Exists("breakin"))

	g, err := registry.Create("breakin")
	require.NoError(t, err)
	assert.Equal(t, "breakin", g.ID())
	assert.Equal(t, "Break-in", g.Title())
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)

	state := g.State()
	assert.Equal(t, 3, state.Lives)
	assert.False(t, state.GameOver)
	assert.False(t, state.Paused)
	assert.Equal(t, 30, g.Sim().BlockCount())
}

func TestGameDifficultyPreset(t *testing.T) {
	g := newTestGame(t)
	SetDifficultyPreset(config.DifficultyEasy)
	g.Reset(g.runtime)

	assert.Equal(t, 5, g.State().Lives)
}

func TestGameStepSteersRow(t *testing.T) {
	g := newTestGame(t)
	x := g.Sim().Blocks()[0].Pos.X

	g.Step(input(core.ActionRight))
	assert.Greater(t, g.Sim().Blocks()[0].Pos.X, x)

	g.Step(input(core.ActionLeft, core.ActionRight))
	assert.InDelta(t, 0.0, g.Sim().RowSpeed(), 1e-9, "left wins and decelerates from 0.2")
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)
	g.Step(input())
	tick := g.Sim().Tick()

	res := g.Step(input(core.ActionPause))
	assert.True(t, res.State.Paused)
	assert.Equal(t, tick, g.Sim().Tick())

	g.Step(input(core.ActionRight))
	assert.Equal(t, tick, g.Sim().Tick(), "paused game ignores steering")

	res = g.Step(input(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, tick+1, g.Sim().Tick())
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(input(core.ActionRestart))
	for _, e := range res.Events {
		assert.NotEqual(t, "restart", e.Name, "restart is ignored while playing")
	}
	assert.Equal(t, uint64(1), g.Sim().Tick())

	g.sim.outcome = Lost
	g.sim.lives = 0
	assert.True(t, g.State().GameOver)

	res = g.Step(input(core.ActionRestart))
	require.Len(t, res.Events, 1)
	assert.Equal(t, "restart", res.Events[0].Name)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 3, res.State.Lives)
	assert.Equal(t, uint64(0), g.Sim().Tick())
}

func TestGameEventsConverted(t *testing.T) {
	g := newTestGame(t)
	g.sim.ball = Ball{Pos: core.V2(250, 488), Vel: core.V2(0, 5)}

	res := g.Step(input())

	require.NotEmpty(t, res.Events)
	assert.Equal(t, "life lost", res.Events[0].Name)
	assert.Equal(t, []any{"lives", 2}, res.Events[0].Fields)
	assert.Equal(t, 2, res.State.Lives)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Equal(t, BallChar, screen.Get(40, 0))
	assert.Equal(t, core.ColorBrightWhite, screen.GetCell(40, 0).Color)

	row := []rune(screen.Row(1))
	assert.Equal(t, "Lives: 3", string(row[60:68]))

	assert.Equal(t, WallHoriz, screen.Get(40, 23))
	assert.Equal(t, core.ColorRed, screen.GetCell(40, 23).Color)
	assert.Equal(t, WallVert, screen.Get(78, 10))
	assert.Equal(t, WallVert, screen.Get(1, 10))
	assert.Equal(t, core.ColorGray, screen.GetCell(1, 10).Color)

	assert.Equal(t, BlockChar, screen.Get(6, 16))
	assert.Equal(t, core.ColorYellow, screen.GetCell(6, 16).Color)
}

func TestGameRenderEndMessage(t *testing.T) {
	g := newTestGame(t)
	g.sim.outcome = Won
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.String(), "You Win!")
	assert.Contains(t, screen.String(), "R to play again")
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionPause))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.String(), "PAUSED")
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(18, 8)

	g.Render(screen)

	assert.True(t, strings.Contains(screen.String(), "Need 20x10"))
}
