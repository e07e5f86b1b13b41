package breakin

import (
	"fmt"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/registry"
)

// Visual characters for rendering
const (
	BallChar  = '●'
	BlockChar = '█'
	WallHoriz = '─'
	WallVert  = '│'
)

// Minimum screen size the arena can be drawn into.
const (
	minScreenW = 20
	minScreenH = 10
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts the simulation to the platform: it maps input frames to a
// steering direction, handles pause and restart, and draws the arena.
type Game struct {
	sim     *Sim
	runtime core.RuntimeConfig
	cfg     config.BreakinConfig
	paused  bool
}

// New creates a new Break-in game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakin"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Break-in"
}

// Reset starts a new game. A previous game is discarded, never resumed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBreakin(configPath)
	if err != nil {
		cfg = config.DefaultBreakinConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBreakinPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.paused = false
	g.sim = NewSim(ParamsFromConfig(cfg), NewSimpleRNG(runtime.Seed))
}

// Sim returns the running simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	ended := g.sim.Outcome() != Unresolved

	// Handle restart
	if in.Has(core.ActionRestart) && ended {
		g.Reset(g.runtime)
		return core.StepResult{
			State:  g.State(),
			Events: []core.Event{{Name: "restart", Fields: []any{"seed", g.runtime.Seed}, Notable: true}},
		}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !ended {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dir := DirectionFrom(in.Has(core.ActionLeft), in.Has(core.ActionRight))
	events := g.sim.Step(dir)

	result := core.StepResult{State: g.State()}
	for _, e := range events {
		result.Events = append(result.Events, e.Core())
	}
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Lives:    g.sim.Lives(),
		GameOver: g.sim.Outcome() != Unresolved,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.sim.Snapshot()
	v := newViewport(g.sim.Arena(), dst.Width(), dst.Height())

	g.renderWalls(dst, v)
	g.renderBlocks(dst, v, snap.Blocks)
	g.renderBall(dst, v, snap.Ball)
	g.renderHUD(dst, v, snap)
	g.renderOverlay(dst, snap)
}

// viewport maps arena units to screen cells.
type viewport struct {
	arena  Arena
	sx, sy float64
	w, h   int
}

func newViewport(a Arena, w, h int) viewport {
	return viewport{
		arena: a,
		sx:    float64(w) / a.Width,
		sy:    float64(h) / a.Height,
		w:     w,
		h:     h,
	}
}

func (v viewport) cellX(x float64) int {
	return core.Clamp(int(x*v.sx), 0, v.w-1)
}

func (v viewport) cellY(y float64) int {
	return core.Clamp(int(y*v.sy), 0, v.h-1)
}

// renderWalls draws the three bouncing walls and the red losing wall.
func (g *Game) renderWalls(dst *core.Screen, v viewport) {
	a := v.arena
	left, right := v.cellX(a.WallSize), v.cellX(a.Width-a.WallSize)
	top, bottom := v.cellY(a.WallSize), v.cellY(a.Height-a.WallSize)

	dst.DrawHLine(left, top, right-left+1, WallHoriz, core.ColorGray)
	dst.DrawVLine(left, top, bottom-top+1, WallVert, core.ColorGray)
	dst.DrawVLine(right, top, bottom-top+1, WallVert, core.ColorGray)
	dst.DrawHLine(left, bottom, right-left+1, WallHoriz, core.ColorRed)
}

// renderBlocks draws every active block, at least one cell each.
func (g *Game) renderBlocks(dst *core.Screen, v viewport, blocks []Block) {
	for _, b := range blocks {
		x0, y0 := v.cellX(b.Left()), v.cellY(b.Top())
		x1, y1 := v.cellX(b.Right()), v.cellY(b.Bottom())
		w := max(x1-x0, 1)
		h := max(y1-y0, 1)
		color := core.RowColors[y0%len(core.RowColors)]
		dst.DrawRect(core.NewRect(x0, y0, w, h), BlockChar, color)
	}
}

// renderBall draws the ball centered on its position.
func (g *Game) renderBall(dst *core.Screen, v viewport, ball Ball) {
	dst.SetColored(v.cellX(ball.Pos.X), v.cellY(ball.Pos.Y), BallChar, core.ColorBrightWhite)
}

// renderHUD draws the lives counter and, once the game is over, the end
// message at their places inside the arena.
func (g *Game) renderHUD(dst *core.Screen, v viewport, snap Snapshot) {
	a := v.arena
	livesText := fmt.Sprintf("Lives: %d", snap.Lives)
	x := min(v.cellX(a.Width-120), dst.Width()-len(livesText)-2)
	dst.DrawText(x, v.cellY(a.WallSize*2)+1, livesText)

	if msg := snap.EndMessage(); msg != "" {
		dst.DrawTextColored(v.cellX(a.WallSize*5), v.cellY(a.WallSize*5)+1, msg, core.ColorYellow)
	}
}

// renderOverlay draws pause and end-of-game boxes.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case snap.Outcome != Unresolved:
		g.drawCenteredBox(dst, snap.EndMessage(), "R to play again  |  Q to quit")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("breakin", func() registry.Game {
		return New()
	})
}
