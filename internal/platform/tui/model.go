package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/registry"
)

// Options configures the terminal host.
type Options struct {
	KeyHold time.Duration // How long a direction stays held after a press
	Logger  *log.Logger   // Receives game events; nil discards them
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	randomSeed bool // Seed was picked from the clock and is re-picked on restart
	keyMapper  *KeyMapper
	held       *HeldKeys
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	randomSeed := cfg.Seed == 0
	if randomSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = DefaultKeyHold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, arenaHeight(cfg.ScreenH)),
		config:     cfg,
		randomSeed: randomSeed,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(HoldTicks(opts.KeyHold, cfg.TickRate)),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// arenaHeight leaves the bottom line of the terminal for the help footer.
func arenaHeight(termH int) int {
	return max(termH-1, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsStop(msg) {
		m.held.Release()
		return m, nil
	}

	switch a := m.keyMapper.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID())
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.Press(a)
	case core.ActionPause, core.ActionRestart:
		m.inputFrame.Set(a)
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// only the drawing scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, arenaHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if m.randomSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.held.Release()
		m.inputFrame.Clear()
		m.logger.Info("restart", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logEvents writes step events to the logger.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		if e.Notable {
			m.logger.Info(e.Name, e.Fields...)
		} else {
			m.logger.Debug(e.Name, e.Fields...)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
