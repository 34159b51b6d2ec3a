package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bricksmash/bricksmash/internal/core"
	"github.com/bricksmash/bricksmash/internal/sim"
	"github.com/bricksmash/bricksmash/internal/storage"
)

// Model is the Bubble Tea model driving the game loop: key messages fill
// the input frame, tick messages step the simulation, View projects the
// world into the terminal.
type Model struct {
	game     *sim.Game
	keys     *KeyMapper
	renderer *Renderer
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig

	frame    core.InputFrame
	state    core.GameState
	runStart int // Tick the current run began at, for run-length stats
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *sim.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:     game,
		keys:     NewKeyMapper(),
		renderer: NewRenderer(),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		config:   cfg,
		frame:    core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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
	if m.keys.Apply(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// world units, so a resize only changes the projection target.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Manual restart rebuilds the game from a fresh seed.
	if m.frame.Pressed(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.runStart = 0
		m.frame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.frame)
	m.state = result.State

	// The game resets itself on game over; the score the run ended with
	// travels in FinalScore.
	if result.State.GameOver {
		if m.store != nil && result.FinalScore > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(result.FinalScore, m.game.Tick()-m.runStart)
		}
		m.runStart = m.game.Tick()
	}

	// Clear input for next frame
	m.frame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.game.World(), m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game *sim.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
