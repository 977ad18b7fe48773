package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-hustle/internal/core"
	"github.com/vovakirdan/tile-hustle/internal/registry"
	"github.com/vovakirdan/tile-hustle/internal/storage"
)

// DefaultHoldWindow is how long a key counts as held after a press.
const DefaultHoldWindow = 250 * time.Millisecond

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Options configures the game loop.
type Options struct {
	HoldWindow    time.Duration
	Logger        *log.Logger
	ScreenshotDir string // Empty disables screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	log       *log.Logger
	keys      *KeyMapper
	held      *HeldKeys
	toggles   core.InputFrame // One-shot actions for the next tick
	clock     *core.Clock
	now       func() time.Time
	gameState core.GameState
	started   time.Time
	quitting  bool
	runSaved  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		opts:    opts,
		log:     logger,
		keys:    NewKeyMapper(),
		held:    NewHeldKeys(opts.HoldWindow),
		toggles: core.NewInputFrame(),
		clock:   &core.Clock{},
		now:     time.Now,
		started: time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.keys.MapKey(msg)

	switch {
	case res.Quit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case res.Screenshot:
		m.saveScreenshot()
		return m, nil
	}

	now := m.now()
	for _, a := range res.Release {
		m.held.Release(a)
	}
	for _, a := range res.Held {
		m.held.Press(a, now)
	}
	if res.Toggle != core.ActionNone {
		m.toggles.Set(res.Toggle)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize restart at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.clock.Tick(now)

	input := m.toggles.Clone()
	m.held.Apply(&input, now)

	result := m.game.Step(input, frame)
	m.gameState = result.State

	// Toggles apply once
	m.toggles.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the session once. Storage failures never stop the game.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		MaxLevel: m.gameState.MaxLevel,
		Duration: m.now().Sub(m.started),
		Seed:     m.config.Seed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Warn("run not saved", "err", err)
		return
	}
	m.log.Info("run saved", "score", run.Score, "max_level", run.MaxLevel, "duration", run.Duration.Round(time.Second))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.log.Warn("screenshot directory unavailable", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot not saved", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game and blocks until the player
// quits. Games implementing io.Closer are closed afterwards.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()

	if c, ok := game.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			model.log.Warn("game close failed", "err", cerr)
		}
	}
	return err
}
