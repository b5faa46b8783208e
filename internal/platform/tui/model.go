package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/registry"
	"github.com/vovakirdan/zigzag/internal/storage"
	"github.com/vovakirdan/zigzag/internal/zigzag"
)

// footerHeight is the number of rows reserved under the playfield for help.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// eventSource is implemented by games that report simulation events.
type eventSource interface {
	SetEventHandler(fn zigzag.EventHandler)
}

// Option configures a Model.
type Option func(*Model)

// WithLogger logs simulation events and saved runs at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithDifficulty records the difficulty preset name alongside saved runs.
func WithDifficulty(preset string) Option {
	return func(m *Model) {
		m.difficulty = preset
	}
}

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	difficulty string
	inputFrame core.InputFrame
	gameState  core.GameState
	runTicks   int64
	quitting   bool
	backToMenu bool
	quitOnBack bool // standalone programs exit on Back; sessions return to their menu
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}

	if src, ok := game.(eventSource); ok && m.logger != nil {
		logger := m.logger.With("game", game.ID())
		src.SetEventHandler(func(e zigzag.Event) {
			logger.Debug(e.Kind.String(), "tick", e.Tick, "handle", e.Handle, "mode", e.Mode)
		})
	}
	return m
}

func playfieldHeight(h int) int {
	if h > footerHeight+1 {
		return h - footerHeight
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is picked up on the first tick (value receiver)
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
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Leaving mid-run would drop the run silently
		if m.canLeave() {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// it picks up the new screen size on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Restart re-initializes the game from outside; GameOver itself is terminal.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runTicks = 0
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.Mode == core.ModePlaying.String() {
		m.runTicks++
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) canLeave() bool {
	return m.gameState.GameOver || m.gameState.Paused || m.gameState.Mode == core.ModeStart.String()
}

func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Ticks:      m.runTicks,
		Seed:       m.config.Seed,
		Difficulty: m.difficulty,
	}
	id, err := m.store.SaveRun(run)
	if m.logger == nil {
		return
	}
	if err != nil {
		m.logger.Warn("could not save run", "game", run.GameID, "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "game", run.GameID, "score", run.Score, "ticks", run.Ticks)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".zigzag", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.screen.Height() < m.config.ScreenH {
		view += "\n" + footerStyle.Render(m.help.View(m.keyMapper.Keys()))
	}
	return view
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
