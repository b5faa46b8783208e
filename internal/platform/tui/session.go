package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/registry"
	"github.com/vovakirdan/zigzag/internal/storage"
)

// sessionScreen is the screen a session currently shows.
type sessionScreen uint8

const (
	screenMenu sessionScreen = iota
	screenPlay
	screenScores
	screenDone
)

// difficultySetter is implemented by games with per-instance presets.
type difficultySetter interface {
	SetDifficulty(preset string)
}

// SessionModel drives one SSH session: menu, then a run or the
// scoreboard, then back to the menu. Sub-models end their own programs
// with tea.Quit; inside a session that command is dropped and the next
// screen takes over.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	opts       []Option
	screen     sessionScreen
	menu       MenuModel
	play       Model
	scores     ScoreboardModel
}

// NewSessionModel creates a new session model. The options are applied to
// every game started from the session's menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, difficulty string, opts ...Option) SessionModel {
	return SessionModel{
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		opts:       opts,
		menu:       NewMenuModel(store, cfg, difficulty),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes the message to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenDone:
		return m, tea.Quit
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	m.difficulty = m.menu.Difficulty()

	switch {
	case m.menu.IsQuitting():
		m.screen = screenDone
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	case m.menu.Selected() != nil:
		return m.startRun(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) startRun(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		return m.backToMenu()
	}
	if ds, ok := game.(difficultySetter); ok {
		ds.SetDifficulty(m.difficulty)
	}

	m.config.Seed = time.Now().UnixNano()
	opts := append(m.opts[:len(m.opts):len(m.opts)], WithDifficulty(m.difficulty))
	m.play = NewModel(game, m.store, m.config, opts...)
	m.screen = screenPlay
	return m, m.play.Init()
}

func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	m.play = next.(Model)

	switch {
	case m.play.IsQuitting():
		m.screen = screenDone
		return m, tea.Quit
	case m.play.BackToMenu():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.screen = screenDone
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so high scores from the last run show up.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config, m.difficulty)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenScores:
		return m.scores.View()
	case screenDone:
		return ""
	}
	return m.menu.View()
}
