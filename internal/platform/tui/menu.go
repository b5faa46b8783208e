package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/registry"
	"github.com/vovakirdan/zigzag/internal/storage"
)

// difficultyChoices are cycled with left/right. The empty choice keeps
// whatever the config file says.
var difficultyChoices = []string{"", "easy", "normal", "hard", "fixed"}

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(0, 3)
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// MenuKeyMap defines the key bindings for the mode picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Select, k.Scores, k.Quit}}
}

// DefaultMenuKeyMap returns the default mode picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("←/h", "easier")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("→/l", "harder")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// MenuItem is one playable mode.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // High score, 0 when none is stored
}

// MenuModel is the mode picker shown by the menu command and at the start
// of every SSH session. The row after the last mode opens the scoreboard.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int // index into difficultyChoices
	width          int
	height         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a mode picker with the given difficulty preselected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	m := MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	for i, d := range difficultyChoices {
		if d == difficulty {
			m.difficulty = i
		}
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.items) + 1

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + rows - 1) % rows
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % rows
	case key.Matches(msg, m.keys.Left):
		m.difficulty = (m.difficulty + len(difficultyChoices) - 1) % len(difficultyChoices)
	case key.Matches(msg, m.keys.Right):
		m.difficulty = (m.difficulty + 1) % len(difficultyChoices)
	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		if m.cursor == len(m.items) {
			m.openScoreboard = true
			return m, tea.Quit
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(bannerStyle.Render("Z I G Z A G"), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		label := item.Title
		if item.Best > 0 {
			label = fmt.Sprintf("%-20s best %d", item.Title, item.Best)
		}
		b.WriteString(centerText(m.row(i, label), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(m.row(len(m.items), "High Scores"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(dimStyle.Render("Difficulty ")+selectorStyle.Render("‹ "+difficultyLabel(m.Difficulty())+" ›"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) row(i int, label string) string {
	if i == m.cursor {
		return activeStyle.Render("> " + label)
	}
	return rowStyle.Render("  " + label)
}

func difficultyLabel(d string) string {
	if d == "" {
		return "config"
	}
	return d
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the chosen preset name, empty for the config default.
func (m MenuModel) Difficulty() string {
	return difficultyChoices[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Width is measured without
// ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty string) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, difficulty), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: difficulty, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config(), Difficulty: m.Difficulty()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
