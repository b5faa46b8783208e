package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zigzag/internal/core"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionPlayAndBack(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "hard")

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenPlay {
		t.Fatalf("screen = %v, expected play", m.screen)
	}
	if m.play.difficulty != "hard" {
		t.Errorf("run difficulty = %q, expected hard", m.play.difficulty)
	}

	m, _ = sessionStep(t, m, TickMsg{})
	if m.play.State().Mode != core.ModeStart.String() {
		t.Fatalf("mode = %q, expected Start", m.play.State().Mode)
	}

	m, cmd := sessionStep(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after back", m.screen)
	}
	if cmd != nil {
		t.Error("going back should not end the session")
	}
	if m.menu.Difficulty() != "hard" {
		t.Errorf("menu difficulty = %q, expected hard to carry over", m.menu.Difficulty())
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "")

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{"from menu", []tea.KeyMsg{runeKey('q')}},
		{"from play", []tea.KeyMsg{{Type: tea.KeyEnter}, runeKey('q')}},
		{"from scores", []tea.KeyMsg{{Type: tea.KeyTab}, runeKey('q')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSessionModel(nil, core.DefaultConfig(), "")
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = sessionStep(t, m, k)
			}
			if m.screen != screenDone || cmd == nil {
				t.Errorf("screen = %v, cmd nil = %v; expected done with quit", m.screen, cmd == nil)
			}
			if m.View() != "" {
				t.Error("finished session should render nothing")
			}
		})
	}
}

func TestSessionTracksResize(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "")
	m, _ = sessionStep(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.play.config.ScreenW != 100 || m.play.config.ScreenH != 30 {
		t.Errorf("run size = %dx%d, expected 100x30", m.play.config.ScreenW, m.play.config.ScreenH)
	}
}
