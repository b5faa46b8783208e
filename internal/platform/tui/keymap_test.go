package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zigzag/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space flips", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlip, false},
		{"enter flips", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFlip, false},
		{"up flips", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlip, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('p'), &frame) {
		t.Error("p should not be a quit request")
	}
	if km.MapKeyToFrame(runeKey('x'), &frame) {
		t.Error("x should not be a quit request")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("frame should have Pause set")
	}
	if frame.Has(core.ActionFlip) {
		t.Error("frame should not have Flip set")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should be a quit request")
	}
}

func TestHelpBindingsEnabled(t *testing.T) {
	keys := DefaultGameKeyMap()
	for _, b := range keys.ShortHelp() {
		if !b.Enabled() || b.Help().Key == "" {
			t.Errorf("binding %v should be enabled with help text", b.Keys())
		}
	}
	if len(keys.FullHelp()) != 2 {
		t.Errorf("FullHelp() has %d columns, expected 2", len(keys.FullHelp()))
	}
}
