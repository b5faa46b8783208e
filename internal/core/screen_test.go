package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}
	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Error("New screen should be filled with spaces")
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorRed {
		t.Errorf("GetCell(5, 5).Color = %d, expected ColorRed", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenPlotDepth(t *testing.T) {
	s := NewScreen(4, 4)

	if !s.Plot(1, 1, 5.0, 'a', ColorDefault) {
		t.Fatal("first Plot should write")
	}
	if s.Plot(1, 1, 6.0, 'b', ColorDefault) {
		t.Error("farther Plot should be rejected")
	}
	if !s.Plot(1, 1, 2.0, 'c', ColorDefault) {
		t.Error("nearer Plot should write")
	}
	if s.Get(1, 1) != 'c' {
		t.Errorf("Get(1, 1) = %q, expected 'c'", s.Get(1, 1))
	}

	// Overlay text always wins over plotted samples
	s.Set(1, 1, 'T', ColorDefault)
	if s.Plot(1, 1, -100, 'd', ColorDefault) {
		t.Error("Plot should never overwrite overlay text")
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, 'X', ColorDefault)
	s.Clear()
	if s.Get(2, 2) != ' ' {
		t.Error("Clear() should blank cells")
	}
	if !s.Plot(2, 2, 100, 'p', ColorDefault) {
		t.Error("Clear() should reset depth")
	}

	s.Resize(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("Resize() gave %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if len(s.Row(0)) != 8 {
		t.Errorf("Row(0) length = %d, expected 8", len(s.Row(0)))
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "SCORE", ColorWhite)
	if !strings.Contains(s.Row(1), "SCORE") {
		t.Errorf("Row(1) = %q, expected it to contain SCORE", s.Row(1))
	}

	s.DrawBox(0, 0, 20, 3, ColorDefault)
	if s.Get(0, 0) != '┌' || s.Get(19, 2) != '┘' {
		t.Error("DrawBox corners not drawn")
	}
}
