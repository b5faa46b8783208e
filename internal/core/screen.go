package core

import (
	"math"
	"strings"
)

// Cell is one character cell of the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer with a per-cell depth value.
// 3D drawing goes through Plot, which keeps the nearest sample per cell;
// overlay text goes through Set and always wins.
type Screen struct {
	width  int
	height int
	cells  []Cell
	depth  []float64
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions and clears it.
func (s *Screen) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height
	s.cells = make([]Cell, width*height)
	s.depth = make([]float64, width*height)
	s.Clear()
}

// Clear resets every cell to a blank and every depth to +Inf.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
		s.depth[i] = math.Inf(1)
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Set places a rune unconditionally, ignoring depth.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	i, ok := s.index(x, y)
	if !ok {
		return
	}
	s.cells[i] = Cell{Rune: r, Color: c}
	s.depth[i] = math.Inf(-1)
}

// Plot places a rune only if depth is nearer than what the cell already holds.
// Returns true if the cell was written.
func (s *Screen) Plot(x, y int, depth float64, r rune, c Color) bool {
	i, ok := s.index(x, y)
	if !ok || depth >= s.depth[i] {
		return false
	}
	s.cells[i] = Cell{Rune: r, Color: c}
	s.depth[i] = depth
	return true
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	i, ok := s.index(x, y)
	if !ok {
		return blankCell
	}
	return s.cells[i]
}

// DrawText writes a string horizontally starting at (x, y).
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	n := len([]rune(text))
	s.DrawText((s.width-n)/2, y, text, c)
}

// DrawBox draws a filled box with a single-line border.
func (s *Screen) DrawBox(x, y, w, h int, c Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r := ' '
			switch {
			case row == y && col == x:
				r = '┌'
			case row == y && col == x+w-1:
				r = '┐'
			case row == y+h-1 && col == x:
				r = '└'
			case row == y+h-1 && col == x+w-1:
				r = '┘'
			case row == y || row == y+h-1:
				r = '─'
			case col == x || col == x+w-1:
				r = '│'
			}
			s.Set(col, row, r, c)
		}
	}
}

// String converts the screen buffer to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
