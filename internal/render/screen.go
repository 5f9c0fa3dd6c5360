// Package render draws maze grids into a character-cell buffer that the
// CLI prints directly and the TUI layer styles with colors.
package render

import "strings"

// Paint classifies a screen cell so the TUI can color it without
// re-deriving maze semantics from glyphs.
type Paint uint8

const (
	PaintFloor Paint = iota
	PaintWall
	PaintUnvisited
	PaintStart
	PaintEnd
)

// ScreenCell is one character cell: a glyph plus its paint class.
type ScreenCell struct {
	Rune  rune
	Paint Paint
}

// Screen is a 2D character buffer. It decouples maze drawing from the
// terminal: the CLI takes String(), the TUI walks cells and applies styles.
type Screen struct {
	width  int
	height int
	cells  []ScreenCell
}

// NewScreen creates a screen buffer filled with floor spaces.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]ScreenCell, width*height),
	}
	s.Clear()
	return s
}

// Width returns the buffer width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the buffer height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the buffer with floor spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = ScreenCell{Rune: ' ', Paint: PaintFloor}
	}
}

// Set places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, p Paint) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = ScreenCell{Rune: r, Paint: p}
}

// Get returns the cell at the given position.
// Returns a floor space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) ScreenCell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ScreenCell{Rune: ' ', Paint: PaintFloor}
	}
	return s.cells[y*s.width+x]
}

// String converts the buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y*s.width+x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.cells[y*s.width+x].Rune)
	}
	return sb.String()
}
