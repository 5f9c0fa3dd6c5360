package render

import "github.com/anvln/mazeterm/internal/maze"

// Glyphs selects the runes used for each paint class.
type Glyphs struct {
	Wall      rune
	Floor     rune
	Unvisited rune
	Start     rune
	End       rune
}

// ASCIIGlyphs renders with plain ASCII, safe for any terminal or file.
func ASCIIGlyphs() Glyphs {
	return Glyphs{Wall: '#', Floor: ' ', Unvisited: '.', Start: 'S', End: 'E'}
}

// UnicodeGlyphs renders with block characters for a denser look.
func UnicodeGlyphs() Glyphs {
	return Glyphs{Wall: '█', Floor: ' ', Unvisited: '░', Start: 'S', End: 'E'}
}

// Size returns the buffer dimensions needed to draw a grid: each cell
// interior sits at odd coordinates with wall lines between and around.
func Size(g *maze.Grid) (w, h int) {
	return 2*g.W + 1, 2*g.H + 1
}

// DrawMaze draws the grid into dst at the given offset. Cell (row, col)
// occupies buffer position (ox+2*col+1, oy+2*row+1); the surrounding odd
// lattice carries its walls. Wall posts at even/even positions are always
// drawn.
func DrawMaze(dst *Screen, g *maze.Grid, ox, oy int, gl Glyphs) {
	// Corner posts
	for row := 0; row <= g.H; row++ {
		for col := 0; col <= g.W; col++ {
			dst.Set(ox+2*col, oy+2*row, gl.Wall, PaintWall)
		}
	}

	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			cell := g.At(maze.C(row, col))
			cx, cy := ox+2*col+1, oy+2*row+1

			r, p := interiorGlyph(cell, gl)
			dst.Set(cx, cy, r, p)

			setWall(dst, cx, cy-1, cell.Top, gl)
			setWall(dst, cx, cy+1, cell.Bottom, gl)
			setWall(dst, cx-1, cy, cell.Left, gl)
			setWall(dst, cx+1, cy, cell.Right, gl)
		}
	}
}

// interiorGlyph picks the glyph and paint for a cell interior: unvisited
// cells dark, start green, end red, visited floor light.
func interiorGlyph(cell *maze.Cell, gl Glyphs) (rune, Paint) {
	if !cell.Visited {
		return gl.Unvisited, PaintUnvisited
	}
	switch cell.Role {
	case maze.RoleStart:
		return gl.Start, PaintStart
	case maze.RoleEnd:
		return gl.End, PaintEnd
	default:
		return gl.Floor, PaintFloor
	}
}

func setWall(dst *Screen, x, y int, present bool, gl Glyphs) {
	if present {
		dst.Set(x, y, gl.Wall, PaintWall)
	} else {
		dst.Set(x, y, gl.Floor, PaintFloor)
	}
}

// ASCII renders the grid as a plain-text maze using ASCII glyphs.
func ASCII(g *maze.Grid) string {
	w, h := Size(g)
	s := NewScreen(w, h)
	DrawMaze(s, g, 0, 0, ASCIIGlyphs())
	return s.String()
}
