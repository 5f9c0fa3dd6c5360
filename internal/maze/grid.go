// Package maze implements perfect-maze generation over a rectangular grid
// of walled cells and a bit-packed binary codec for persisting grids.
package maze

import "fmt"

// Grid is a rectangular W×H collection of cells.
// Cells are stored in row-major order: index = row*W + col.
// A grid is owned by its caller; Generate and the codec operate on a
// borrowed grid and keep no state across calls.
type Grid struct {
	W     int    // Width in cells
	H     int    // Height in cells
	Cells []Cell // Flat array of cells, length W*H
}

// NewGrid creates a grid with every wall present, all cells unvisited and
// RoleNormal. Panics on non-positive dimensions; a zero-sized grid is a
// caller bug, not a recoverable condition.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("maze: invalid grid dimensions %dx%d", w, h))
	}
	g := &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
	for i := range g.Cells {
		g.Cells[i] = walled()
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.W + c.Col
}

// InBounds returns true if the coordinate lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.H && c.Col >= 0 && c.Col < g.W
}

// At returns a pointer to the cell at the given coordinate.
// The coordinate must be in bounds.
func (g *Grid) At(c Coord) *Cell {
	return &g.Cells[g.index(c)]
}

// Reset restores every cell to the freshly-created state: all four walls
// present, visited false, role RoleNormal. Dimensions are untouched.
// Idempotent. Clearing the role here means a reused grid cannot carry a
// stale Start marker into the next generation run.
func (g *Grid) Reset() {
	for i := range g.Cells {
		g.Cells[i] = walled()
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal returns true if two grids have the same dimensions and every cell
// matches in walls, visited flag and role.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// PassageCount returns the number of cleared wall pairs between adjacent
// cells. Counting only right and bottom walls counts each passage once.
func (g *Grid) PassageCount() int {
	count := 0
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			cell := g.At(C(row, col))
			if col+1 < g.W && !cell.Right {
				count++
			}
			if row+1 < g.H && !cell.Bottom {
				count++
			}
		}
	}
	return count
}
