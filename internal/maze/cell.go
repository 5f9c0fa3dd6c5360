package maze

import "fmt"

// Role classifies a cell independently of its walls and visited state.
type Role uint8

const (
	RoleNormal Role = iota
	RoleStart
	RoleEnd
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleNormal:
		return "Normal"
	case RoleStart:
		return "Start"
	case RoleEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Cell is one unit of the maze grid. A fresh cell has all four walls
// present, is unvisited and carries RoleNormal.
type Cell struct {
	Top     bool
	Bottom  bool
	Left    bool
	Right   bool
	Visited bool
	Role    Role
}

// walled returns a cell with all four walls present and everything else zeroed.
func walled() Cell {
	return Cell{Top: true, Bottom: true, Left: true, Right: true}
}

// Coord addresses a cell by (row, col). Row increases downward.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}
