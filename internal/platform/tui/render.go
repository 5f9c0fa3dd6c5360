package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anvln/mazeterm/internal/render"
)

// paintStyles maps render paint classes to lipgloss styles: unvisited
// cells dark, start green, end red.
var paintStyles = map[render.Paint]lipgloss.Style{
	render.PaintFloor:     lipgloss.NewStyle(),
	render.PaintWall:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	render.PaintUnvisited: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	render.PaintStart:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	render.PaintEnd:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen converts a screen buffer to a styled string for display.
// Groups adjacent cells with the same paint to minimize ANSI escape
// sequences.
func RenderScreen(s *render.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y).Paint

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Paint != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := paintStyles[start]
			if !ok {
				style = paintStyles[render.PaintFloor]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
