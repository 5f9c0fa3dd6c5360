package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anvln/mazeterm/internal/maze"
	"github.com/anvln/mazeterm/internal/render"
)

var (
	flagShowUnicode bool
	flagShowInfo    bool
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a saved maze as ASCII",
	Long: `Decode a .maze file and print it to stdout.

Examples:
  mazeterm show labyrinth.maze
  mazeterm show --unicode labyrinth.maze
  mazeterm show --info labyrinth.maze`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowUnicode, "unicode", false, "Render with block characters")
	showCmd.Flags().BoolVar(&flagShowInfo, "info", false, "Print dimensions and file size instead of the maze")
}

func runShow(cmd *cobra.Command, args []string) {
	path := args[0]

	g, err := maze.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagShowInfo {
		fmt.Printf("  %-12s %s\n", "Path:", path)
		fmt.Printf("  %-12s %dx%d cells\n", "Size:", g.W, g.H)
		fmt.Printf("  %-12s %d bytes\n", "Encoded:", maze.EncodedSize(g.W, g.H))
		fmt.Printf("  %-12s %d\n", "Passages:", g.PassageCount())
		return
	}

	glyphs := render.ASCIIGlyphs()
	if flagShowUnicode {
		glyphs = render.UnicodeGlyphs()
	}

	w, h := render.Size(g)
	screen := render.NewScreen(w, h)
	render.DrawMaze(screen, g, 0, 0, glyphs)
	fmt.Println(screen.String())
}
