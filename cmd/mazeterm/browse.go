package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anvln/mazeterm/internal/maze"
	"github.com/anvln/mazeterm/internal/platform/tui"
	"github.com/anvln/mazeterm/internal/storage"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the maze catalog interactively",
	Long: `Open an interactive table of catalogued mazes. Enter opens the
selected maze in the viewer, d removes the catalog entry.

Examples:
  mazeterm browse
  mazeterm browse --db ./catalog.db`,
	Run: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	rec, err := tui.RunBrowser(store, width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		return
	}

	g, err := maze.ReadFile(rec.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", rec.Path, err)
		os.Exit(1)
	}

	cfg, err := loadMazeConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModelForGrid(g, tui.ViewerConfig{
		Width:   g.W,
		Height:  g.H,
		Start:   maze.C(0, 0),
		MarkEnd: cfg.MarkEnd,
		Unicode: cfg.Render.Unicode,
		MazeDir: mazeDir(),
	}, store)

	if err := tui.Run(model); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
