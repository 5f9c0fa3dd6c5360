package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anvln/mazeterm/internal/maze"
	"github.com/anvln/mazeterm/internal/platform/tui"
	"github.com/anvln/mazeterm/internal/render"
	"github.com/anvln/mazeterm/internal/storage"
)

var flagViewConfig string

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Interactive maze viewer",
	Long: `Open the interactive viewer. Without a file a fresh maze is
generated; with a file the saved maze is shown first.

Controls:
  Space      - Regenerate with a fresh seed
  S          - Save to the maze directory and record in the catalog
  Q/Ctrl+C   - Quit

Examples:
  mazeterm view
  mazeterm view labyrinth.maze
  mazeterm view --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagViewConfig, "config", "", "Path to custom config YAML")
}

// mazeDir returns the default directory for saved mazes.
func mazeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mazes"
	}
	return filepath.Join(home, ".mazeterm", "mazes")
}

func runView(cmd *cobra.Command, args []string) {
	cfg, err := loadMazeConfig(flagViewConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	viewerCfg := tui.ViewerConfig{
		Width:   cfg.Grid.Width,
		Height:  cfg.Grid.Height,
		Start:   maze.C(cfg.Start.Row, cfg.Start.Col),
		MarkEnd: cfg.MarkEnd,
		Unicode: cfg.Render.Unicode,
		Seed:    flagSeed,
		MazeDir: mazeDir(),
	}

	// Open the catalog; the viewer works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open catalog: %v\n", err)
		store = nil
	}

	var model tui.Model
	if len(args) == 1 {
		g, loadErr := maze.ReadFile(args[0])
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading maze: %v\n", loadErr)
			os.Exit(1)
		}
		model = tui.NewModelForGrid(g, viewerCfg, store)
	} else {
		model = tui.NewModel(viewerCfg, store)
	}

	// Warn early when the maze cannot fit the terminal.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := render.Size(model.Grid())
		needH += 2 // status line and help bar
		if needW > w || needH > h {
			fmt.Fprintf(os.Stderr,
				"Warning: a %dx%d maze needs %dx%d characters, terminal is %dx%d\n",
				viewerCfg.Width, viewerCfg.Height, needW, needH, w, h)
		}
	}

	runErr := tui.Run(model)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", runErr)
		os.Exit(1)
	}
}
