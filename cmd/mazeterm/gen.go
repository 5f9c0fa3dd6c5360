package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anvln/mazeterm/internal/config"
	"github.com/anvln/mazeterm/internal/maze"
	"github.com/anvln/mazeterm/internal/render"
	"github.com/anvln/mazeterm/internal/storage"
)

var (
	flagGenConfig string
	flagGenWidth  int
	flagGenHeight int
	flagStartRow  int
	flagStartCol  int
	flagOut       string
	flagPrint     bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a maze",
	Long: `Generate a perfect maze and print it, save it, or both.

Without --out the maze is printed as ASCII. With --out it is written as
a bit-packed .maze file and recorded in the catalog; add --print to also
see it.

Examples:
  mazeterm gen
  mazeterm gen --width 40 --height 20
  mazeterm gen --seed 42 --out labyrinth.maze
  mazeterm gen --out labyrinth.maze --print`,
	Run: runGen,
}

func init() {
	genCmd.Flags().StringVar(&flagGenConfig, "config", "", "Path to custom config YAML")
	genCmd.Flags().IntVar(&flagGenWidth, "width", 0, "Maze width in cells (overrides config)")
	genCmd.Flags().IntVar(&flagGenHeight, "height", 0, "Maze height in cells (overrides config)")
	genCmd.Flags().IntVar(&flagStartRow, "start-row", -1, "Generation start row (overrides config)")
	genCmd.Flags().IntVar(&flagStartCol, "start-col", -1, "Generation start column (overrides config)")
	genCmd.Flags().StringVar(&flagOut, "out", "", "Write the maze to this .maze file")
	genCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the maze even when saving")
}

// loadMazeConfig loads the config and applies CLI overrides.
func loadMazeConfig(customPath string) (config.Config, error) {
	cfg, err := config.Load(customPath)
	if err != nil {
		return cfg, err
	}

	if flagGenWidth > 0 {
		cfg.Grid.Width = flagGenWidth
	}
	if flagGenHeight > 0 {
		cfg.Grid.Height = flagGenHeight
	}
	if flagStartRow >= 0 {
		cfg.Start.Row = flagStartRow
	}
	if flagStartCol >= 0 {
		cfg.Start.Col = flagStartCol
	}

	return cfg, cfg.Validate()
}

// generate builds a fresh maze from the config, returning the grid and
// the seed actually used.
func generate(cfg config.Config, seed int64) (*maze.Grid, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := maze.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	maze.Generate(maze.C(cfg.Start.Row, cfg.Start.Col), g, rand.New(rand.NewSource(seed)))

	if cfg.MarkEnd {
		corner := maze.C(g.H-1, g.W-1)
		if cell := g.At(corner); cell.Role == maze.RoleNormal {
			cell.Role = maze.RoleEnd
		}
	}

	return g, seed
}

func runGen(cmd *cobra.Command, args []string) {
	cfg, err := loadMazeConfig(flagGenConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, seed := generate(cfg, flagSeed)

	if flagOut != "" {
		if err := maze.WriteFile(flagOut, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving maze: %v\n", err)
			os.Exit(1)
		}

		// Record in the catalog; the saved file matters more than the entry.
		if store, storeErr := storage.Open(flagDBPath); storeErr == nil {
			//nolint:errcheck // Best-effort catalog entry
			store.SaveMaze(flagOut, g.W, g.H, seed)
			store.Close()
		} else {
			fmt.Fprintf(os.Stderr, "Warning: could not open catalog: %v\n", storeErr)
		}

		fmt.Printf("Saved %dx%d maze (seed %d) to %s\n", g.W, g.H, seed, flagOut)
	}

	if flagOut == "" || flagPrint {
		fmt.Println(render.ASCII(g))
		fmt.Printf("\n%dx%d maze, seed %d\n", g.W, g.H, seed)
	}
}
