// mazeterm generates perfect mazes and shows them in the terminal.
//
// Usage:
//
//	mazeterm gen               - Generate a maze, print it or save it
//	mazeterm view [file]       - Interactive viewer (space regenerates)
//	mazeterm show <file>       - Print a saved maze as ASCII
//	mazeterm list              - List recently generated mazes
//	mazeterm browse            - Browse the maze catalog interactively
//	mazeterm serve             - Serve the viewer over SSH
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible mazes (default: time-based)
//	--db <path>     - Catalog database path (default: ~/.mazeterm/catalog.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazeterm",
	Short: "mazeterm - Perfect mazes in your terminal",
	Long: `mazeterm generates perfect mazes with a randomized recursive
backtracker and stores them in a compact bit-packed binary format.

Available commands:
  gen     - Generate a maze, print it or save it to a .maze file
  view    - Interactive viewer; space carves a fresh maze
  show    - Print a saved .maze file as ASCII
  list    - List recently generated mazes
  browse  - Browse the maze catalog interactively
  serve   - Serve the interactive viewer over SSH

Examples:
  mazeterm gen --width 40 --height 20
  mazeterm gen --out labyrinth.maze --seed 42
  mazeterm view labyrinth.maze
  mazeterm serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazeterm/catalog.db", "Path to maze catalog database")

	// Add subcommands
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
}
