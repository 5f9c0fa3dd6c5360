package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anvln/mazeterm/internal/storage"
)

var flagListLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently generated mazes",
	Long: `List the most recent entries in the maze catalog.

Examples:
  mazeterm list
  mazeterm list --limit 5`,
	Run: runList,
}

func init() {
	listCmd.Flags().IntVar(&flagListLimit, "limit", 20, "Maximum number of entries to show")
}

func runList(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.RecentMazes(flagListLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No mazes in the catalog yet.")
		fmt.Println()
		fmt.Println("Run 'mazeterm gen --out <file>' to create one.")
		return
	}

	fmt.Printf("  %-10s  %-14s  %-16s  %s\n", "Size", "Seed", "Created", "Path")
	fmt.Printf("  %-10s  %-14s  %-16s  %s\n", "----", "----", "-------", "----")

	for _, rec := range records {
		fmt.Printf("  %-10s  %-14d  %-16s  %s\n",
			fmt.Sprintf("%dx%d", rec.Width, rec.Height),
			rec.Seed,
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Path,
		)
	}
}
