package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anvln/mazeterm/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagServeConfig  string
	flagServeMazeDir string
	flagIdleTimeout  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the maze viewer over SSH",
	Long: `Start an SSH server that gives each connection its own maze viewer.

Every session starts with a freshly generated maze; space carves a new
one and s saves it into the server's maze directory and catalog.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mazeterm/host_key

Examples:
  mazeterm serve                           # Listen on :23235 with auto-generated key
  mazeterm serve --ssh :2222               # Listen on port 2222
  mazeterm serve --host-key ./my_host_key  # Use specific host key
  mazeterm serve --config ./big-maze.yaml  # Serve mazes from a custom config

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagServeMazeDir, "maze-dir", "~/.mazeterm/mazes", "Directory for mazes saved by sessions")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	mazeCfg, err := loadMazeConfig(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		MazeDir:     flagServeMazeDir,
		Maze:        mazeCfg,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting mazeterm SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
