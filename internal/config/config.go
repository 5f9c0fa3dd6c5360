// Package config provides YAML-based configuration loading for mazeterm.
package config

import "fmt"

// Config contains all mazeterm configuration.
type Config struct {
	Grid    GridConfig   `yaml:"grid"`
	Start   StartConfig  `yaml:"start"`
	MarkEnd bool         `yaml:"mark_end"`
	Render  RenderConfig `yaml:"render"`
}

// GridConfig defines the maze dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartConfig defines where generation begins.
type StartConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// RenderConfig defines how mazes are drawn.
type RenderConfig struct {
	// Unicode switches wall glyphs to block characters.
	Unicode bool `yaml:"unicode"`
}

// Validate checks the configuration for caller bugs before they reach the
// generator, where they would panic.
func (c Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Start.Row < 0 || c.Start.Row >= c.Grid.Height || c.Start.Col < 0 || c.Start.Col >= c.Grid.Width {
		return fmt.Errorf("config: start (%d,%d) outside %dx%d grid",
			c.Start.Row, c.Start.Col, c.Grid.Width, c.Grid.Height)
	}
	return nil
}
