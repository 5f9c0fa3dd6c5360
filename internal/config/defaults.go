package config

import (
	_ "embed"
)

//go:embed defaults/mazeterm.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, mirroring the
// embedded YAML.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  32,
			Height: 32,
		},
		Start: StartConfig{
			Row: 0,
			Col: 0,
		},
		MarkEnd: true,
		Render: RenderConfig{
			Unicode: false,
		},
	}
}
