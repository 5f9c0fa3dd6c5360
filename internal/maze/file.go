package maze

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile encodes the grid to the file at path, creating parent
// directories as needed. An interrupted write may leave a partial file
// behind; there is no atomic-write guarantee.
func WriteFile(path string, g *Grid) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("maze: cannot create directory %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("maze: cannot create %s: %w", path, err)
	}

	if err := Encode(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("maze: cannot close %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes a grid from the file at path. On failure no grid is
// returned, so any grid the caller already holds stays untouched.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: cannot open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}
