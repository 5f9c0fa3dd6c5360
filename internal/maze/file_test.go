package maze

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "test.maze")

	g := NewGrid(10, 6)
	Generate(C(0, 0), g, rand.New(rand.NewSource(21)))
	g.At(C(0, 0)).Role = RoleNormal // Start is not persisted anyway

	if err := WriteFile(path, g); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !loaded.Equal(g) {
		t.Error("Loaded maze differs from saved maze")
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.maze"))
	if err == nil {
		t.Error("ReadFile() of a missing file should fail")
	}
}

func TestReadFileTruncated(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "short.maze")

	g := NewGrid(4, 4)
	Generate(C(0, 0), g, rand.New(rand.NewSource(2)))
	if err := WriteFile(path, g); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)-1], 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err = ReadFile(path)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("ReadFile() error = %v, expected ErrUnexpectedEOF", err)
	}
}
