package maze

import (
	"math/rand"
	"testing"
)

func TestNewGridAllWalls(t *testing.T) {
	g := NewGrid(4, 3)

	if g.W != 4 || g.H != 3 {
		t.Fatalf("Expected 4x3 grid, got %dx%d", g.W, g.H)
	}
	if len(g.Cells) != 12 {
		t.Fatalf("Expected 12 cells, got %d", len(g.Cells))
	}

	for i, c := range g.Cells {
		if !c.Top || !c.Bottom || !c.Left || !c.Right {
			t.Errorf("Cell %d missing a wall: %+v", i, c)
		}
		if c.Visited {
			t.Errorf("Cell %d should start unvisited", i)
		}
		if c.Role != RoleNormal {
			t.Errorf("Cell %d should start with RoleNormal, got %v", i, c.Role)
		}
	}
}

func TestNewGridPanicsOnInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewGrid(%d, %d) should panic", tc.w, tc.h)
				}
			}()
			NewGrid(tc.w, tc.h)
		})
	}
}

func TestResetIdempotence(t *testing.T) {
	g := NewGrid(8, 8)
	Generate(C(0, 0), g, rand.New(rand.NewSource(7)))

	g.Reset()
	once := g.Clone()
	g.Reset()

	if !g.Equal(once) {
		t.Error("Resetting twice should yield the same state as resetting once")
	}

	for i, c := range g.Cells {
		if !c.Top || !c.Bottom || !c.Left || !c.Right {
			t.Fatalf("Cell %d missing a wall after reset: %+v", i, c)
		}
		if c.Visited {
			t.Fatalf("Cell %d still visited after reset", i)
		}
	}
}

func TestResetClearsRole(t *testing.T) {
	g := NewGrid(5, 5)
	Generate(C(2, 2), g, rand.New(rand.NewSource(1)))

	if g.At(C(2, 2)).Role != RoleStart {
		t.Fatal("Generation should tag the start cell")
	}
	g.At(C(4, 4)).Role = RoleEnd

	g.Reset()

	for i, c := range g.Cells {
		if c.Role != RoleNormal {
			t.Errorf("Cell %d retained stale role %v after reset", i, c.Role)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := NewGrid(3, 3)
	Generate(C(0, 0), g, rand.New(rand.NewSource(99)))

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("Clone should equal the original")
	}

	clone.At(C(1, 1)).Visited = false
	clone.At(C(1, 1)).Top = true
	if g.Equal(clone) {
		t.Error("Mutating the clone should not affect the original")
	}
}

func TestEqualDimensionMismatch(t *testing.T) {
	a := NewGrid(3, 4)
	b := NewGrid(4, 3)
	if a.Equal(b) {
		t.Error("Grids with swapped dimensions should not be equal")
	}
}
