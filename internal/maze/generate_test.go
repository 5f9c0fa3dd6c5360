package maze

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestSpanningTree(t *testing.T) {
	tests := []struct {
		w, h  int
		start Coord
	}{
		{1, 1, C(0, 0)},
		{1, 7, C(3, 0)},
		{7, 1, C(0, 6)},
		{5, 3, C(0, 0)},
		{3, 5, C(4, 2)},
		{8, 8, C(7, 7)},
		{32, 32, C(0, 0)},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%dx%d", tc.w, tc.h), func(t *testing.T) {
			g := NewGrid(tc.w, tc.h)
			Generate(tc.start, g, rand.New(rand.NewSource(42)))

			for i, c := range g.Cells {
				if !c.Visited {
					t.Errorf("Cell %d not visited", i)
				}
			}

			want := tc.w*tc.h - 1
			if got := g.PassageCount(); got != want {
				t.Errorf("Expected %d passages, got %d", want, got)
			}
		})
	}
}

func TestPerfectMaze(t *testing.T) {
	g := NewGrid(12, 9)
	Generate(C(4, 4), g, rand.New(rand.NewSource(1234)))

	// Walk the passage graph from the start cell. A connected graph with
	// exactly cells-1 edges is a tree: one simple path between any pair.
	visited := make(map[Coord]bool)
	edges := 0
	queue := []Coord{C(4, 4)}
	visited[C(4, 4)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cell := g.At(cur)

		type link struct {
			open bool
			to   Coord
		}
		links := []link{
			{!cell.Right, cur.Add(0, 1)},
			{!cell.Left, cur.Add(0, -1)},
			{!cell.Bottom, cur.Add(1, 0)},
			{!cell.Top, cur.Add(-1, 0)},
		}
		for _, l := range links {
			if !l.open || !g.InBounds(l.to) {
				continue
			}
			edges++
			if !visited[l.to] {
				visited[l.to] = true
				queue = append(queue, l.to)
			}
		}
	}

	cells := g.W * g.H
	if len(visited) != cells {
		t.Errorf("Passage graph not connected: reached %d of %d cells", len(visited), cells)
	}
	// Each passage was counted from both ends.
	if edges/2 != cells-1 {
		t.Errorf("Expected %d passages, got %d (graph has a cycle or a gap)", cells-1, edges/2)
	}
}

func TestWallSymmetry(t *testing.T) {
	g := NewGrid(10, 10)
	Generate(C(0, 0), g, rand.New(rand.NewSource(5)))

	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			cell := g.At(C(row, col))
			if col+1 < g.W {
				right := g.At(C(row, col+1))
				if cell.Right != right.Left {
					t.Fatalf("Wall mismatch between (%d,%d) and (%d,%d)", row, col, row, col+1)
				}
			}
			if row+1 < g.H {
				below := g.At(C(row+1, col))
				if cell.Bottom != below.Top {
					t.Fatalf("Wall mismatch between (%d,%d) and (%d,%d)", row, col, row+1, col)
				}
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two runs with the same seed must produce identical grids.
	g1 := NewGrid(16, 16)
	Generate(C(3, 7), g1, rand.New(rand.NewSource(12345)))

	g2 := NewGrid(16, 16)
	Generate(C(3, 7), g2, rand.New(rand.NewSource(12345)))

	if !g1.Equal(g2) {
		t.Error("Same seed should produce identical mazes")
	}

	g3 := NewGrid(16, 16)
	Generate(C(3, 7), g3, rand.New(rand.NewSource(54321)))
	if g1.Equal(g3) {
		t.Error("Different seeds should produce different mazes")
	}
}

func TestStartRole(t *testing.T) {
	g := NewGrid(6, 6)
	start := C(2, 3)
	Generate(start, g, rand.New(rand.NewSource(8)))

	if got := g.At(start).Role; got != RoleStart {
		t.Errorf("Start cell role = %v, expected RoleStart", got)
	}
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			c := C(row, col)
			if c == start {
				continue
			}
			if got := g.At(c).Role; got != RoleNormal {
				t.Errorf("Cell %v role = %v, generator should never assign it", c, got)
			}
		}
	}
}

func TestSingleCell(t *testing.T) {
	g := NewGrid(1, 1)
	Generate(C(0, 0), g, rand.New(rand.NewSource(0)))

	c := g.At(C(0, 0))
	if !c.Visited {
		t.Error("The only cell should be visited")
	}
	if c.Role != RoleStart {
		t.Error("The only cell should be the start")
	}
	if !c.Top || !c.Bottom || !c.Left || !c.Right {
		t.Error("A 1x1 maze should keep all walls")
	}
	if g.PassageCount() != 0 {
		t.Error("A 1x1 maze has no passages")
	}
}

func TestGeneratePanicsOnOutOfBoundsStart(t *testing.T) {
	g := NewGrid(4, 4)
	defer func() {
		if recover() == nil {
			t.Error("Generate with out-of-bounds start should panic")
		}
	}()
	Generate(C(4, 0), g, rand.New(rand.NewSource(1)))
}
