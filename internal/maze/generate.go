package maze

import "fmt"

// Shuffler is the source of randomness for generation. It is satisfied by
// *math/rand.Rand; injecting it keeps generation fully deterministic under
// a seeded source.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Grid-adjacent neighbor offsets, never diagonal. The fixed enumeration
// order only matters as the input to the shuffle.
var neighborDirections = [4]Coord{
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
}

// Generate carves a perfect maze into g using an iterative randomized
// depth-first walk (recursive backtracker with an explicit stack).
//
// The start cell is tagged RoleStart and every reachable cell ends up
// visited. The cleared wall pairs form a spanning tree of the grid graph:
// exactly W*H-1 passages, one simple path between any two cells. Generation
// never assigns RoleEnd; callers wanting an end cell mark one themselves.
//
// Panics if start lies outside the grid; that is a caller bug.
func Generate(start Coord, g *Grid, rng Shuffler) {
	if !g.InBounds(start) {
		panic(fmt.Sprintf("maze: start %v outside %dx%d grid", start, g.W, g.H))
	}

	g.At(start).Role = RoleStart

	stack := []Coord{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		g.At(current).Visited = true

		var neighbors []Coord
		for _, d := range neighborDirections {
			n := current.Add(d.Row, d.Col)
			if !g.InBounds(n) || g.At(n).Visited {
				continue
			}
			neighbors = append(neighbors, n)
		}

		if len(neighbors) == 0 {
			// Dead end; the ancestors still on the stack take over.
			continue
		}

		// Current may have other unexplored branches, keep it reachable.
		stack = append(stack, current)

		rng.Shuffle(len(neighbors), func(i, j int) {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		})
		next := neighbors[0]

		carve(g, current, next)
		stack = append(stack, next)
	}
}

// carve clears the shared wall between two adjacent cells on both sides.
func carve(g *Grid, from, to Coord) {
	a, b := g.At(from), g.At(to)
	switch {
	case to.Col == from.Col+1:
		a.Right, b.Left = false, false
	case to.Col == from.Col-1:
		a.Left, b.Right = false, false
	case to.Row == from.Row+1:
		a.Bottom, b.Top = false, false
	default:
		a.Top, b.Bottom = false, false
	}
}
