// Package maze provides the Maze type and the Generate entry point that
// carves a spanning tree over a rectangular cell grid.
package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Maze is a rectangular grid of cells whose open walls form a spanning tree.
// It is mutated only during Generate; afterwards it is safe for concurrent
// reads.
type Maze struct {
	// Width and Height are fixed for the lifetime of the maze.
	Width, Height int

	// Entrance and Exit are the distinguished cells used by rendering and
	// SolutionPath. Carving ignores them.
	Entrance, Exit CellPos

	// grid[row][col] holds the wall state of each cell.
	grid [][]Cell
}

// carver is the shared signature of all spanning-tree algorithms: mutate m
// in place, drawing randomness only from rng.
type carver func(m *Maze, rng *rand.Rand)

// carvers maps algorithm names to their implementations.
var carvers = map[Algorithm]carver{
	Backtracker: carveBacktracker,
	Prim:        carvePrim,
	Kruskal:     carveKruskal,
	Wilson:      carveWilson,
}

// Generate builds a W×H maze whose open walls form a spanning tree.
//
// Steps:
//  1. Validate dimensions: width ≥ 1 and height ≥ 1, else ErrInvalidDimensions.
//  2. Apply options; resolve the default exit to the bottom-right corner.
//  3. Validate entrance and exit positions, else ErrCellOutOfBounds.
//  4. Seed the random source (clock when Seed == 0) and dispatch the carver.
//
// Postcondition: exactly Width×Height−1 open walls; every cell reachable
// from every other cell by exactly one path.
//
// Complexity: O(W×H) for Backtracker/Prim/Kruskal, O(W×H) expected for Wilson.
func Generate(width, height int, opts ...Option) (*Maze, error) {
	// 1. Validate dimensions before any allocation.
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, width, height)
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	carve, ok := carvers[o.Algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, o.Algorithm)
	}

	m := newMaze(width, height)

	// 3. Resolve and validate the distinguished cells.
	if o.Exit == exitUnset {
		o.Exit = CellPos{Row: height - 1, Col: width - 1}
	}
	if !m.InBounds(o.Entrance) {
		return nil, fmt.Errorf("%w: entrance %+v", ErrCellOutOfBounds, o.Entrance)
	}
	if !m.InBounds(o.Exit) {
		return nil, fmt.Errorf("%w: exit %+v", ErrCellOutOfBounds, o.Exit)
	}
	m.Entrance, m.Exit = o.Entrance, o.Exit

	// 4. Seed the RNG and carve.
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	carve(m, rand.New(rand.NewSource(seed)))

	return m, nil
}

// newMaze allocates a width×height grid with every wall closed.
func newMaze(width, height int) *Maze {
	grid := make([][]Cell, height)
	for row := range grid {
		grid[row] = make([]Cell, width)
		for col := range grid[row] {
			grid[row][col] = Cell{North: true, East: true, South: true, West: true}
		}
	}

	return &Maze{Width: width, Height: height, grid: grid}
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(p CellPos) bool {
	return p.Row >= 0 && p.Row < m.Height && p.Col >= 0 && p.Col < m.Width
}

// CellAt returns a copy of the cell at p. The caller must ensure p is in
// bounds.
func (m *Maze) CellAt(p CellPos) Cell {
	return m.grid[p.Row][p.Col]
}

// HasWall reports whether the side of cell p facing direction d is closed.
// Positions outside the grid count as walled, so border checks need no
// special casing.
func (m *Maze) HasWall(p CellPos, d Direction) bool {
	if !m.InBounds(p) {
		return true
	}

	return m.grid[p.Row][p.Col].wall(d)
}

// neighbor returns the cell adjacent to p in direction d, and whether it
// lies within the grid.
func (m *Maze) neighbor(p CellPos, d Direction) (CellPos, bool) {
	dRow, dCol := d.Delta()
	n := CellPos{Row: p.Row + dRow, Col: p.Col + dCol}

	return n, m.InBounds(n)
}

// openWall removes the wall between p and its neighbor in direction d,
// updating both adjacent cells so the shared boundary stays consistent.
// Out-of-grid directions are ignored: the outer border is never opened.
func (m *Maze) openWall(p CellPos, d Direction) {
	n, ok := m.neighbor(p, d)
	if !ok {
		return
	}
	m.grid[p.Row][p.Col].setWall(d, false)
	m.grid[n.Row][n.Col].setWall(d.Opposite(), false)
}

// index maps p to a dense cell index in row-major order.
func (m *Maze) index(p CellPos) int {
	return p.Row*m.Width + p.Col
}

// OpenWallCount returns the number of open internal walls. For any maze
// produced by Generate this equals Width×Height−1.
// Complexity: O(W×H).
func (m *Maze) OpenWallCount() int {
	var count int
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			c := m.grid[row][col]
			// Count each shared boundary once: East for all but the last
			// column, South for all but the last row.
			if col < m.Width-1 && !c.East {
				count++
			}
			if row < m.Height-1 && !c.South {
				count++
			}
		}
	}

	return count
}
