package maze

import "math/rand"

// frontierWall is a candidate passage from a cell already inside the maze
// toward a cell that may still be outside it.
type frontierWall struct {
	from CellPos
	dir  Direction
}

// carvePrim implements randomized Prim's algorithm.
//
// Steps:
//  1. Put the entrance into the maze region and add its walls to the
//     frontier list.
//  2. While the frontier is non-empty, remove a wall chosen uniformly at
//     random. If the cell on its far side is still outside the region, open
//     the wall, absorb the cell, and add that cell's walls to the frontier.
//  3. Walls whose far cell was absorbed in the meantime are discarded.
//
// Each cell is absorbed exactly once, so exactly W×H−1 walls open.
//
// Texture: many short branches; the maze grows outward from the entrance.
// Complexity: O(W×H) time (each wall enters the frontier at most once),
// O(W×H) memory.
func carvePrim(m *Maze, rng *rand.Rand) {
	inMaze := make([]bool, m.Width*m.Height)
	frontier := make([]frontierWall, 0, 2*m.Width*m.Height)

	// addWalls pushes every wall of p that faces an unabsorbed in-grid cell.
	addWalls := func(p CellPos) {
		for d := North; d <= West; d++ {
			if n, ok := m.neighbor(p, d); ok && !inMaze[m.index(n)] {
				frontier = append(frontier, frontierWall{from: p, dir: d})
			}
		}
	}

	// 1. Seed the region with the entrance.
	inMaze[m.index(m.Entrance)] = true
	addWalls(m.Entrance)

	// 2-3. Grow until the frontier drains.
	for len(frontier) > 0 {
		// Swap-remove a uniformly random frontier wall.
		i := rng.Intn(len(frontier))
		fw := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		n, _ := m.neighbor(fw.from, fw.dir)
		if inMaze[m.index(n)] {
			// Stale wall: the far cell was absorbed via another passage.
			continue
		}

		m.openWall(fw.from, fw.dir)
		inMaze[m.index(n)] = true
		addWalls(n)
	}
}
