package maze

import "math/rand"

// carveBacktracker implements the recursive-backtracker (iterative DFS)
// algorithm.
//
// Steps:
//  1. Mark the entrance visited and push it on the stack.
//  2. While the stack is non-empty, inspect the top cell's unvisited
//     neighbors. If any exist, open the wall toward one chosen uniformly at
//     random, mark it visited, and push it.
//  3. Otherwise pop (backtrack). The stack empties once every cell has been
//     visited exactly once, leaving W×H−1 open walls.
//
// Texture: long, winding corridors with relatively few dead ends.
// Complexity: O(W×H) time, O(W×H) memory for the stack and visited set.
func carveBacktracker(m *Maze, rng *rand.Rand) {
	visited := make([]bool, m.Width*m.Height)
	stack := make([]CellPos, 0, m.Width*m.Height)

	// 1. Seed the walk at the entrance cell.
	visited[m.index(m.Entrance)] = true
	stack = append(stack, m.Entrance)

	// Reused scratch buffer for candidate directions.
	var candidates [directionCount]Direction

	// 2-3. Walk and backtrack until the stack drains.
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Collect directions leading to unvisited in-grid neighbors.
		cands := candidates[:0]
		for d := North; d <= West; d++ {
			if n, ok := m.neighbor(cur, d); ok && !visited[m.index(n)] {
				cands = append(cands, d)
			}
		}

		if len(cands) == 0 {
			// Dead end: backtrack to the previous cell.
			stack = stack[:len(stack)-1]
			continue
		}

		d := cands[rng.Intn(len(cands))]
		n, _ := m.neighbor(cur, d)
		m.openWall(cur, d)
		visited[m.index(n)] = true
		stack = append(stack, n)
	}
}
