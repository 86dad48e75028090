package maze

import "fmt"

// Solve returns the cell path from `from` to `to`, traversing only open
// walls. On a maze produced by Generate the path is unique by the
// spanning-tree invariant. The returned slice includes both endpoints;
// from == to yields a single-cell path with zero moves.
//
// Steps:
//  1. Validate both endpoints, else ErrCellOutOfBounds.
//  2. Breadth-first search from `from` over open walls, recording each
//     cell's parent on first discovery.
//  3. Walk the parent links back from `to` and reverse, giving the
//     from → to ordering.
//
// Returns ErrNoPath if `to` was never reached (possible only on grids not
// built by Generate).
//
// Complexity: O(W×H) time and memory.
func (m *Maze) Solve(from, to CellPos) ([]CellPos, error) {
	// 1. Validate endpoints.
	if !m.InBounds(from) {
		return nil, fmt.Errorf("%w: from %+v", ErrCellOutOfBounds, from)
	}
	if !m.InBounds(to) {
		return nil, fmt.Errorf("%w: to %+v", ErrCellOutOfBounds, to)
	}
	if from == to {
		return []CellPos{from}, nil
	}

	n := m.Width * m.Height
	visited := make([]bool, n)
	parent := make([]CellPos, n)

	// 2. BFS over open walls.
	queue := make([]CellPos, 0, n)
	visited[m.index(from)] = true
	queue = append(queue, from)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			break
		}
		for d := North; d <= West; d++ {
			if m.HasWall(cur, d) {
				continue
			}
			nb, ok := m.neighbor(cur, d)
			if !ok || visited[m.index(nb)] {
				continue
			}
			visited[m.index(nb)] = true
			parent[m.index(nb)] = cur
			queue = append(queue, nb)
		}
	}

	if !visited[m.index(to)] {
		return nil, fmt.Errorf("%w: %+v → %+v", ErrNoPath, from, to)
	}

	// 3. Reconstruct backwards, then reverse in place.
	path := []CellPos{to}
	for cur := to; cur != from; {
		cur = parent[m.index(cur)]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// SolutionPath returns the unique path from the maze entrance to its exit.
// Complexity: O(W×H).
func (m *Maze) SolutionPath() ([]CellPos, error) {
	return m.Solve(m.Entrance, m.Exit)
}
