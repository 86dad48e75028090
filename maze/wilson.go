package maze

import "math/rand"

// carveWilson implements Wilson's algorithm: the tree is assembled from
// loop-erased random walks, yielding an unbiased uniform spanning tree.
//
// Steps:
//  1. Put the entrance into the tree.
//  2. Pick a uniformly random cell outside the tree and random-walk from it
//     until the walk touches the tree, recording for every visited cell the
//     direction of its most recent departure. Revisiting a cell overwrites
//     the record, which erases any loop the walk made.
//  3. Replay the recorded directions from the walk's start, opening walls
//     and absorbing cells into the tree, then repeat from step 2 until no
//     cell remains outside.
//
// Texture: statistically uniform over all spanning trees of the grid.
// Complexity: O(W×H) expected time (walks shorten as the tree grows),
// O(W×H) memory.
func carveWilson(m *Maze, rng *rand.Rand) {
	n := m.Width * m.Height
	if n == 1 {
		return
	}

	inTree := make([]bool, n)
	// exitDir[i] is the direction the walk most recently left cell i by.
	exitDir := make([]Direction, n)

	// 1. Root the tree at the entrance.
	inTree[m.index(m.Entrance)] = true
	remaining := n - 1

	var candidates [directionCount]Direction

	// randomStep picks a uniformly random in-grid neighbor of p.
	randomStep := func(p CellPos) Direction {
		cands := candidates[:0]
		for d := North; d <= West; d++ {
			if _, ok := m.neighbor(p, d); ok {
				cands = append(cands, d)
			}
		}

		return cands[rng.Intn(len(cands))]
	}

	for remaining > 0 {
		// 2. Choose a random cell outside the tree. The outside list is
		// rebuilt in row-major order so the choice depends only on the RNG.
		outside := make([]CellPos, 0, remaining)
		for row := 0; row < m.Height; row++ {
			for col := 0; col < m.Width; col++ {
				p := CellPos{Row: row, Col: col}
				if !inTree[m.index(p)] {
					outside = append(outside, p)
				}
			}
		}
		start := outside[rng.Intn(len(outside))]

		// Random-walk until the tree is reached; overwrite on revisit to
		// erase loops.
		for cur := start; !inTree[m.index(cur)]; {
			d := randomStep(cur)
			exitDir[m.index(cur)] = d
			cur, _ = m.neighbor(cur, d)
		}

		// 3. Replay the loop-erased walk, carving it into the tree.
		for cur := start; !inTree[m.index(cur)]; {
			d := exitDir[m.index(cur)]
			m.openWall(cur, d)
			inTree[m.index(cur)] = true
			remaining--
			cur, _ = m.neighbor(cur, d)
		}
	}
}
