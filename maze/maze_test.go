package maze_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsolari/valentines-cards/maze"
)

// allAlgorithms is iterated by every property test: the spanning-tree
// contract must hold regardless of carving strategy.
var allAlgorithms = []maze.Algorithm{maze.Backtracker, maze.Prim, maze.Kruskal, maze.Wilson}

// reachableCount walks the maze from start over open walls using the public
// HasWall API and returns the number of reachable cells.
func reachableCount(m *maze.Maze, start maze.CellPos) int {
	visited := make(map[maze.CellPos]bool, m.Width*m.Height)
	stack := []maze.CellPos{start}
	visited[start] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for d := maze.North; d <= maze.West; d++ {
			if m.HasWall(cur, d) {
				continue
			}
			dRow, dCol := d.Delta()
			next := maze.CellPos{Row: cur.Row + dRow, Col: cur.Col + dCol}
			if m.InBounds(next) && !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}

	return len(visited)
}

// TestGenerate_SpanningTreeProperty verifies that every algorithm produces
// exactly W×H−1 open walls and a fully connected grid, which together imply
// a spanning tree (no cycles, no isolated regions, unique paths).
func TestGenerate_SpanningTreeProperty(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {2, 1}, {1, 5}, {4, 4}, {10, 8}, {21, 15}}
	for _, alg := range allAlgorithms {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("%s_%dx%d", alg, size.w, size.h), func(t *testing.T) {
				m, err := maze.Generate(size.w, size.h,
					maze.WithAlgorithm(alg),
					maze.WithSeed(7),
				)
				require.NoError(t, err)

				assert.Equal(t, size.w*size.h-1, m.OpenWallCount(),
					"open walls must equal W×H−1")
				assert.Equal(t, size.w*size.h, reachableCount(m, maze.CellPos{}),
					"every cell must be reachable from the entrance")
			})
		}
	}
}

// TestGenerate_DeterministicPerSeed verifies that a fixed seed reproduces
// the identical wall configuration, and that different seeds diverge.
func TestGenerate_DeterministicPerSeed(t *testing.T) {
	for _, alg := range allAlgorithms {
		t.Run(string(alg), func(t *testing.T) {
			a, err := maze.Generate(12, 9, maze.WithAlgorithm(alg), maze.WithSeed(42))
			require.NoError(t, err)
			b, err := maze.Generate(12, 9, maze.WithAlgorithm(alg), maze.WithSeed(42))
			require.NoError(t, err)
			c, err := maze.Generate(12, 9, maze.WithAlgorithm(alg), maze.WithSeed(43))
			require.NoError(t, err)

			assert.Equal(t, a.String(), b.String(), "same seed must reproduce walls")
			assert.NotEqual(t, a.String(), c.String(), "different seeds must diverge")
		})
	}
}

// TestGenerate_InvalidInput covers the fail-fast error conditions.
func TestGenerate_InvalidInput(t *testing.T) {
	t.Run("non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
			_, err := maze.Generate(dims[0], dims[1])
			assert.ErrorIs(t, err, maze.ErrInvalidDimensions, "dims %v", dims)
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := maze.Generate(3, 3, maze.WithAlgorithm("aldous-broder"))
		assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
	})

	t.Run("entrance out of bounds", func(t *testing.T) {
		_, err := maze.Generate(3, 3, maze.WithEntrance(maze.CellPos{Row: 3, Col: 0}))
		assert.ErrorIs(t, err, maze.ErrCellOutOfBounds)
	})

	t.Run("exit out of bounds", func(t *testing.T) {
		_, err := maze.Generate(3, 3, maze.WithExit(maze.CellPos{Row: 0, Col: -1}))
		assert.ErrorIs(t, err, maze.ErrCellOutOfBounds)
	})
}

// TestGenerate_TrivialGrid covers the 1×1 boundary case: no internal walls,
// and a zero-move solution path.
func TestGenerate_TrivialGrid(t *testing.T) {
	for _, alg := range allAlgorithms {
		t.Run(string(alg), func(t *testing.T) {
			m, err := maze.Generate(1, 1, maze.WithAlgorithm(alg), maze.WithSeed(1))
			require.NoError(t, err)

			assert.Zero(t, m.OpenWallCount())
			assert.Equal(t, maze.CellPos{}, m.Entrance)
			assert.Equal(t, maze.CellPos{}, m.Exit)

			path, err := m.SolutionPath()
			require.NoError(t, err)
			assert.Equal(t, []maze.CellPos{{Row: 0, Col: 0}}, path)
		})
	}
}

// TestGenerate_DefaultCorners verifies the default entrance/exit placement
// and that WithEntrance/WithExit override it.
func TestGenerate_DefaultCorners(t *testing.T) {
	m, err := maze.Generate(6, 4, maze.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, maze.CellPos{Row: 0, Col: 0}, m.Entrance)
	assert.Equal(t, maze.CellPos{Row: 3, Col: 5}, m.Exit)

	m, err = maze.Generate(6, 4, maze.WithSeed(3),
		maze.WithEntrance(maze.CellPos{Row: 1, Col: 1}),
		maze.WithExit(maze.CellPos{Row: 2, Col: 2}),
	)
	require.NoError(t, err)
	assert.Equal(t, maze.CellPos{Row: 1, Col: 1}, m.Entrance)
	assert.Equal(t, maze.CellPos{Row: 2, Col: 2}, m.Exit)
}

// TestGenerate_BorderNeverOpened verifies the outer boundary stays closed:
// the only way in or out of the puzzle is drawn by the marker overlay, not
// carved through the frame.
func TestGenerate_BorderNeverOpened(t *testing.T) {
	for _, alg := range allAlgorithms {
		t.Run(string(alg), func(t *testing.T) {
			m, err := maze.Generate(7, 5, maze.WithAlgorithm(alg), maze.WithSeed(11))
			require.NoError(t, err)

			for col := 0; col < m.Width; col++ {
				assert.True(t, m.HasWall(maze.CellPos{Row: 0, Col: col}, maze.North))
				assert.True(t, m.HasWall(maze.CellPos{Row: m.Height - 1, Col: col}, maze.South))
			}
			for row := 0; row < m.Height; row++ {
				assert.True(t, m.HasWall(maze.CellPos{Row: row, Col: 0}, maze.West))
				assert.True(t, m.HasWall(maze.CellPos{Row: row, Col: m.Width - 1}, maze.East))
			}
		})
	}
}

// TestDirection_DeltaOpposite pins the compass arithmetic used everywhere.
func TestDirection_DeltaOpposite(t *testing.T) {
	cases := []struct {
		dir        maze.Direction
		dRow, dCol int
		opp        maze.Direction
	}{
		{maze.North, -1, 0, maze.South},
		{maze.East, 0, 1, maze.West},
		{maze.South, 1, 0, maze.North},
		{maze.West, 0, -1, maze.East},
	}
	for _, tc := range cases {
		dRow, dCol := tc.dir.Delta()
		assert.Equal(t, tc.dRow, dRow, tc.dir.String())
		assert.Equal(t, tc.dCol, dCol, tc.dir.String())
		assert.Equal(t, tc.opp, tc.dir.Opposite(), tc.dir.String())
	}
}
