package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsolari/valentines-cards/maze"
)

// adjacent reports whether two cells share an edge.
func adjacent(a, b maze.CellPos) bool {
	dRow, dCol := a.Row-b.Row, a.Col-b.Col
	if dRow < 0 {
		dRow = -dRow
	}
	if dCol < 0 {
		dCol = -dCol
	}

	return dRow+dCol == 1
}

// TestSolve_PathIsValidWalk verifies that the solution starts and ends at
// the requested cells and only ever moves between adjacent cells through
// open walls.
func TestSolve_PathIsValidWalk(t *testing.T) {
	for _, alg := range allAlgorithms {
		t.Run(string(alg), func(t *testing.T) {
			m, err := maze.Generate(10, 8, maze.WithAlgorithm(alg), maze.WithSeed(42))
			require.NoError(t, err)

			path, err := m.SolutionPath()
			require.NoError(t, err)
			require.NotEmpty(t, path)

			assert.Equal(t, m.Entrance, path[0])
			assert.Equal(t, m.Exit, path[len(path)-1])

			for i := 1; i < len(path)-1; i++ {
				assert.NotContains(t, path[:i], path[i], "a tree path never revisits a cell")
			}
			for i := 1; i < len(path); i++ {
				prev, cur := path[i-1], path[i]
				require.True(t, adjacent(prev, cur), "step %d: %+v → %+v not adjacent", i, prev, cur)

				var d maze.Direction
				switch {
				case cur.Row == prev.Row-1:
					d = maze.North
				case cur.Row == prev.Row+1:
					d = maze.South
				case cur.Col == prev.Col+1:
					d = maze.East
				default:
					d = maze.West
				}
				assert.False(t, m.HasWall(prev, d), "step %d crosses a closed wall", i)
			}
		})
	}
}

// TestSolve_EndToEndReference pins the reference scenario: a 10×8
// maze with seed 42 has exactly 79 open walls and exactly one path between
// opposite corners.
func TestSolve_EndToEndReference(t *testing.T) {
	m, err := maze.Generate(10, 8, maze.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, 79, m.OpenWallCount())

	path, err := m.Solve(maze.CellPos{Row: 0, Col: 0}, maze.CellPos{Row: 7, Col: 9})
	require.NoError(t, err)
	assert.Equal(t, maze.CellPos{Row: 0, Col: 0}, path[0])
	assert.Equal(t, maze.CellPos{Row: 7, Col: 9}, path[len(path)-1])
}

// TestSolve_AnyPairIsConnected spot-checks the unique-path guarantee for a
// handful of arbitrary cell pairs.
func TestSolve_AnyPairIsConnected(t *testing.T) {
	m, err := maze.Generate(9, 6, maze.WithAlgorithm(maze.Kruskal), maze.WithSeed(5))
	require.NoError(t, err)

	pairs := [][2]maze.CellPos{
		{{Row: 0, Col: 0}, {Row: 5, Col: 8}},
		{{Row: 5, Col: 0}, {Row: 0, Col: 8}},
		{{Row: 2, Col: 4}, {Row: 3, Col: 4}},
		{{Row: 1, Col: 7}, {Row: 1, Col: 7}},
	}
	for _, pair := range pairs {
		path, err := m.Solve(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, pair[0], path[0])
		assert.Equal(t, pair[1], path[len(path)-1])
	}
}

// TestSolve_OutOfBounds covers endpoint validation.
func TestSolve_OutOfBounds(t *testing.T) {
	m, err := maze.Generate(4, 4, maze.WithSeed(1))
	require.NoError(t, err)

	_, err = m.Solve(maze.CellPos{Row: -1, Col: 0}, maze.CellPos{Row: 0, Col: 0})
	assert.ErrorIs(t, err, maze.ErrCellOutOfBounds)

	_, err = m.Solve(maze.CellPos{Row: 0, Col: 0}, maze.CellPos{Row: 4, Col: 0})
	assert.ErrorIs(t, err, maze.ErrCellOutOfBounds)
}
