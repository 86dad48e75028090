// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/rsolari/valentines-cards/maze"
)

// ExampleGenerate demonstrates the spanning-tree guarantee: whichever
// algorithm carves the maze, a 10×8 grid always ends up with exactly
// 10×8−1 = 79 open walls.
//
// Complexity: O(W×H) per generation.
func ExampleGenerate() {
	for _, alg := range []maze.Algorithm{maze.Backtracker, maze.Prim, maze.Kruskal, maze.Wilson} {
		m, err := maze.Generate(10, 8, maze.WithAlgorithm(alg), maze.WithSeed(42))
		if err != nil {
			fmt.Println("generate:", err)
			return
		}
		fmt.Printf("%-11s open walls: %d\n", alg, m.OpenWallCount())
	}

	// Output:
	// backtracker open walls: 79
	// prim        open walls: 79
	// kruskal     open walls: 79
	// wilson      open walls: 79
}

// ExampleMaze_SolutionPath shows that the unique solution of a 1×1 maze is
// the entrance itself, with zero moves.
func ExampleMaze_SolutionPath() {
	m, _ := maze.Generate(1, 1, maze.WithSeed(1))
	path, _ := m.SolutionPath()
	fmt.Println("cells:", len(path), "moves:", len(path)-1)

	// Output:
	// cells: 1 moves: 0
}
