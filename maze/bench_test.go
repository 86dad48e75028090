package maze_test

import (
	"testing"

	"github.com/rsolari/valentines-cards/maze"
)

// BenchmarkGenerate measures carving throughput per algorithm on a grid an
// order of magnitude larger than any card needs.
func BenchmarkGenerate(b *testing.B) {
	const w, h = 100, 100
	for _, alg := range []maze.Algorithm{maze.Backtracker, maze.Prim, maze.Kruskal, maze.Wilson} {
		b.Run(string(alg), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := maze.Generate(w, h, maze.WithAlgorithm(alg), maze.WithSeed(42)); err != nil {
					b.Fatalf("Generate failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkSolve measures BFS path recovery on a 100×100 backtracker maze.
func BenchmarkSolve(b *testing.B) {
	m, err := maze.Generate(100, 100, maze.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.SolutionPath(); err != nil {
			b.Fatalf("SolutionPath failed: %v", err)
		}
	}
}
