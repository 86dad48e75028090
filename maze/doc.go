// Package maze generates perfect mazes over a rectangular cell grid and
// recovers their unique solution paths.
//
// What:
//
//   - Maze wraps a W×H grid of Cells, each with four wall sides (N/E/S/W).
//   - Generate carves a spanning tree over the grid graph using one of four
//     interchangeable algorithms: Backtracker (DFS), Prim, Kruskal, Wilson.
//   - Solve performs a breadth-first search over open walls and returns the
//     unique cell path between two positions.
//
// Why:
//
//   - Puzzle backs for printable trading cards: every maze is solvable, has
//     exactly one solution, and contains no isolated pockets.
//   - Reproducible output: a fixed seed always yields the same walls.
//
// Invariants (hold for every algorithm):
//
//   - Exactly W×H−1 walls are open (spanning-tree property).
//   - Exactly one path exists between any two cells.
//   - Entrance and exit only mark cells; they never affect carving.
//
// Complexity:
//
//   - Backtracker / Prim / Kruskal: O(W×H), Memory: O(W×H).
//   - Wilson: O(W×H) expected (loop-erased random walks), Memory: O(W×H).
//   - Solve: O(W×H), Memory: O(W×H).
//
// Options:
//
//   - WithAlgorithm: carving algorithm; Backtracker by default (long winding
//     corridors). Prim branches more; Kruskal has the most uniform texture.
//   - WithSeed: deterministic generation; seed 0 draws from the clock.
//   - WithEntrance / WithExit: distinguished cells for markers and Solve;
//     default top-left and bottom-right corners.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height below 1.
//   - ErrUnknownAlgorithm: algorithm name not registered.
//   - ErrCellOutOfBounds: entrance, exit, or solve endpoint outside the grid.
//   - ErrNoPath: solve endpoints are disconnected (cannot occur on a maze
//     produced by Generate; guards hand-built grids).
package maze
