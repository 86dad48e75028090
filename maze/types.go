// Package maze defines the grid model, tunable options, and sentinel errors
// for spanning-tree maze generation.
package maze

import "errors"

// Sentinel errors for maze generation and solving.
var (
	// ErrInvalidDimensions indicates a grid with width or height below 1.
	ErrInvalidDimensions = errors.New("maze: width and height must be at least 1")
	// ErrUnknownAlgorithm indicates an algorithm name outside the registered set.
	ErrUnknownAlgorithm = errors.New("maze: unknown generation algorithm")
	// ErrCellOutOfBounds indicates a cell position outside the grid.
	ErrCellOutOfBounds = errors.New("maze: cell position out of bounds")
	// ErrNoPath indicates no open-wall path exists between two cells.
	// Generate never produces such a maze; this guards hand-built grids.
	ErrNoPath = errors.New("maze: no path between cells")
)

// Algorithm names a spanning-tree carving strategy. All algorithms satisfy
// the same contract (grid dimensions + seed in, spanning tree out); they
// differ only in maze texture.
type Algorithm string

const (
	// Backtracker is the recursive-backtracker (depth-first) algorithm.
	// Produces long, winding corridors with few dead ends.
	Backtracker Algorithm = "backtracker"
	// Prim grows a single region, opening a random frontier wall each step.
	// Produces many short branches radiating from the start.
	Prim Algorithm = "prim"
	// Kruskal processes walls in random order, joining components via
	// union-find. Produces the most uniform texture.
	Kruskal Algorithm = "kruskal"
	// Wilson builds the tree from loop-erased random walks. Produces an
	// unbiased uniform spanning tree.
	Wilson Algorithm = "wilson"
)

// Direction identifies one of the four wall sides of a cell.
type Direction int

const (
	// North is the side toward row 0.
	North Direction = iota
	// East is the side toward the last column.
	East
	// South is the side toward the last row.
	South
	// West is the side toward column 0.
	West
)

// directionCount is the number of wall sides per cell.
const directionCount = 4

// Delta returns the row and column offsets of the neighbor in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default: // West
		return 0, -1
	}
}

// Opposite returns the direction facing back at d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default: // West
		return East
	}
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return "West"
	}
}

// CellPos addresses a cell by grid coordinates. Row 0 is the top edge,
// Col 0 the left edge.
type CellPos struct {
	Row, Col int
}

// Cell holds the wall state of a single grid cell.
// A true side is a closed (blocking) wall; false is an open passage.
type Cell struct {
	North, East, South, West bool
}

// wall reports the state of the side facing direction d.
func (c Cell) wall(d Direction) bool {
	switch d {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	default:
		return c.West
	}
}

// setWall updates the side facing direction d.
func (c *Cell) setWall(d Direction, closed bool) {
	switch d {
	case North:
		c.North = closed
	case East:
		c.East = closed
	case South:
		c.South = closed
	default:
		c.West = closed
	}
}

// exitUnset marks "exit not supplied"; Generate resolves it to the
// bottom-right corner once dimensions are known.
var exitUnset = CellPos{Row: -1, Col: -1}

// Options holds parameters for one generation run.
// Use DefaultOptions() for a default setup (Backtracker, clock seed,
// corner-to-corner entrance and exit).
type Options struct {
	// Algorithm selects the carving strategy.
	Algorithm Algorithm

	// Seed feeds the random source. Seed 0 draws from the clock; any other
	// value makes generation fully reproducible.
	Seed int64

	// Entrance is the distinguished start cell. Rendering and Solve use it;
	// carving does not.
	Entrance CellPos

	// Exit is the distinguished goal cell. The zero Options value resolves
	// it to the bottom-right corner.
	Exit CellPos
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns Options initialized for the recursive backtracker:
//
//	– Algorithm = Backtracker
//	– Seed      = 0 (clock-seeded)
//	– Entrance  = top-left corner, Exit = bottom-right corner.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Algorithm: Backtracker,
		Seed:      0,
		Entrance:  CellPos{Row: 0, Col: 0},
		Exit:      exitUnset,
	}
}

// WithAlgorithm returns an Option that sets the carving Algorithm.
// Allowed values: Backtracker, Prim, Kruskal, Wilson.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithSeed returns an Option that fixes the random seed for reproducible
// generation. Seed 0 restores clock seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithEntrance returns an Option that sets the distinguished start cell.
func WithEntrance(p CellPos) Option {
	return func(o *Options) {
		o.Entrance = p
	}
}

// WithExit returns an Option that sets the distinguished goal cell.
func WithExit(p CellPos) Option {
	return func(o *Options) {
		o.Exit = p
	}
}
