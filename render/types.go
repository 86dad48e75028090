// Package render defines rendering options, wall-style configuration, and
// sentinel errors for maze rasterization.
package render

import (
	"errors"
	"fmt"
	"image/color"
)

// Sentinel errors for rendering operations.
var (
	// ErrNilMaze indicates a nil maze pointer was passed.
	ErrNilMaze = errors.New("render: maze is nil")
	// ErrInvalidCellSize indicates a cell size or wall thickness below 1.
	ErrInvalidCellSize = errors.New("render: cell size and wall thickness must be at least 1")
	// ErrCanvasTooSmall indicates the requested canvas cannot hold the grid
	// at the requested cell size.
	ErrCanvasTooSmall = errors.New("render: canvas smaller than maze extent")
	// ErrUnknownStyle indicates a wall style name outside the registry.
	ErrUnknownStyle = errors.New("render: unknown wall style")
	// ErrInvalidColor indicates a color string that is not #RGB or #RRGGBB.
	ErrInvalidColor = errors.New("render: invalid hex color")
)

// Valentine palette defaults, carried over from the card's print design.
const (
	// DefaultBackground is a lavender-blush paper tone.
	DefaultBackground = "#FFF0F5"
	// DefaultWallColor is a dark Valentine red.
	DefaultWallColor = "#8B0000"
	// DefaultStartColor marks the entrance (hot pink).
	DefaultStartColor = "#FF69B4"
	// DefaultEndColor marks the exit (deep pink).
	DefaultEndColor = "#FF1493"
	// DefaultSolutionColor traces the answer path (pale violet red).
	DefaultSolutionColor = "#DB7093"
)

// Style names registered by this package.
const (
	// StyleSolid draws walls as plain thick lines.
	StyleSolid = "solid"
	// StyleDotted draws walls as rows of round beads.
	StyleDotted = "dotted"
	// StyleMosaic draws walls as small tiles with seeded shade variation.
	StyleMosaic = "mosaic"
	// StyleSnake draws walls as overlapping shaded scales, for serpent
	// themed designs.
	StyleSnake = "snake"
)

// Options holds all rendering parameters for one maze image.
// Use DefaultOptions() for the Valentine card defaults.
type Options struct {
	// CellSize is the pixel side length of one cell block.
	CellSize int

	// WallThickness is the stroke width of wall segments, in pixels.
	WallThickness int

	// Width and Height request an explicit canvas; the maze is centered on
	// it. Both zero means a tight fit: W×CellSize by H×CellSize.
	Width, Height int

	// Background, WallColor, StartColor, EndColor, SolutionColor are hex
	// color strings (#RGB or #RRGGBB).
	Background, WallColor, StartColor, EndColor, SolutionColor string

	// Style selects the registered wall style by name.
	Style string

	// TileSize and TileGap tune the mosaic style.
	TileSize, TileGap int

	// DotSize and DotGap tune the dotted style.
	DotSize, DotGap int

	// ScaleSize and ScaleVariation tune the snake style: scale diameter in
	// pixels and the per-scale shade spread in [0, 1].
	ScaleSize      int
	ScaleVariation float64

	// StyleSeed feeds the mosaic and snake shade jitter; fixed so
	// re-rendering the same maze yields byte-identical output.
	StyleSeed int64

	// ShowSolution overlays the unique entrance→exit path.
	ShowSolution bool
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns the Valentine card defaults:
//
//	– CellSize 40, WallThickness 2, tight-fit canvas, solid walls
//	– palette: dark-red walls on lavender blush, pink entrance/exit markers.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		CellSize:       40,
		WallThickness:  2,
		Background:     DefaultBackground,
		WallColor:      DefaultWallColor,
		StartColor:     DefaultStartColor,
		EndColor:       DefaultEndColor,
		SolutionColor:  DefaultSolutionColor,
		Style:          StyleSolid,
		TileSize:       6,
		TileGap:        2,
		DotSize:        4,
		DotGap:         4,
		ScaleSize:      8,
		ScaleVariation: 0.2,
		StyleSeed:      1,
	}
}

// WithCellSize sets the pixel side length of one cell block.
func WithCellSize(px int) Option {
	return func(o *Options) { o.CellSize = px }
}

// WithWallThickness sets the wall stroke width in pixels.
func WithWallThickness(px int) Option {
	return func(o *Options) { o.WallThickness = px }
}

// WithCanvas requests an explicit output canvas; the maze is centered on it.
// Both zero restores the tight fit.
func WithCanvas(width, height int) Option {
	return func(o *Options) {
		o.Width, o.Height = width, height
	}
}

// WithBackground sets the background hex color.
func WithBackground(hex string) Option {
	return func(o *Options) { o.Background = hex }
}

// WithWallColor sets the wall hex color.
func WithWallColor(hex string) Option {
	return func(o *Options) { o.WallColor = hex }
}

// WithMarkerColors sets the entrance and exit marker hex colors.
func WithMarkerColors(start, end string) Option {
	return func(o *Options) {
		o.StartColor, o.EndColor = start, end
	}
}

// WithStyle selects a registered wall style by name.
func WithStyle(name string) Option {
	return func(o *Options) { o.Style = name }
}

// WithMosaicTiles tunes the mosaic style: tile side length and the gap
// between tiles, in pixels.
func WithMosaicTiles(size, gap int) Option {
	return func(o *Options) {
		o.TileSize, o.TileGap = size, gap
	}
}

// WithDots tunes the dotted style: dot diameter and the gap between dots,
// in pixels.
func WithDots(size, gap int) Option {
	return func(o *Options) {
		o.DotSize, o.DotGap = size, gap
	}
}

// WithSnakeScales tunes the snake style: scale diameter in pixels and the
// per-scale shade variation in [0, 1].
func WithSnakeScales(size int, variation float64) Option {
	return func(o *Options) {
		o.ScaleSize, o.ScaleVariation = size, variation
	}
}

// WithStyleSeed fixes the shade jitter seed used by the mosaic and snake
// styles.
func WithStyleSeed(seed int64) Option {
	return func(o *Options) { o.StyleSeed = seed }
}

// WithSolution toggles the solution-path overlay.
func WithSolution(show bool) Option {
	return func(o *Options) { o.ShowSolution = show }
}

// WithSolutionColor sets the solution overlay hex color.
func WithSolutionColor(hex string) Option {
	return func(o *Options) { o.SolutionColor = hex }
}

// ParseHex converts "#RGB" or "#RRGGBB" into an opaque NRGBA color.
// Returns ErrInvalidColor for anything else. Exported because the card
// composer shares the palette format.
func ParseHex(s string) (color.NRGBA, error) {
	fail := func() (color.NRGBA, error) {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(s) == 0 || s[0] != '#' {
		return fail()
	}

	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		default:
			return 0, false
		}
	}

	switch len(s) {
	case 4: // #RGB, each digit doubled
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := hexVal(s[i+1])
			if !ok {
				return fail()
			}
			rgb[i] = v<<4 | v
		}

		return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}, nil
	case 7: // #RRGGBB
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			hi, okHi := hexVal(s[1+2*i])
			lo, okLo := hexVal(s[2+2*i])
			if !okHi || !okLo {
				return fail()
			}
			rgb[i] = hi<<4 | lo
		}

		return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}, nil
	default:
		return fail()
	}
}
