package render

import (
	"fmt"
	"image/color"
	"math/rand"
	"sort"

	"github.com/fogleman/gg"
)

// WallStyle draws one wall segment from (x1,y1) to (x2,y2). Segments are
// always axis-aligned; styles decide stroke, beads, or tiles.
type WallStyle interface {
	// DrawWall renders the segment onto the drawing context.
	DrawWall(dc *gg.Context, x1, y1, x2, y2 float64)
}

// styleFactory builds a WallStyle from resolved options and the parsed wall
// color.
type styleFactory func(o Options, wall color.NRGBA) WallStyle

// styles is the registry of wall styles by name.
var styles = map[string]styleFactory{
	StyleSolid: func(o Options, wall color.NRGBA) WallStyle {
		return &solidStyle{color: wall, thickness: float64(o.WallThickness)}
	},
	StyleDotted: func(o Options, wall color.NRGBA) WallStyle {
		return &dottedStyle{color: wall, dotSize: float64(o.DotSize), gap: float64(o.DotGap)}
	},
	StyleMosaic: func(o Options, wall color.NRGBA) WallStyle {
		return &mosaicStyle{
			color:    wall,
			tileSize: float64(o.TileSize),
			gap:      float64(o.TileGap),
			rng:      rand.New(rand.NewSource(o.StyleSeed)),
		}
	},
	StyleSnake: func(o Options, wall color.NRGBA) WallStyle {
		return &snakeStyle{
			color:     wall,
			scaleSize: float64(o.ScaleSize),
			variation: o.ScaleVariation,
			rng:       rand.New(rand.NewSource(o.StyleSeed)),
		}
	},
}

// StyleNames returns the registered wall style names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// styleByName resolves a registered style or returns ErrUnknownStyle.
func styleByName(o Options, wall color.NRGBA) (WallStyle, error) {
	factory, ok := styles[o.Style]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStyle, o.Style, StyleNames())
	}

	return factory(o, wall), nil
}

// solidStyle strokes the segment as a plain line with square caps, so
// corners meet without gaps.
type solidStyle struct {
	color     color.NRGBA
	thickness float64
}

func (s *solidStyle) DrawWall(dc *gg.Context, x1, y1, x2, y2 float64) {
	dc.SetColor(s.color)
	dc.SetLineCap(gg.LineCapSquare)
	dc.SetLineWidth(s.thickness)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

// dottedStyle lays round beads along the segment.
type dottedStyle struct {
	color   color.NRGBA
	dotSize float64
	gap     float64
}

func (s *dottedStyle) DrawWall(dc *gg.Context, x1, y1, x2, y2 float64) {
	dc.SetColor(s.color)
	radius := s.dotSize / 2
	step := s.dotSize + s.gap

	if horizontal(x1, y1, x2, y2) {
		start, end := ordered(x1, x2)
		for x := start + radius; x < end; x += step {
			dc.DrawCircle(x, y1, radius)
			dc.Fill()
		}

		return
	}
	start, end := ordered(y1, y2)
	for y := start + radius; y < end; y += step {
		dc.DrawCircle(x1, y, radius)
		dc.Fill()
	}
}

// mosaicStyle lays small square tiles with a random shade factor per tile,
// like hand-set ceramic. The rng is seeded by Options.StyleSeed, so the
// same seed re-renders byte-identically.
type mosaicStyle struct {
	color    color.NRGBA
	tileSize float64
	gap      float64
	rng      *rand.Rand
}

func (s *mosaicStyle) DrawWall(dc *gg.Context, x1, y1, x2, y2 float64) {
	half := s.tileSize / 2
	step := s.tileSize + s.gap

	if horizontal(x1, y1, x2, y2) {
		start, end := ordered(x1, x2)
		for x := start; x < end; x += step {
			tileEnd := x + s.tileSize
			if tileEnd > end {
				tileEnd = end
			}
			dc.SetColor(s.shade())
			dc.DrawRectangle(x, y1-half, tileEnd-x, s.tileSize)
			dc.Fill()
		}

		return
	}
	start, end := ordered(y1, y2)
	for y := start; y < end; y += step {
		tileEnd := y + s.tileSize
		if tileEnd > end {
			tileEnd = end
		}
		dc.SetColor(s.shade())
		dc.DrawRectangle(x1-half, y, s.tileSize, tileEnd-y)
		dc.Fill()
	}
}

// shade scales the base color by a factor in [0.7, 1.3), clamped per channel.
func (s *mosaicStyle) shade() color.NRGBA {
	factor := 0.7 + s.rng.Float64()*0.6
	scale := func(c uint8) uint8 {
		v := int(float64(c) * factor)
		if v > 255 {
			v = 255
		}

		return uint8(v)
	}

	return color.NRGBA{R: scale(s.color.R), G: scale(s.color.G), B: scale(s.color.B), A: 0xFF}
}

// snakeStyle lays overlapping round scales along the segment, each filled
// with a randomly shaded tint and outlined darker, like a serpent's body.
// The rng is seeded by Options.StyleSeed, so the same seed re-renders
// byte-identically.
type snakeStyle struct {
	color     color.NRGBA
	scaleSize float64
	variation float64
	rng       *rand.Rand
}

func (s *snakeStyle) DrawWall(dc *gg.Context, x1, y1, x2, y2 float64) {
	half := s.scaleSize / 2
	// Scales overlap slightly so no wall shows through between them.
	step := s.scaleSize - 2
	if step < 1 {
		step = 1
	}

	drawScale := func(cx, cy float64) {
		dc.SetColor(s.shade())
		dc.DrawCircle(cx, cy, half)
		dc.FillPreserve()
		dc.SetColor(s.outline())
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	if horizontal(x1, y1, x2, y2) {
		start, end := ordered(x1, x2)
		for x := start + half; x < end; x += step {
			drawScale(x, y1)
		}

		return
	}
	start, end := ordered(y1, y2)
	for y := start + half; y < end; y += step {
		drawScale(x1, y)
	}
}

// shade scales the base color by 1 ± variation, clamped per channel.
func (s *snakeStyle) shade() color.NRGBA {
	factor := 1 + (s.rng.Float64()*2-1)*s.variation
	scale := func(c uint8) uint8 {
		v := int(float64(c) * factor)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}

		return uint8(v)
	}

	return color.NRGBA{R: scale(s.color.R), G: scale(s.color.G), B: scale(s.color.B), A: 0xFF}
}

// outline darkens the base color for the scale rim.
func (s *snakeStyle) outline() color.NRGBA {
	dim := func(c uint8) uint8 {
		return uint8(float64(c) * 0.7)
	}

	return color.NRGBA{R: dim(s.color.R), G: dim(s.color.G), B: dim(s.color.B), A: 0xFF}
}

// horizontal reports whether the segment runs along the x axis.
func horizontal(x1, y1, x2, y2 float64) bool {
	dx, dy := x2-x1, y2-y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx > dy
}

// ordered returns a ≤ b.
func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}

	return a, b
}
