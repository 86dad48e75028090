package card

import (
	"fmt"
	"math"
)

// Print constants for US trading cards.
const (
	// DPI is the print resolution in dots per inch.
	DPI = 300
	// BleedInches is the margin trimmed off after printing.
	BleedInches = 0.125
	// SafeMarginInches is the inset no critical content may cross.
	SafeMarginInches = 0.125
	// TradingWidthInches and TradingHeightInches are the portrait trim size.
	TradingWidthInches  = 2.5
	TradingHeightInches = 3.5
)

// Geometry models one physical card format. All box methods return pixel
// values at the configured DPI.
type Geometry struct {
	// WidthIn and HeightIn are the trim dimensions in inches.
	WidthIn, HeightIn float64
	// BleedIn extends beyond the trim line on every side.
	BleedIn float64
	// MarginIn insets the safe box from the trim line on every side.
	MarginIn float64
	// DPI is the print resolution.
	DPI int
}

// TradingCard returns the portrait 2.5″×3.5″ format at 300 DPI with
// standard bleed and safe margin.
func TradingCard() Geometry {
	return Geometry{
		WidthIn:  TradingWidthInches,
		HeightIn: TradingHeightInches,
		BleedIn:  BleedInches,
		MarginIn: SafeMarginInches,
		DPI:      DPI,
	}
}

// FromPixels derives the geometry of an existing raster: the trim size a
// w×h image prints at the given DPI, with standard bleed and safe margin.
func FromPixels(w, h, dpi int) Geometry {
	return Geometry{
		WidthIn:  float64(w) / float64(dpi),
		HeightIn: float64(h) / float64(dpi),
		BleedIn:  BleedInches,
		MarginIn: SafeMarginInches,
		DPI:      dpi,
	}
}

// String reports the trim size the way print orders quote it, for example
// `2.50"x3.50" at 300 DPI`.
func (g Geometry) String() string {
	return fmt.Sprintf("%.2f\"x%.2f\" at %d DPI", g.WidthIn, g.HeightIn, g.DPI)
}

// Landscape returns g rotated a quarter turn, for designs like the
// maze-only back that run wide.
func (g Geometry) Landscape() Geometry {
	g.WidthIn, g.HeightIn = g.HeightIn, g.WidthIn

	return g
}

// px converts inches to whole pixels at the geometry's DPI.
func (g Geometry) px(inches float64) int {
	return int(math.Round(inches * float64(g.DPI)))
}

// TrimPx returns the trim box: the final card size after cutting.
func (g Geometry) TrimPx() (w, h int) {
	return g.px(g.WidthIn), g.px(g.HeightIn)
}

// FullPx returns the full artboard including bleed on every side; artwork
// files are produced at this size.
func (g Geometry) FullPx() (w, h int) {
	return g.px(g.WidthIn + 2*g.BleedIn), g.px(g.HeightIn + 2*g.BleedIn)
}

// SafePx returns the safe box inside which all text and critical content
// must stay.
func (g Geometry) SafePx() (w, h int) {
	return g.px(g.WidthIn - 2*g.MarginIn), g.px(g.HeightIn - 2*g.MarginIn)
}

// BleedPx returns the bleed width in pixels on one side.
func (g Geometry) BleedPx() int {
	return g.px(g.BleedIn)
}

// SafeInsetPx returns the distance from the artboard edge to the safe box:
// bleed plus safe margin.
func (g Geometry) SafeInsetPx() int {
	return g.px(g.BleedIn + g.MarginIn)
}
