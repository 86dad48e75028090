package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsolari/valentines-cards/card"
	"github.com/rsolari/valentines-cards/cardconfig"
)

func TestTradingCard_PixelBoxes(t *testing.T) {
	g := card.TradingCard()

	w, h := g.TrimPx()
	assert.Equal(t, 750, w)
	assert.Equal(t, 1050, h)

	// Bleed adds 0.125" per side.
	w, h = g.FullPx()
	assert.Equal(t, 825, w)
	assert.Equal(t, 1125, h)

	// Safe box loses 0.125" per side.
	w, h = g.SafePx()
	assert.Equal(t, 675, w)
	assert.Equal(t, 975, h)

	assert.Equal(t, 38, g.BleedPx())
	assert.Equal(t, 75, g.SafeInsetPx())
}

// TestFromPixels_RoundTrip verifies the default card face prints at the
// standard trading-card trim size.
func TestFromPixels_RoundTrip(t *testing.T) {
	cfg := cardconfig.Default()
	g := card.FromPixels(cfg.Width, cfg.Height, card.DPI)

	assert.Equal(t, card.TradingCard(), g)

	w, h := g.TrimPx()
	assert.Equal(t, cfg.Width, w)
	assert.Equal(t, cfg.Height, h)
}

func TestGeometry_String(t *testing.T) {
	assert.Equal(t, `2.50"x3.50" at 300 DPI`, card.TradingCard().String())
	assert.Equal(t, `3.50"x2.50" at 300 DPI`, card.TradingCard().Landscape().String())
}

func TestGeometry_Landscape(t *testing.T) {
	g := card.TradingCard().Landscape()

	w, h := g.TrimPx()
	assert.Equal(t, 1050, w)
	assert.Equal(t, 750, h)

	// Rotating twice restores portrait.
	assert.Equal(t, card.TradingCard(), g.Landscape())
}

func TestGeometry_CustomDPI(t *testing.T) {
	g := card.TradingCard()
	g.DPI = 150

	w, h := g.TrimPx()
	assert.Equal(t, 375, w)
	assert.Equal(t, 525, h)
	assert.Equal(t, 19, g.BleedPx())
}
