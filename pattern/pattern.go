// Package pattern draws the harlequin star background via fogleman/gg and
// disintegration/imaging.
package pattern

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// ErrInvalidSize indicates a canvas or diamond dimension below 1.
var ErrInvalidSize = errors.New("pattern: dimensions must be at least 1")

// Options holds parameters for one background render.
// Use DefaultOptions() for the neutral preset, or Valentine for the warm one.
type Options struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int

	// DiamondWidth and DiamondHeight set the tile geometry.
	DiamondWidth, DiamondHeight int

	// Diamond is the dark checker color, Field the light one.
	Diamond, Field color.NRGBA

	// Star and StarShadow fill and outline the eight-pointed stars.
	Star, StarShadow color.NRGBA

	// Texture enables the vintage pass: per-pixel noise plus a soft blur.
	Texture bool

	// NoiseIntensity bounds the per-channel noise amplitude.
	NoiseIntensity int

	// Seed feeds the star jitter and the noise.
	Seed int64
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns the neutral preset: a 1050×750 canvas (3.5″×2.5″
// at 300 DPI), Mediterranean blue diamonds on aged cream, antique gold
// stars, vintage texture on.
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Width:          1050,
		Height:         750,
		DiamondWidth:   150,
		DiamondHeight:  200,
		Diamond:        color.NRGBA{R: 65, G: 105, B: 170, A: 255},
		Field:          color.NRGBA{R: 245, G: 235, B: 220, A: 255},
		Star:           color.NRGBA{R: 180, G: 130, B: 70, A: 255},
		StarShadow:     color.NRGBA{R: 140, G: 95, B: 50, A: 255},
		Texture:        true,
		NoiseIntensity: 12,
		Seed:           1,
	}
}

// WithSize sets the canvas dimensions in pixels.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width, o.Height = width, height
	}
}

// WithDiamond sets the tile geometry.
func WithDiamond(width, height int) Option {
	return func(o *Options) {
		o.DiamondWidth, o.DiamondHeight = width, height
	}
}

// WithColors sets the four pattern colors.
func WithColors(diamond, field, star, starShadow color.NRGBA) Option {
	return func(o *Options) {
		o.Diamond, o.Field = diamond, field
		o.Star, o.StarShadow = star, starShadow
	}
}

// WithTexture toggles the vintage noise-and-blur pass.
func WithTexture(on bool) Option {
	return func(o *Options) { o.Texture = on }
}

// WithSeed fixes the jitter and noise seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// Harlequin renders the diamond-and-star background.
//
// Steps:
//  1. Validate dimensions.
//  2. Fill the field, then tile diamonds in a checkerboard with one extra
//     ring beyond every edge so the pattern bleeds past the canvas.
//  3. Center an eight-pointed star on each diamond, jittering the gold
//     per star from the seeded source.
//  4. When Texture is on, add per-pixel noise and a 0.5σ gaussian blur.
//
// Complexity: O(cols×rows + W×H).
func Harlequin(opts ...Option) (image.Image, error) {
	// 1. Resolve and validate.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Width < 1 || o.Height < 1 || o.DiamondWidth < 1 || o.DiamondHeight < 1 {
		return nil, fmt.Errorf("%w: canvas %d×%d, diamond %d×%d",
			ErrInvalidSize, o.Width, o.Height, o.DiamondWidth, o.DiamondHeight)
	}

	rng := rand.New(rand.NewSource(o.Seed))
	dc := gg.NewContext(o.Width, o.Height)
	dc.SetColor(o.Field)
	dc.Clear()

	// 2-3. Checkerboard of diamonds with centered stars.
	cols := o.Width/o.DiamondWidth + 2
	rows := 2*o.Height/o.DiamondHeight + 2
	halfW, halfH := float64(o.DiamondWidth)/2, float64(o.DiamondHeight)/2

	for row := -1; row <= rows; row++ {
		for col := -1; col <= cols; col++ {
			cx := float64(col * o.DiamondWidth)
			if row%2 != 0 {
				cx += halfW
			}
			cy := float64(row) * halfH

			if (row+col)%2 == 0 {
				dc.SetColor(o.Diamond)
			} else {
				dc.SetColor(o.Field)
			}
			dc.MoveTo(cx, cy-halfH)
			dc.LineTo(cx+halfW, cy)
			dc.LineTo(cx, cy+halfH)
			dc.LineTo(cx-halfW, cy)
			dc.ClosePath()
			dc.Fill()

			outer := math.Min(float64(o.DiamondWidth), float64(o.DiamondHeight)) / 4
			drawStar(dc, cx, cy, outer, outer*0.4, jitter(o.Star, 15, rng), o.StarShadow)
		}
	}

	img := dc.Image()

	// 4. Vintage pass.
	if o.Texture {
		img = vintage(img, o.NoiseIntensity, rng)
	}

	return img, nil
}

// Valentine renders the background with a warm romance palette: softened
// blue diamonds on pink-tinted cream with brighter gold stars. Caller
// options apply on top of the palette.
func Valentine(opts ...Option) (image.Image, error) {
	warm := WithColors(
		color.NRGBA{R: 70, G: 100, B: 165, A: 255},
		color.NRGBA{R: 255, G: 245, B: 240, A: 255},
		color.NRGBA{R: 185, G: 125, B: 65, A: 255},
		color.NRGBA{R: 145, G: 90, B: 45, A: 255},
	)

	return Harlequin(append([]Option{warm}, opts...)...)
}

// drawStar paints an eight-pointed star centered at (cx,cy): sixteen
// vertices alternating between outer and inner radius, first point at the
// top.
func drawStar(dc *gg.Context, cx, cy, outer, inner float64, fill, outline color.NRGBA) {
	for i := 0; i < 16; i++ {
		angle := math.Pi/8*float64(i) - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(1)
	dc.Stroke()
}

// jitter shifts each channel of c by a uniform offset in [-amount, amount].
func jitter(c color.NRGBA, amount int, rng *rand.Rand) color.NRGBA {
	shift := func(v uint8) uint8 {
		n := int(v) + rng.Intn(2*amount+1) - amount
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}

		return uint8(n)
	}

	return color.NRGBA{R: shift(c.R), G: shift(c.G), B: shift(c.B), A: c.A}
}

// vintage adds per-pixel noise and a soft gaussian blur for a worn-paper
// look.
func vintage(img image.Image, intensity int, rng *rand.Rand) image.Image {
	noisy := imaging.Clone(img)
	for i := 0; i < len(noisy.Pix); i += 4 {
		noise := rng.Intn(2*intensity+1) - intensity
		for ch := 0; ch < 3; ch++ {
			v := int(noisy.Pix[i+ch]) + noise
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			noisy.Pix[i+ch] = uint8(v)
		}
	}

	return imaging.Blur(noisy, 0.5)
}
