package card

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/rsolari/valentines-cards/cardconfig"
	"github.com/rsolari/valentines-cards/maze"
	"github.com/rsolari/valentines-cards/pattern"
	"github.com/rsolari/valentines-cards/render"
)

// ErrDoesNotFit indicates a maze block larger than the space inside the
// card borders.
var ErrDoesNotFit = errors.New("card: maze block does not fit inside the borders")

// Front layout constants, in pixels on the 750×1050 canvas. The header
// sits high, the pun line low, and the hero fills the zone between.
const (
	innerMarginTop    = 54
	innerMarginBottom = 54
	innerMarginSide   = 48
	headerTopPadding  = 78
	heroGap           = 72
	punBottomPadding  = 84
	creditLift        = 58 // credit baseline above the bottom border strip
)

// Back layout constants.
const (
	mazeMargin     = 60  // inset from the card edge to the maze area
	textAreaHeight = 100 // reserved strip under the maze for the message
	labelFontSize  = 14
	labelGap       = 6
)

// speckleRate and the shade range reproduce the aged-pottery texture:
// a sparse scatter of randomly darkened pixels.
const speckleRate = 0.03

// ComposeFront renders the greeting face: Greek-key frame, hero artwork
// (or a harlequin placeholder when hero is nil and no image is configured),
// header line, and the three-part pun line on a shared baseline.
func ComposeFront(cfg cardconfig.Config, hero image.Image) (image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, fg, err := palette(cfg)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.SetColor(bg)
	dc.Clear()

	painter := borderPainter{fg: fg, bg: bg}
	painter.drawFrame(dc, float64(cfg.Width), float64(cfg.Height), float64(cfg.BorderWidth))

	headerFace, err := boldFace(cfg.FrontText.HeaderFontSize)
	if err != nil {
		return nil, err
	}
	punFace, err := regularFace(cfg.FrontText.PunFontSize)
	if err != nil {
		return nil, err
	}
	punBigFace, err := boldFace(cfg.FrontText.PunEmphasisFontSize)
	if err != nil {
		return nil, err
	}

	centerX := float64(cfg.Width) / 2

	// 1. Header, centered near the top.
	dc.SetFontFace(headerFace)
	headerW, headerH := dc.MeasureString(cfg.FrontText.Header)
	headerTop := float64(innerMarginTop + headerTopPadding)
	dc.SetColor(fg)
	dc.DrawString(cfg.FrontText.Header, centerX-headerW/2, headerTop+headerH)

	// 2. Pun line, three segments sharing one baseline near the bottom.
	dc.SetFontFace(punFace)
	w1, _ := dc.MeasureString(cfg.FrontText.PunPrefix)
	w3, _ := dc.MeasureString(cfg.FrontText.PunSuffix)
	dc.SetFontFace(punBigFace)
	w2, bigH := dc.MeasureString(cfg.FrontText.PunEmphasis)

	punBaseline := float64(cfg.Height - innerMarginBottom - punBottomPadding)
	punX := centerX - (w1+w2+w3)/2

	// 3. Hero artwork in the zone between header and pun.
	zoneTop := headerTop + headerH + heroGap
	zoneBottom := punBaseline - bigH - heroGap
	zoneW := cfg.Width - 2*innerMarginSide
	zoneH := int(zoneBottom - zoneTop)
	if zoneH < 1 {
		return nil, ErrDoesNotFit
	}

	if hero == nil && cfg.HeroImage == "" {
		hero, err = pattern.Valentine(
			pattern.WithSize(zoneW, zoneH),
			pattern.WithTexture(false),
		)
		if err != nil {
			return nil, err
		}
	}
	if hero != nil {
		fitted := imaging.Fit(hero, zoneW, zoneH, imaging.Lanczos)
		hx := int(centerX) - fitted.Bounds().Dx()/2 + cfg.HeroNudgeX
		hy := int(zoneTop) + (zoneH-fitted.Bounds().Dy())/2
		dc.DrawImage(fitted, hx, hy)
	}

	dc.SetColor(fg)
	dc.SetFontFace(punFace)
	dc.DrawString(cfg.FrontText.PunPrefix, punX, punBaseline)
	dc.DrawString(cfg.FrontText.PunSuffix, punX+w1+w2, punBaseline)
	dc.SetFontFace(punBigFace)
	dc.DrawString(cfg.FrontText.PunEmphasis, punX+w1, punBaseline)

	// 4. Artist credit, right-aligned just above the bottom border.
	if cfg.FrontText.Credit != "" {
		creditFace, err := regularFace(cfg.FrontText.CreditFontSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(creditFace)
		creditW, _ := dc.MeasureString(cfg.FrontText.Credit)
		dc.SetColor(softenCredit(fg))
		dc.DrawString(cfg.FrontText.Credit,
			float64(cfg.Width-innerMarginSide)-creditW,
			float64(cfg.Height-creditLift))
	}

	return finish(dc.Image(), cfg), nil
}

// ComposeBack renders the puzzle face: Greek-key frame, the maze block
// centered in the interior, start/end labels at the corner markers, and
// the message line under the maze.
func ComposeBack(cfg cardconfig.Config) (image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, fg, err := palette(cfg)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.SetColor(bg)
	dc.Clear()

	painter := borderPainter{fg: fg, bg: bg}
	painter.drawFrame(dc, float64(cfg.Width), float64(cfg.Height), float64(cfg.BorderWidth))

	// 1. Fit check: the tight-fit maze block against the interior.
	availW := cfg.Width - 2*mazeMargin
	availH := cfg.Height - 2*mazeMargin - textAreaHeight
	blockW := cfg.Maze.Width * cfg.Maze.CellSize
	blockH := cfg.Maze.Height * cfg.Maze.CellSize
	if blockW > availW || blockH > availH {
		return nil, fmt.Errorf("%w: %dx%d block in %dx%d interior",
			ErrDoesNotFit, blockW, blockH, availW, availH)
	}

	// 2. Generate and render the maze.
	m, err := maze.Generate(cfg.Maze.Width, cfg.Maze.Height,
		maze.WithAlgorithm(maze.Algorithm(cfg.Maze.Algorithm)),
		maze.WithSeed(cfg.Maze.Seed),
	)
	if err != nil {
		return nil, err
	}
	block, err := render.Image(m,
		render.WithCellSize(cfg.Maze.CellSize),
		render.WithStyle(cfg.Maze.WallStyle),
		render.WithWallThickness(cfg.Maze.WallThickness),
		render.WithBackground(cfg.Colors.Primary),
		render.WithWallColor(cfg.WallHex()),
		render.WithMarkerColors(cfg.Colors.Accent, cfg.Colors.Accent),
		render.WithMosaicTiles(cfg.Maze.TileSize, cfg.Maze.TileGap),
		render.WithDots(cfg.Maze.DotSize, cfg.Maze.DotGap),
		render.WithSnakeScales(cfg.Maze.ScaleSize, cfg.Maze.ScaleVariation),
		render.WithStyleSeed(cfg.Maze.Seed),
	)
	if err != nil {
		return nil, err
	}

	mazeX := (cfg.Width - blockW) / 2
	mazeY := mazeMargin + (availH-blockH)/2
	dc.DrawImage(block, mazeX, mazeY)

	// 3. Start and end labels beside the corner markers.
	labelFace, err := regularFace(labelFontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(labelFace)
	dc.SetColor(fg)

	cell := float64(cfg.Maze.CellSize)
	startW, _ := dc.MeasureString(cfg.BackText.StartLabel)
	dc.DrawString(cfg.BackText.StartLabel,
		float64(mazeX)+cell/2-startW/2,
		float64(mazeY)-labelGap)
	endW, _ := dc.MeasureString(cfg.BackText.EndLabel)
	dc.DrawString(cfg.BackText.EndLabel,
		float64(mazeX+blockW)-cell/2-endW/2,
		float64(mazeY+blockH)+labelGap+labelFontSize)

	// 4. Message and credit under the maze.
	msgFace, err := boldFace(cfg.BackText.MessageFontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(msgFace)
	msgW, _ := dc.MeasureString(cfg.BackText.Message)
	dc.DrawString(cfg.BackText.Message,
		(float64(cfg.Width)-msgW)/2,
		float64(cfg.Height-textAreaHeight-20+cfg.BackText.MessageFontSize))

	if cfg.BackText.Credit != "" {
		creditFace, err := regularFace(cfg.BackText.CreditFontSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(creditFace)
		creditW, _ := dc.MeasureString(cfg.BackText.Credit)
		dc.DrawString(cfg.BackText.Credit,
			(float64(cfg.Width)-creditW)/2,
			float64(cfg.Height-70+cfg.BackText.CreditFontSize))
	}

	return finish(dc.Image(), cfg), nil
}

// palette parses the primary and secondary config colors.
func palette(cfg cardconfig.Config) (bg, fg color.NRGBA, err error) {
	if bg, err = render.ParseHex(cfg.Colors.Primary); err != nil {
		return bg, fg, err
	}
	fg, err = render.ParseHex(cfg.Colors.Secondary)

	return bg, fg, err
}

// softenCredit lightens the foreground so the credit line does not
// compete with the artwork.
func softenCredit(fg color.NRGBA) color.NRGBA {
	lift := func(v uint8) uint8 {
		return uint8(uint16(v) + (255-uint16(v))/6)
	}

	return color.NRGBA{R: lift(fg.R), G: lift(fg.G), B: lift(fg.B), A: 255}
}

// finish applies the aged-pottery speckle when the config asks for it.
func finish(img image.Image, cfg cardconfig.Config) image.Image {
	if !cfg.AddTexture {
		return img
	}

	return speckle(img, cfg.Maze.Seed)
}

// speckle darkens a sparse random scatter of pixels, deterministic per
// seed.
func speckle(img image.Image, seed int64) image.Image {
	out := imaging.Clone(img)
	rng := rand.New(rand.NewSource(seed))

	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rng.Float64() >= speckleRate {
				continue
			}
			factor := 0.7 + rng.Float64()*0.2
			i := out.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				out.Pix[i+c] = uint8(float64(out.Pix[i+c]) * factor)
			}
		}
	}

	return out
}
