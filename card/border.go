package card

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Meander geometry. A horizontal border is tiled with key units of
// keySize pixels; each unit draws a seven-segment spiral hooked into the
// two rails, alternating orientation so adjacent units interlock.
const (
	borderKeySize   = 32
	borderLineWidth = 3
	borderStripLong = 45 // strip thickness for horizontal borders
	borderStripTall = 40 // strip thickness for vertical borders
	cornerSize      = 40
	palmetteSize    = 36
	palmettePetals  = 9
)

type borderPainter struct {
	fg color.Color
	bg color.Color
}

func (b borderPainter) line(dc *gg.Context, x1, y1, x2, y2 float64) {
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

// keyBorderH paints a horizontal Greek key strip covering the rectangle
// at (x, y) with the given width and height.
func (b borderPainter) keyBorderH(dc *gg.Context, x, y, width, height float64) {
	dc.SetColor(b.bg)
	dc.DrawRectangle(x, y, width, height)
	dc.Fill()

	dc.SetColor(b.fg)
	dc.SetLineWidth(borderLineWidth)
	dc.SetLineCapSquare()

	key := float64(borderKeySize)
	step := key / 4
	topY := y + (height-key)/2
	botY := topY + key

	b.line(dc, x, topY, x+width, topY)
	b.line(dc, x, botY, x+width, botY)

	units := int(math.Ceil(width / key))
	for i := 0; i < units; i++ {
		ux := x + float64(i)*key
		if i%2 == 0 {
			b.line(dc, ux, topY, ux, botY-step)
			b.line(dc, ux, botY-step, ux+step*3, botY-step)
			b.line(dc, ux+step*3, botY-step, ux+step*3, topY+step)
			b.line(dc, ux+step*3, topY+step, ux+step, topY+step)
			b.line(dc, ux+step, topY+step, ux+step, botY-step*2)
			b.line(dc, ux+step, botY-step*2, ux+step*2, botY-step*2)
			b.line(dc, ux+step*2, botY-step*2, ux+step*2, topY+step*2)
		} else {
			b.line(dc, ux, botY, ux, topY+step)
			b.line(dc, ux, topY+step, ux+step*3, topY+step)
			b.line(dc, ux+step*3, topY+step, ux+step*3, botY-step)
			b.line(dc, ux+step*3, botY-step, ux+step, botY-step)
			b.line(dc, ux+step, botY-step, ux+step, topY+step*2)
			b.line(dc, ux+step, topY+step*2, ux+step*2, topY+step*2)
			b.line(dc, ux+step*2, topY+step*2, ux+step*2, botY-step*2)
		}
	}
}

// keyBorderV is the vertical counterpart of keyBorderH.
func (b borderPainter) keyBorderV(dc *gg.Context, x, y, width, height float64) {
	dc.SetColor(b.bg)
	dc.DrawRectangle(x, y, width, height)
	dc.Fill()

	dc.SetColor(b.fg)
	dc.SetLineWidth(borderLineWidth)
	dc.SetLineCapSquare()

	key := float64(borderKeySize)
	step := key / 4
	leftX := x + (width-key)/2
	rightX := leftX + key

	b.line(dc, leftX, y, leftX, y+height)
	b.line(dc, rightX, y, rightX, y+height)

	units := int(math.Ceil(height / key))
	for i := 0; i < units; i++ {
		uy := y + float64(i)*key
		if i%2 == 0 {
			b.line(dc, leftX, uy, rightX-step, uy)
			b.line(dc, rightX-step, uy, rightX-step, uy+step*3)
			b.line(dc, rightX-step, uy+step*3, leftX+step, uy+step*3)
			b.line(dc, leftX+step, uy+step*3, leftX+step, uy+step)
			b.line(dc, leftX+step, uy+step, rightX-step*2, uy+step)
			b.line(dc, rightX-step*2, uy+step, rightX-step*2, uy+step*2)
			b.line(dc, rightX-step*2, uy+step*2, leftX+step*2, uy+step*2)
		} else {
			b.line(dc, rightX, uy, leftX+step, uy)
			b.line(dc, leftX+step, uy, leftX+step, uy+step*3)
			b.line(dc, leftX+step, uy+step*3, rightX-step, uy+step*3)
			b.line(dc, rightX-step, uy+step*3, rightX-step, uy+step)
			b.line(dc, rightX-step, uy+step, leftX+step*2, uy+step)
			b.line(dc, leftX+step*2, uy+step, leftX+step*2, uy+step*2)
			b.line(dc, leftX+step*2, uy+step*2, rightX-step*2, uy+step*2)
		}
	}
}

// palmette paints a circular fan of petals centered at (cx, cy).
// rotation is the angle in degrees of the first petal.
func (b borderPainter) palmette(dc *gg.Context, cx, cy, rotation float64) {
	radius := float64(palmetteSize) / 2

	dc.SetColor(b.bg)
	dc.DrawCircle(cx, cy, radius)
	dc.FillPreserve()
	dc.SetColor(b.fg)
	dc.SetLineWidth(2)
	dc.Stroke()

	petalLen := radius * 0.7
	angleStep := 360.0 / palmettePetals
	for i := 0; i < palmettePetals; i++ {
		angle := gg.Radians(rotation + float64(i)*angleStep)
		ex := cx + petalLen*math.Cos(angle)
		ey := cy + petalLen*math.Sin(angle)
		b.line(dc, cx, cy, ex, ey)
		dc.DrawCircle(ex, ey, 2)
		dc.Fill()
	}

	dc.DrawCircle(cx, cy, 3)
	dc.Fill()
}

// drawFrame paints the four Greek key strips and the palmette corner
// squares around a width x height canvas.
func (b borderPainter) drawFrame(dc *gg.Context, width, height, borderWidth float64) {
	w := width
	h := height

	b.keyBorderH(dc, borderWidth, 5, w-2*borderWidth, borderStripLong)
	b.keyBorderH(dc, borderWidth, h-50, w-2*borderWidth, borderStripLong)
	b.keyBorderV(dc, 5, borderWidth, borderStripTall, h-2*borderWidth)
	b.keyBorderV(dc, w-45, borderWidth, borderStripTall, h-2*borderWidth)

	corner := func(x, y, cx, cy, rotation float64) {
		dc.SetColor(b.bg)
		dc.DrawRectangle(x, y, cornerSize, cornerSize+5)
		dc.FillPreserve()
		dc.SetColor(b.fg)
		dc.SetLineWidth(borderLineWidth)
		dc.Stroke()
		b.palmette(dc, cx, cy, rotation)
	}

	corner(5, 5, 25, 28, 135)
	corner(w-45, 5, w-25, 28, 225)
	corner(5, h-50, 25, h-27, 315)
	corner(w-45, h-50, w-25, h-27, 45)
}
