package card

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Embedded Go fonts, parsed once. Size is interpreted in pixels (face DPI
// fixed at 72), so config font sizes map directly onto the 300 DPI canvas.
var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *sfnt.Font
	boldFont    *sfnt.Font
)

func parseFonts() {
	regularFont, fontErr = opentype.Parse(goregular.TTF)
	if fontErr != nil {
		fontErr = fmt.Errorf("card: parse regular font: %w", fontErr)

		return
	}
	boldFont, fontErr = opentype.Parse(gobold.TTF)
	if fontErr != nil {
		fontErr = fmt.Errorf("card: parse bold font: %w", fontErr)
	}
}

// newFace builds a font.Face at the given pixel size.
func newFace(f *sfnt.Font, sizePx int) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("card: build face: %w", err)
	}

	return face, nil
}

// regularFace returns the embedded Go Regular at sizePx pixels.
func regularFace(sizePx int) (font.Face, error) {
	fontOnce.Do(parseFonts)
	if fontErr != nil {
		return nil, fontErr
	}

	return newFace(regularFont, sizePx)
}

// boldFace returns the embedded Go Bold at sizePx pixels.
func boldFace(sizePx int) (font.Face, error) {
	fontOnce.Do(parseFonts)
	if fontErr != nil {
		return nil, fontErr
	}

	return newFace(boldFont, sizePx)
}
