// Package card holds print geometry and composes the final card faces.
//
// What:
//
//   - Geometry converts between inches and pixels at print DPI and models
//     the trim, bleed, and safe-margin boxes of a physical trading card.
//   - ComposeFront assembles the greeting face: harlequin background, hero
//     artwork, header, and the pun line.
//   - ComposeBack assembles the puzzle face: solid background, Greek-key
//     borders, the rendered maze block, message, start/end labels, credit.
//
// Why:
//
//   - Print shops cut along the trim line with mechanical tolerance; art
//     must extend into the bleed and text must stay inside the safe margin
//     or risk being clipped.
//
// Reference: 2.5″ × 3.5″ trading card at 300 DPI = 750 × 1050 px trim,
// 0.125″ bleed and safe margin on every side.
//
// Errors:
//
//   - ErrDoesNotFit: an art block is larger than the area reserved for it.
//   - cardconfig.ErrInvalidConfig and render.ErrInvalidColor pass through.
//
// Text is set in the embedded Go fonts, so composition needs no font files
// on disk.
package card
