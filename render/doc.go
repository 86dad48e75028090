// Package render rasterizes mazes to raster (PNG) and vector (SVG) images
// suitable for print.
//
// What:
//
//   - Image draws a maze onto an in-memory canvas: background, wall
//     segments in a pluggable style, entrance/exit markers, and an optional
//     solution overlay.
//   - WritePNG / WriteSVG persist the result; nothing is written until the
//     whole frame validates and renders.
//   - Wall styles: "solid" lines, "dotted" beads, "mosaic" tiles with
//     seeded shade variation, and "snake" overlapping serpent scales.
//     Styles are registered by name.
//
// Why:
//
//   - The maze is the puzzle on the back of a printed trading card; the
//     canvas must match the print resolution exactly, pixel for pixel.
//
// Layout:
//
//   - Each cell maps to a CellSize×CellSize pixel block. With no explicit
//     canvas the image is a tight fit (W×CellSize by H×CellSize); an
//     explicit canvas centers the maze and must be at least that large.
//
// Errors:
//
//   - ErrNilMaze: no maze supplied.
//   - ErrInvalidCellSize: cell size or wall thickness below 1.
//   - ErrCanvasTooSmall: requested canvas cannot hold the grid at the
//     requested cell size.
//   - ErrUnknownStyle: wall style name not registered.
//   - ErrInvalidColor: color string is not #RGB or #RRGGBB hex.
//
// Complexity: O(W×H) draw calls; memory proportional to the canvas area.
package render
