// Package render draws mazes onto pixel canvases via fogleman/gg.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/fogleman/gg"

	"github.com/rsolari/valentines-cards/maze"
)

// layout holds the resolved pixel geometry of one render.
type layout struct {
	canvasW, canvasH int
	ox, oy           float64 // top-left corner of the maze block
	cell             float64
}

// computeLayout validates sizing options against the maze and resolves the
// canvas dimensions and centering offsets.
//
// Rules:
//   - CellSize ≥ 1 and WallThickness ≥ 1, else ErrInvalidCellSize.
//   - A zero Width (or Height) means tight fit on that axis.
//   - An explicit canvas must hold the maze extent, else ErrCanvasTooSmall.
func computeLayout(m *maze.Maze, o Options) (layout, error) {
	if o.CellSize < 1 || o.WallThickness < 1 {
		return layout{}, fmt.Errorf("%w: cell %d, thickness %d",
			ErrInvalidCellSize, o.CellSize, o.WallThickness)
	}

	mazeW := m.Width * o.CellSize
	mazeH := m.Height * o.CellSize

	canvasW, canvasH := o.Width, o.Height
	if canvasW == 0 {
		canvasW = mazeW
	}
	if canvasH == 0 {
		canvasH = mazeH
	}
	if canvasW < mazeW || canvasH < mazeH {
		return layout{}, fmt.Errorf("%w: canvas %d×%d, maze needs %d×%d",
			ErrCanvasTooSmall, canvasW, canvasH, mazeW, mazeH)
	}

	return layout{
		canvasW: canvasW,
		canvasH: canvasH,
		ox:      float64((canvasW - mazeW) / 2),
		oy:      float64((canvasH - mazeH) / 2),
		cell:    float64(o.CellSize),
	}, nil
}

// Image renders m to an in-memory image.
//
// Steps:
//  1. Validate the maze, sizing, colors, and wall style (fail fast, no
//     partial work).
//  2. Fill the background and, when requested, the solution overlay.
//  3. Draw every closed wall segment in the selected style: each cell's
//     north and west walls, plus the east and south outer borders, so each
//     boundary is drawn exactly once.
//  4. Draw the entrance (circle) and exit (square) markers.
//
// The returned image is exactly the requested canvas size; with no explicit
// canvas it is Width×CellSize by Height×CellSize.
//
// Complexity: O(W×H) draw calls.
func Image(m *maze.Maze, opts ...Option) (image.Image, error) {
	// 1. Validate everything before touching a canvas.
	if m == nil {
		return nil, ErrNilMaze
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	lay, err := computeLayout(m, o)
	if err != nil {
		return nil, err
	}

	bg, err := ParseHex(o.Background)
	if err != nil {
		return nil, err
	}
	wall, err := ParseHex(o.WallColor)
	if err != nil {
		return nil, err
	}
	startC, err := ParseHex(o.StartColor)
	if err != nil {
		return nil, err
	}
	endC, err := ParseHex(o.EndColor)
	if err != nil {
		return nil, err
	}
	style, err := styleByName(o, wall)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(lay.canvasW, lay.canvasH)

	// 2. Background, then the solution underlay so walls stay crisp on top.
	dc.SetColor(bg)
	dc.Clear()
	if o.ShowSolution {
		if err = drawSolution(dc, m, lay, o); err != nil {
			return nil, err
		}
	}

	// 3. Wall segments.
	forEachWall(m, lay, func(x1, y1, x2, y2 float64) {
		style.DrawWall(dc, x1, y1, x2, y2)
	})

	// 4. Entrance and exit markers.
	ex, ey := cellCenter(lay, m.Entrance)
	dc.SetColor(startC)
	dc.DrawCircle(ex, ey, lay.cell*0.3)
	dc.Fill()

	gx, gy := cellCenter(lay, m.Exit)
	side := lay.cell * 0.6
	dc.SetColor(endC)
	dc.DrawRectangle(gx-side/2, gy-side/2, side, side)
	dc.Fill()

	return dc.Image(), nil
}

// drawSolution strokes the unique entrance→exit path through cell centers.
func drawSolution(dc *gg.Context, m *maze.Maze, lay layout, o Options) error {
	sol, err := ParseHex(o.SolutionColor)
	if err != nil {
		return err
	}
	path, err := m.SolutionPath()
	if err != nil {
		return err
	}
	if len(path) < 2 {
		return nil // trivial maze, nothing to trace
	}

	dc.SetColor(sol)
	dc.SetLineWidth(lay.cell / 4)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	x, y := cellCenter(lay, path[0])
	dc.MoveTo(x, y)
	for _, p := range path[1:] {
		x, y = cellCenter(lay, p)
		dc.LineTo(x, y)
	}
	dc.Stroke()

	return nil
}

// cellCenter returns the canvas coordinates of the center of cell p.
func cellCenter(lay layout, p maze.CellPos) (x, y float64) {
	return lay.ox + (float64(p.Col)+0.5)*lay.cell, lay.oy + (float64(p.Row)+0.5)*lay.cell
}

// forEachWall invokes draw once per closed wall segment: the north and west
// side of every cell, plus the east border of the last column and the south
// border of the last row.
func forEachWall(m *maze.Maze, lay layout, draw func(x1, y1, x2, y2 float64)) {
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			p := maze.CellPos{Row: row, Col: col}
			cx := lay.ox + float64(col)*lay.cell
			cy := lay.oy + float64(row)*lay.cell
			if m.HasWall(p, maze.North) {
				draw(cx, cy, cx+lay.cell, cy)
			}
			if m.HasWall(p, maze.West) {
				draw(cx, cy, cx, cy+lay.cell)
			}
		}
	}
	// East border.
	bx := lay.ox + float64(m.Width)*lay.cell
	for row := 0; row < m.Height; row++ {
		p := maze.CellPos{Row: row, Col: m.Width - 1}
		if m.HasWall(p, maze.East) {
			cy := lay.oy + float64(row)*lay.cell
			draw(bx, cy, bx, cy+lay.cell)
		}
	}
	// South border.
	by := lay.oy + float64(m.Height)*lay.cell
	for col := 0; col < m.Width; col++ {
		p := maze.CellPos{Row: m.Height - 1, Col: col}
		if m.HasWall(p, maze.South) {
			cx := lay.ox + float64(col)*lay.cell
			draw(cx, by, cx+lay.cell, by)
		}
	}
}

// WritePNG renders m and writes a PNG file to path. The file is created
// only after the frame has fully rendered, so a failed render leaves no
// partial output.
func WritePNG(m *maze.Maze, path string, opts ...Option) error {
	img, err := Image(m, opts...)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()

		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}

	return nil
}
