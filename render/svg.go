package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/rsolari/valentines-cards/maze"
)

// WriteSVG renders m as a vector image for print shops that prefer
// scalable artwork over raster proofs. Geometry matches Image exactly;
// wall styles collapse to solid strokes since beads and tiles are raster
// textures.
//
// The same validation applies as for Image: sizing, colors, and style name
// are checked before a single element is emitted.
//
// Complexity: O(W×H) emitted elements.
func WriteSVG(m *maze.Maze, w io.Writer, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	lay, err := computeLayout(m, o)
	if err != nil {
		return err
	}
	// Validate all colors up front, mirroring the raster path.
	for _, hex := range []string{o.Background, o.WallColor, o.StartColor, o.EndColor, o.SolutionColor} {
		if _, err = ParseHex(hex); err != nil {
			return err
		}
	}
	if _, ok := styles[o.Style]; !ok {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownStyle, o.Style, StyleNames())
	}

	canvas := svg.New(w)
	canvas.Start(lay.canvasW, lay.canvasH)
	canvas.Rect(0, 0, lay.canvasW, lay.canvasH, "fill:"+o.Background)

	if o.ShowSolution {
		path, pathErr := m.SolutionPath()
		if pathErr != nil {
			return pathErr
		}
		if len(path) >= 2 {
			xs := make([]int, len(path))
			ys := make([]int, len(path))
			for i, p := range path {
				x, y := cellCenter(lay, p)
				xs[i], ys[i] = int(x), int(y)
			}
			canvas.Polyline(xs, ys, fmt.Sprintf(
				"fill:none;stroke:%s;stroke-width:%d;stroke-linecap:round;stroke-linejoin:round",
				o.SolutionColor, o.CellSize/4))
		}
	}

	wallStyle := fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:square",
		o.WallColor, o.WallThickness)
	forEachWall(m, lay, func(x1, y1, x2, y2 float64) {
		canvas.Line(int(x1), int(y1), int(x2), int(y2), wallStyle)
	})

	ex, ey := cellCenter(lay, m.Entrance)
	canvas.Circle(int(ex), int(ey), int(lay.cell*0.3), "fill:"+o.StartColor)

	gx, gy := cellCenter(lay, m.Exit)
	side := int(lay.cell * 0.6)
	canvas.Rect(int(gx)-side/2, int(gy)-side/2, side, side, "fill:"+o.EndColor)

	canvas.End()

	return nil
}
