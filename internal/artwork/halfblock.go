package artwork

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// HalfBlock is the glyph used for every rendered cell. The foreground
// paints its upper half, the background the lower half, so one terminal
// cell carries two vertically stacked pixels.
const HalfBlock = '▀'

// Cell is one rendered terminal cell: the colors of the two source
// pixels it encodes.
type Cell struct {
	FG color.NRGBA // top pixel
	BG color.NRGBA // bottom pixel
}

// Render downsamples img into a rows×cols grid of half-block cells.
//
// The image is resized to exactly (cols, rows*2) pixels with a linear
// filter; the filter is fixed so output is reproducible. Row r, column
// c takes pixel (c, 2r) as foreground and (c, 2r+1) as background.
// A zero cols or rows yields an empty grid. Pure function, safe to
// call from any goroutine.
func Render(img image.Image, cols, rows int) [][]Cell {
	if img == nil || cols <= 0 || rows <= 0 {
		return nil
	}

	resized := imaging.Resize(img, cols, rows*2, imaging.Linear)

	grid := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		line := make([]Cell, cols)
		for c := 0; c < cols; c++ {
			line[c] = Cell{
				FG: resized.NRGBAAt(c, 2*r),
				BG: resized.NRGBAAt(c, 2*r+1),
			}
		}
		grid[r] = line
	}
	return grid
}
