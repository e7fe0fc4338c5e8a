package render

import "image/color"

// Style selects the colours used to paint cells.
type Style struct {
	Alive color.RGBA
	Dead  color.RGBA
	Gap   color.RGBA
	// Gradient tints alive cells by position (red across, green down)
	// instead of using Alive.
	Gradient bool
}

// DefaultStyle paints white dead cells on a grey grid with gradient-tinted
// alive cells.
func DefaultStyle() Style {
	return Style{
		Alive:    color.RGBA{A: 255},
		Dead:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Gap:      color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Gradient: true,
	}
}

// PixelSize returns the canvas size needed for a cols x rows grid.
func PixelSize(cols, rows, cellSize int) (int, int) {
	return cols * cellSize, rows * cellSize
}

// gradient returns the position tint for the cell at (col, row).
func gradient(col, row, cols, rows int) color.RGBA {
	return color.RGBA{
		R: uint8(255 * col / cols),
		G: uint8(255 * row / rows),
		B: 153,
		A: 255,
	}
}

// fillCellsRGBA expands row-major cells into RGBA pixels in buf. Each cell
// covers cellSize x cellSize pixels; when cellSize > 1 the last pixel
// column and row of every cell is painted with the gap colour.
func fillCellsRGBA(buf []byte, cells []uint8, cols, cellSize int, style Style) {
	if cols <= 0 || cellSize <= 0 {
		return
	}
	rows := len(cells) / cols
	width := cols * cellSize
	for py := 0; py < rows*cellSize; py++ {
		row := py / cellSize
		rowGap := cellSize > 1 && py%cellSize == cellSize-1
		for px := 0; px < width; px++ {
			col := px / cellSize
			var c color.RGBA
			switch {
			case rowGap || (cellSize > 1 && px%cellSize == cellSize-1):
				c = style.Gap
			case cells[row*cols+col] == 0:
				c = style.Dead
			case style.Gradient:
				c = gradient(col, row, cols, rows)
			default:
				c = style.Alive
			}
			base := (py*width + px) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}
