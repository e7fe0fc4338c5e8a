//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter updates a single RGBA image from a grid's cells.
type GridPainter struct {
	cols, rows int
	cellSize   int
	style      Style
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a cols x rows grid drawn with
// cellSize-pixel cells.
func NewGridPainter(cols, rows, cellSize int, style Style) *GridPainter {
	w, h := PixelSize(cols, rows, cellSize)
	gp := &GridPainter{cols: cols, rows: rows, cellSize: cellSize, style: style, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it at the
// top-left of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.cols*gp.rows {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.cols, gp.cellSize, gp.style)
	gp.img.ReplacePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}
