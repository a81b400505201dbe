//go:build ebiten

package render

import (
	"voidlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads cell states into a one-pixel-per-cell image and draws
// it scaled to the cell size, with optional grid lines on top.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{palette: DefaultPalette()}
	gp.ensure(w, h)
	return gp
}

func (gp *GridPainter) ensure(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Draw renders grid, overlays ghost and, when the cells are large enough,
// draws separators. The painter follows grid size changes.
func (gp *GridPainter) Draw(dst *ebiten.Image, grid, ghost *core.Grid, cellSize int) {
	if grid == nil {
		return
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	gp.ensure(grid.W, grid.H)

	var ghostCells []core.CellState
	if ghost != nil {
		ghostCells = ghost.Cells()
	}
	fillStateRGBA(gp.buf, grid.Cells(), ghostCells, &gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)

	if cellSize >= MinGridLineCell {
		gp.drawLines(dst, cellSize)
	}
}

func (gp *GridPainter) drawLines(dst *ebiten.Image, cellSize int) {
	width := float32(gp.w * cellSize)
	height := float32(gp.h * cellSize)
	for x := 0; x <= gp.w; x++ {
		fx := float32(x * cellSize)
		vector.StrokeLine(dst, fx, 0, fx, height, 1, GridLine, false)
	}
	for y := 0; y <= gp.h; y++ {
		fy := float32(y * cellSize)
		vector.StrokeLine(dst, 0, fy, width, fy, 1, GridLine, false)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
