package render

import (
	"image/color"

	"voidlife/internal/core"
)

// MinGridLineCell is the smallest cell size, in pixels, that gets grid lines.
const MinGridLineCell = 4

// Palette maps each cell state to its display colour.
type Palette [core.Ghost + 1]color.RGBA

// DefaultPalette returns the standard colours. Dead cells are the background.
func DefaultPalette() Palette {
	return Palette{
		core.Dead:   {R: 12, G: 12, B: 16, A: 255},
		core.Live:   {R: 236, G: 236, B: 236, A: 255},
		core.Void:   {R: 120, G: 40, B: 160, A: 255},
		core.Bright: {R: 255, G: 214, B: 64, A: 255},
		core.Ghost:  {R: 90, G: 170, B: 230, A: 140},
	}
}

// Color returns the colour for s. Unknown states render as Dead.
func (p *Palette) Color(s core.CellState) color.RGBA {
	if int(s) >= len(p) {
		return p[core.Dead]
	}
	return p[s]
}

// Shade returns the colour for s, with the translucent Ghost colour laid on
// top when ghosted.
func (p *Palette) Shade(s core.CellState, ghosted bool) color.RGBA {
	col := p.Color(s)
	if ghosted {
		col = over(p[core.Ghost], col)
	}
	return col
}

// GridLine is the colour of the cell separators.
var GridLine = color.RGBA{R: 40, G: 40, B: 48, A: 255}

// fillStateRGBA converts cells into RGBA pixels in buf. A Ghost cell in ghost
// is drawn over whatever the simulation cell holds; ghost may be nil.
func fillStateRGBA(buf []byte, cells, ghost []core.CellState, palette *Palette) {
	if len(ghost) != len(cells) {
		ghost = nil
	}
	for i, c := range cells {
		col := palette.Shade(c, ghost != nil && ghost[i] == core.Ghost)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// over composites the translucent src onto the opaque dst.
func over(src, dst color.RGBA) color.RGBA {
	a := uint32(src.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	return color.RGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 255}
}
