package render

import (
	"image/color"

	"voidlife/internal/core"

	"github.com/gdamore/tcell/v2"
)

// TermPainter draws a grid onto a terminal screen, one terminal cell per
// grid cell, leaving the bottom row for a status line.
type TermPainter struct {
	screen  tcell.Screen
	palette Palette
	styles  [2][core.Ghost + 1]tcell.Style
}

// NewTermPainter returns a painter bound to screen.
func NewTermPainter(screen tcell.Screen) *TermPainter {
	tp := &TermPainter{screen: screen, palette: DefaultPalette()}
	for g := range tp.styles {
		for i := range tp.styles[g] {
			col := tp.palette.Shade(core.CellState(i), g == 1)
			tp.styles[g][i] = tcell.StyleDefault.Background(tcellColor(col))
		}
	}
	return tp
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// GridArea returns the number of columns and rows available for the grid.
func (tp *TermPainter) GridArea() (int, int) {
	w, h := tp.screen.Size()
	return w, max(1, h-1)
}

// Draw paints grid with ghost blended on top, then the status line, and shows the
// result.
func (tp *TermPainter) Draw(grid, ghost *core.Grid, status string) {
	tp.screen.Clear()
	for row := 0; row < grid.H; row++ {
		for col := 0; col < grid.W; col++ {
			ghosted := ghost != nil && ghost.Get(row, col) == core.Ghost
			style := tp.styleFor(grid.Get(row, col), ghosted)
			tp.screen.SetContent(col, row, ' ', nil, style)
		}
	}
	tp.drawStatus(grid.H, status)
	tp.screen.Show()
}

func (tp *TermPainter) styleFor(s core.CellState, ghosted bool) tcell.Style {
	g := 0
	if ghosted {
		g = 1
	}
	if int(s) >= len(tp.styles[g]) {
		s = core.Dead
	}
	return tp.styles[g][s]
}

func (tp *TermPainter) drawStatus(row int, status string) {
	w, _ := tp.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		tp.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		tp.screen.SetContent(col, row, ' ', nil, style)
	}
}
