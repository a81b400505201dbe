package render

import (
	"testing"

	"voidlife/internal/core"
)

func TestFillStateRGBA(t *testing.T) {
	pal := DefaultPalette()
	cells := []core.CellState{core.Dead, core.Live, core.Void, core.Bright}
	buf := make([]byte, 4*len(cells))
	fillStateRGBA(buf, cells, nil, &pal)

	for i, c := range cells {
		want := pal.Color(c)
		got := buf[i*4 : i*4+4]
		if got[0] != want.R || got[1] != want.G || got[2] != want.B || got[3] != want.A {
			t.Fatalf("cell %d (%v) = %v, want %v", i, c, got, want)
		}
	}
}

func TestFillStateRGBAGhostOverlay(t *testing.T) {
	pal := DefaultPalette()
	cells := []core.CellState{core.Dead, core.Live}
	ghost := []core.CellState{core.Ghost, core.Dead}
	buf := make([]byte, 8)
	fillStateRGBA(buf, cells, ghost, &pal)

	dead := pal.Color(core.Dead)
	if buf[0] == dead.R && buf[1] == dead.G && buf[2] == dead.B {
		t.Fatal("ghost not composited over dead cell")
	}
	if buf[3] != 255 {
		t.Fatalf("composited alpha = %d, want opaque", buf[3])
	}
	live := pal.Color(core.Live)
	if buf[4] != live.R || buf[5] != live.G || buf[6] != live.B {
		t.Fatal("cell without ghost changed colour")
	}

	// Mismatched ghost length is ignored.
	fillStateRGBA(buf, cells, ghost[:1], &pal)
	if buf[0] != dead.R {
		t.Fatal("mismatched ghost buffer was applied")
	}
}

func TestPaletteUnknownState(t *testing.T) {
	pal := DefaultPalette()
	if pal.Color(core.Invalid) != pal.Color(core.Dead) {
		t.Fatal("invalid state should render as dead")
	}
}

func TestOverOpaqueAndTransparent(t *testing.T) {
	pal := DefaultPalette()
	src := pal.Color(core.Live)
	dst := pal.Color(core.Dead)
	if over(src, dst) != src {
		t.Fatal("opaque source should replace destination")
	}
	faint := src
	faint.A = 0
	if got := over(faint, dst); got.R != dst.R || got.G != dst.G || got.B != dst.B {
		t.Fatal("transparent source should keep destination")
	}
}

func TestShadeKeepsStateUnderGhost(t *testing.T) {
	pal := DefaultPalette()
	if pal.Shade(core.Live, false) != pal.Color(core.Live) {
		t.Fatal("unghosted shade should be the plain colour")
	}
	dead := pal.Shade(core.Dead, true)
	bright := pal.Shade(core.Bright, true)
	if dead == bright {
		t.Fatal("ghost hides the state underneath")
	}
	if dead == pal.Color(core.Dead) {
		t.Fatal("ghost not blended")
	}
}
