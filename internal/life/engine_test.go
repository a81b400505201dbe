package life

import (
	"testing"

	"voidlife/internal/core"
)

func assertLive(t *testing.T, e *Engine, expects map[[2]int]bool, stage string) {
	t.Helper()
	size := e.Size()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			alive := e.Current().Get(row, col) == core.Live
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, row, col, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := NewEngine(3, 3)
	e.Set(1, 0, core.Live)
	e.Set(1, 1, core.Live)
	e.Set(1, 2, core.Live)

	horizontal := map[[2]int]bool{{1, 0}: true, {1, 1}: true, {1, 2}: true}
	vertical := map[[2]int]bool{{0, 1}: true, {1, 1}: true, {2, 1}: true}

	e.Step()
	assertLive(t, e, vertical, "after first step")

	e.Step()
	assertLive(t, e, horizontal, "after second step")

	if e.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", e.Generation())
	}
}

func TestBlinkerOnLargerNonSquareGrid(t *testing.T) {
	e := NewEngine(7, 4)
	e.Set(1, 0, core.Live)
	e.Set(1, 1, core.Live)
	e.Set(1, 2, core.Live)

	e.Step()
	assertLive(t, e, map[[2]int]bool{{0, 1}: true, {1, 1}: true, {2, 1}: true}, "after first step")
	e.Step()
	assertLive(t, e, map[[2]int]bool{{1, 0}: true, {1, 1}: true, {1, 2}: true}, "after second step")
}

func TestSingleCellDies(t *testing.T) {
	e := NewEngine(5, 5)
	e.Set(2, 2, core.Live)
	e.Step()
	if got := e.Population(); got != 0 {
		t.Fatalf("population = %d, want 0", got)
	}
	if got := e.Current().Count(core.Dead); got != 25 {
		t.Fatalf("dead cells = %d, want 25", got)
	}
}

func TestRuleTable(t *testing.T) {
	cases := []struct {
		state core.CellState
		n     int
		want  core.CellState
	}{
		{core.Live, 0, core.Dead},
		{core.Live, 1, core.Dead},
		{core.Live, 2, core.Live},
		{core.Live, 3, core.Live},
		{core.Live, 4, core.Dead},
		{core.Live, 8, core.Dead},
		{core.Dead, 2, core.Dead},
		{core.Dead, 3, core.Live},
		{core.Dead, 4, core.Dead},
		{core.Void, 0, core.Void},
		{core.Void, 3, core.Void},
		{core.Void, 8, core.Void},
	}
	for _, tc := range cases {
		if got := Rule(tc.state, tc.n); got != tc.want {
			t.Errorf("Rule(%v, %d) = %v, want %v", tc.state, tc.n, got, tc.want)
		}
	}
}

func TestLiveCellSurvivalAndOvercrowding(t *testing.T) {
	// Centre cell with exactly k Live neighbours on a 3x3 board.
	neighbours := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for k := 0; k <= 8; k++ {
		for _, centre := range []core.CellState{core.Live, core.Dead} {
			e := NewEngine(3, 3)
			e.Set(1, 1, centre)
			for _, rc := range neighbours[:k] {
				e.Set(rc[0], rc[1], core.Live)
			}
			if got := e.Neighbors(1, 1); got != k {
				t.Fatalf("Neighbors = %d, want %d", got, k)
			}
			e.Step()
			got := e.Current().Get(1, 1)
			want := core.Dead
			if k == 3 || (centre == core.Live && k == 2) {
				want = core.Live
			}
			if got != want {
				t.Fatalf("centre %v with %d neighbours became %v, want %v", centre, k, got, want)
			}
		}
	}
}

func TestInteriorWithoutNeighboursDies(t *testing.T) {
	e := NewEngine(6, 6)
	e.Set(2, 2, core.Live)
	e.Set(4, 4, core.Live)
	e.Step()
	for row := 1; row < 5; row++ {
		for col := 1; col < 5; col++ {
			if s := e.Current().Get(row, col); s != core.Dead {
				t.Fatalf("interior cell (%d,%d) = %v, want dead", row, col, s)
			}
		}
	}
}

func TestVoidIsInvariant(t *testing.T) {
	sizes := []core.Size{{W: 1, H: 1}, {W: 1, H: 4}, {W: 4, H: 1}, {W: 2, H: 2}, {W: 5, H: 3}}
	for _, size := range sizes {
		e := NewEngine(size.W, size.H)
		rng := core.NewRNG(int64(size.W*31 + size.H))
		rng.FillLive(e.Current(), 0.6)
		e.Next().CopyFrom(e.Current())
		e.Set(0, 0, core.Void)
		e.Set(size.H-1, size.W-1, core.Void)
		for i := 0; i < 5; i++ {
			e.Step()
			if e.Current().Get(0, 0) != core.Void || e.Current().Get(size.H-1, size.W-1) != core.Void {
				t.Fatalf("%dx%d: void cell changed at step %d", size.W, size.H, i)
			}
		}
	}
}

func TestVoidNeighboursCountAsDead(t *testing.T) {
	e := NewEngine(3, 3)
	e.Set(0, 0, core.Void)
	e.Set(0, 1, core.Void)
	e.Set(0, 2, core.Void)
	if got := e.Neighbors(1, 1); got != 0 {
		t.Fatalf("Neighbors = %d, want 0", got)
	}
	e.Step()
	if got := e.Current().Get(1, 1); got != core.Dead {
		t.Fatalf("dead cell surrounded by three voids became %v", got)
	}
}

func TestStepDoesNotReadItsOwnWrites(t *testing.T) {
	// An L-tromino becomes a block. A sequential in-place update would see
	// the newly born cell while visiting later cells and disagree.
	e := NewEngine(4, 4)
	e.Set(1, 1, core.Live)
	e.Set(1, 2, core.Live)
	e.Set(2, 1, core.Live)
	e.Step()
	assertLive(t, e, map[[2]int]bool{{1, 1}: true, {1, 2}: true, {2, 1}: true, {2, 2}: true}, "after step")
}

func TestResizeReallocatesDead(t *testing.T) {
	e := NewEngine(4, 4)
	e.Set(1, 1, core.Live)
	e.Set(2, 2, core.Void)
	e.Step()
	e.Resize(6, 3)
	if e.Size() != (core.Size{W: 6, H: 3}) {
		t.Fatalf("size = %+v", e.Size())
	}
	if e.Generation() != 0 {
		t.Fatalf("generation = %d after resize", e.Generation())
	}
	for _, g := range []*core.Grid{e.Current(), e.Next()} {
		if g.W != 6 || g.H != 3 || g.Count(core.Dead) != 18 {
			t.Fatalf("buffer not reset: %dx%d dead=%d", g.W, g.H, g.Count(core.Dead))
		}
	}
}

func TestRandomizeKeepsVoidAndIsDeterministic(t *testing.T) {
	a := NewEngine(16, 12)
	b := NewEngine(16, 12)
	a.Set(3, 3, core.Void)
	b.Set(3, 3, core.Void)
	a.Randomize(7, 0.4)
	b.Randomize(7, 0.4)
	if a.Current().Get(3, 3) != core.Void {
		t.Fatal("Randomize overwrote a void cell")
	}
	ca, cb := a.Current().Cells(), b.Current().Cells()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("Randomize not deterministic at %d", i)
		}
	}
	if a.Population() == 0 {
		t.Fatal("Randomize produced an empty board")
	}
}

func TestReset(t *testing.T) {
	e := NewEngine(4, 4)
	e.Set(0, 0, core.Void)
	e.Set(1, 1, core.Live)
	e.Step()
	e.Reset()
	if e.Current().Count(core.Dead) != 16 || e.Next().Count(core.Dead) != 16 {
		t.Fatal("Reset left non-dead cells")
	}
	if e.Generation() != 0 {
		t.Fatalf("generation = %d after reset", e.Generation())
	}
}
