package life

import "voidlife/internal/core"

// Pair is a double buffer of equally sized grids. The active grid is the
// authoritative state; the other one receives the next generation.
type Pair struct {
	buf    [2]*core.Grid
	active int
}

// NewPair allocates two Dead grids of size w×h.
func NewPair(w, h int) *Pair {
	return &Pair{buf: [2]*core.Grid{core.NewGrid(w, h), core.NewGrid(w, h)}}
}

// Current returns the active grid.
func (p *Pair) Current() *core.Grid { return p.buf[p.active] }

// Next returns the inactive grid.
func (p *Pair) Next() *core.Grid { return p.buf[1-p.active] }

// Swap flips the roles of the two grids.
func (p *Pair) Swap() { p.active = 1 - p.active }

// Set writes s into both grids.
func (p *Pair) Set(row, col int, s core.CellState) {
	p.buf[0].Set(row, col, s)
	p.buf[1].Set(row, col, s)
}

// Fill writes s into every cell of both grids.
func (p *Pair) Fill(s core.CellState) {
	p.buf[0].Fill(s)
	p.buf[1].Fill(s)
}

// Size returns the grid dimensions.
func (p *Pair) Size() core.Size { return p.buf[0].Size() }

// Engine runs Conway's Game of Life on a bounded grid with Void obstacles.
type Engine struct {
	w, h       int
	pair       *Pair
	generation int
}

// NewEngine returns an engine with an all-Dead w×h board.
func NewEngine(w, h int) *Engine {
	e := &Engine{}
	e.Resize(w, h)
	return e
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Current exposes the authoritative grid for rendering.
func (e *Engine) Current() *core.Grid { return e.pair.Current() }

// Next exposes the grid the following Step writes into.
func (e *Engine) Next() *core.Grid { return e.pair.Next() }

// Buffers returns the simulation buffer pair.
func (e *Engine) Buffers() *Pair { return e.pair }

// Generation returns the number of steps since the last reset.
func (e *Engine) Generation() int { return e.generation }

// Resize reallocates both buffers at the new dimensions, all Dead.
func (e *Engine) Resize(w, h int) {
	e.pair = NewPair(w, h)
	size := e.pair.Size()
	e.w, e.h = size.W, size.H
	e.generation = 0
}

// Reset clears the board, Void cells included.
func (e *Engine) Reset() {
	e.pair.Fill(core.Dead)
	e.generation = 0
}

// Randomize seeds Live cells at the given density. Void cells are kept.
func (e *Engine) Randomize(seed int64, density float64) {
	core.NewRNG(seed).FillLive(e.pair.Current(), density)
	e.pair.Next().CopyFrom(e.pair.Current())
	e.generation = 0
}

// Set writes s at (row, col) in both buffers, bypassing evolution.
func (e *Engine) Set(row, col int, s core.CellState) { e.pair.Set(row, col, s) }

// Population returns the number of Live cells.
func (e *Engine) Population() int { return e.pair.Current().Count(core.Live) }

// Neighbors counts the Live neighbours of (row, col) in the current grid.
func (e *Engine) Neighbors(row, col int) int {
	return countLive(e.pair.Current(), row, col, Classify(row, col, e.w, e.h))
}

func countLive(g *core.Grid, row, col int, class EdgeClass) int {
	n := 0
	for _, off := range Offsets(class) {
		if g.Get(row+off.DRow, col+off.DCol) == core.Live {
			n++
		}
	}
	return n
}

// Rule returns the next state of a cell in state s with n Live neighbours.
func Rule(s core.CellState, n int) core.CellState {
	switch s {
	case core.Void:
		return core.Void
	case core.Live:
		if n == 2 || n == 3 {
			return core.Live
		}
		return core.Dead
	default:
		if n == 3 {
			return core.Live
		}
		return core.Dead
	}
}

// Step advances the simulation by one generation. It only reads the current
// grid and only writes the next one, then swaps their roles.
func (e *Engine) Step() {
	cur, nxt := e.pair.Current(), e.pair.Next()
	src, dst := cur.Cells(), nxt.Cells()
	w, h := e.w, e.h
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			n := countLive(cur, row, col, Classify(row, col, w, h))
			dst[idx] = Rule(src[idx], n)
		}
	}
	e.pair.Swap()
	e.generation++
}
