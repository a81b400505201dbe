package core

// Grid stores cell states for a bounded W×H board in row-major order.
// Accessors are bounds-safe: reads outside the grid return Invalid and writes
// outside the grid are ignored.
type Grid struct {
	W, H int
	data []CellState
}

// NewGrid allocates a grid with the given dimensions, every cell Dead.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]CellState, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so renderers can read it without copying.
func (g *Grid) Cells() []CellState { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Get returns the state at (row, col), or Invalid when out of range.
func (g *Grid) Get(row, col int) CellState {
	if !g.InBounds(row, col) {
		return Invalid
	}
	return g.data[row*g.W+col]
}

// Set overwrites the state at (row, col). Out-of-range writes are dropped.
func (g *Grid) Set(row, col int, s CellState) {
	if !g.InBounds(row, col) {
		return
	}
	g.data[row*g.W+col] = s
}

// Fill sets every cell to s.
func (g *Grid) Fill(s CellState) {
	for i := range g.data {
		g.data[i] = s
	}
}

// Clear resets every cell to Dead.
func (g *Grid) Clear() { g.Fill(Dead) }

// CopyFrom copies src into g. Grids of different sizes are left untouched.
func (g *Grid) CopyFrom(src *Grid) bool {
	if src == nil || src.W != g.W || src.H != g.H {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Count returns the number of cells holding s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.data {
		if c == s {
			n++
		}
	}
	return n
}
