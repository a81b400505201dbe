package life

import (
	"voidlife/internal/core"
	"voidlife/internal/pattern"
)

type cellRef struct{ row, col int }

// Overlay layers transient states over the simulation: a one-frame Bright
// flash for freshly stamped cells and a Ghost preview of the pattern under
// the pointer. The ghost lives in its own buffer pair and never touches the
// simulation buffers.
type Overlay struct {
	sim   *Pair
	ghost *Pair

	flashed []cellRef
	target  core.CellState
	pending bool
}

// NewOverlay returns an overlay bound to the simulation buffers.
func NewOverlay(sim *Pair) *Overlay {
	o := &Overlay{}
	o.Attach(sim)
	return o
}

// Attach binds the overlay to a (possibly reallocated) simulation pair and
// reallocates the ghost buffers at matching dimensions. Pending flashes are
// dropped.
func (o *Overlay) Attach(sim *Pair) {
	size := sim.Size()
	o.sim = sim
	o.ghost = NewPair(size.W, size.H)
	o.flashed = o.flashed[:0]
	o.pending = false
}

// Flash stamps p as Bright into both simulation buffers. The cells become
// target on the next Resolve. An unresolved earlier flash is resolved first.
func (o *Overlay) Flash(p pattern.Pattern, row, col int, target core.CellState) {
	if o.pending {
		o.Resolve()
	}
	cur := o.sim.Current()
	for _, pt := range p {
		r, c := row+pt.DY, col+pt.DX
		if !cur.InBounds(r, c) {
			continue
		}
		o.sim.Set(r, c, core.Bright)
		o.flashed = append(o.flashed, cellRef{r, c})
	}
	o.target = target
	o.pending = len(o.flashed) > 0
}

// Pending reports whether Bright cells are awaiting resolution.
func (o *Overlay) Pending() bool { return o.pending }

// Resolve replaces every flashed cell with its target state and returns how
// many cells were resolved.
func (o *Overlay) Resolve() int {
	n := len(o.flashed)
	for _, ref := range o.flashed {
		o.sim.Set(ref.row, ref.col, o.target)
	}
	o.flashed = o.flashed[:0]
	o.pending = false
	return n
}

// Preview redraws the ghost grid with p anchored at (row, col).
func (o *Overlay) Preview(p pattern.Pattern, row, col int) {
	next := o.ghost.Next()
	next.Clear()
	StampGrid(next, p, row, col, core.Ghost)
	o.ghost.Swap()
}

// ClearGhost empties the ghost grid.
func (o *Overlay) ClearGhost() {
	o.ghost.Fill(core.Dead)
}

// Ghost returns the grid holding the current preview.
func (o *Overlay) Ghost() *core.Grid { return o.ghost.Current() }
