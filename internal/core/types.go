package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// CellState enumerates the values a grid cell can hold.
type CellState uint8

const (
	// Dead is an empty cell.
	Dead CellState = iota
	// Live is a populated cell.
	Live
	// Void is a user-placed obstacle. It never comes alive and counts as dead
	// for its neighbours.
	Void
	// Bright marks freshly stamped cells for a single render pass.
	Bright
	// Ghost marks where a pattern would land under the pointer.
	Ghost

	// Invalid is returned for reads outside the grid.
	Invalid CellState = 0xff
)

// String returns a short lowercase name for the state.
func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Live:
		return "live"
	case Void:
		return "void"
	case Bright:
		return "bright"
	case Ghost:
		return "ghost"
	default:
		return "invalid"
	}
}

// Transient reports whether the state only exists for rendering.
func (s CellState) Transient() bool { return s == Bright || s == Ghost }
