package life

import (
	"voidlife/internal/core"
	"voidlife/internal/pattern"
)

// StampGrid writes s into g at anchor+offset for every offset of p. Cells that
// fall outside the grid are dropped.
func StampGrid(g *core.Grid, p pattern.Pattern, row, col int, s core.CellState) {
	for _, pt := range p {
		g.Set(row+pt.DY, col+pt.DX, s)
	}
}

// Stamp writes s into both grids of pair at anchor+offset for every offset of p.
func Stamp(pair *Pair, p pattern.Pattern, row, col int, s core.CellState) {
	for _, pt := range p {
		pair.Set(row+pt.DY, col+pt.DX, s)
	}
}

// Tool selects what a pointer press stamps.
type Tool uint8

const (
	// ToolPattern stamps the selected pattern as Live cells.
	ToolPattern Tool = iota
	// ToolPlaceVoid turns a single cell into Void.
	ToolPlaceVoid
	// ToolRemoveVoid turns a single cell back into a Live cell.
	ToolRemoveVoid
)

func (t Tool) String() string {
	switch t {
	case ToolPlaceVoid:
		return "place void"
	case ToolRemoveVoid:
		return "remove void"
	default:
		return "pattern"
	}
}

// Target returns the state the tool writes.
func (t Tool) Target() core.CellState {
	if t == ToolPlaceVoid {
		return core.Void
	}
	return core.Live
}

// Shape returns the pattern the tool stamps given the selected pattern.
func (t Tool) Shape(selected pattern.Pattern) pattern.Pattern {
	if t == ToolPattern {
		return selected
	}
	return pattern.Dot
}
