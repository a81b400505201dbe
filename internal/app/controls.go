package app

import "voidlife/internal/core"

// Control keys understood by AdjustControl.
const (
	KeyRate     = "rate"
	KeyCellSize = "cell_size"
)

// scaleFactor is the multiplicative step for both rate and cell size.
const scaleFactor = 2

// Controls holds the bounded timing and zoom parameters.
type Controls struct {
	Rate     core.ScaledParam
	CellSize core.ScaledParam
}

// NewControls derives the control bounds from cfg.
func NewControls(cfg Config) Controls {
	cfg.Normalize()
	return Controls{
		Rate: core.ScaledParam{
			Key: KeyRate, Label: "Rate", Unit: "gen/s",
			Value: cfg.TPS, Min: cfg.MinTPS, Max: cfg.MaxTPS, Factor: scaleFactor,
		},
		CellSize: core.ScaledParam{
			Key: KeyCellSize, Label: "Cell size", Unit: "px",
			Value: cfg.CellSize, Min: cfg.MinCellSize, Max: cfg.MaxCellSize, Factor: scaleFactor,
		},
	}
}

// CellAt maps canvas-relative pixel coordinates to a grid cell. Pixels left
// of or above the canvas map to negative indices.
func CellAt(px, py, cellSize int) (row, col int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	return floorDiv(py, cellSize), floorDiv(px, cellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
