package life

// EdgeClass is the positional category of a cell. It decides which of the
// eight Moore offsets are probed when counting neighbours.
type EdgeClass uint8

const (
	Center EdgeClass = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	Top
	Left
	Bottom
	Right
)

var edgeClassNames = [...]string{
	Center:      "center",
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
	Top:         "top",
	Left:        "left",
	Bottom:      "bottom",
	Right:       "right",
}

func (c EdgeClass) String() string {
	if int(c) < len(edgeClassNames) {
		return edgeClassNames[c]
	}
	return "unknown"
}

// Offset is a relative neighbour position: DRow rows down, DCol columns right.
type Offset struct {
	DRow, DCol int
}

var (
	up        = Offset{-1, 0}
	down      = Offset{1, 0}
	left      = Offset{0, -1}
	right     = Offset{0, 1}
	upLeft    = Offset{-1, -1}
	upRight   = Offset{-1, 1}
	downLeft  = Offset{1, -1}
	downRight = Offset{1, 1}
)

// neighborTable is built once and never mutated.
var neighborTable = [...][]Offset{
	Center:      {upLeft, up, upRight, left, right, downLeft, down, downRight},
	TopLeft:     {right, down, downRight},
	TopRight:    {left, downLeft, down},
	BottomLeft:  {up, upRight, right},
	BottomRight: {upLeft, up, left},
	Top:         {left, right, downLeft, down, downRight},
	Left:        {up, upRight, right, down, downRight},
	Bottom:      {upLeft, up, upRight, left, right},
	Right:       {upLeft, up, left, downLeft, down},
}

// Classify returns the edge class of (row, col) on a w×h grid. Corners win
// over edges; among edges the order is top, left, bottom, right.
func Classify(row, col, w, h int) EdgeClass {
	lastRow, lastCol := h-1, w-1
	switch {
	case row == 0 && col == 0:
		return TopLeft
	case row == 0 && col == lastCol:
		return TopRight
	case row == lastRow && col == 0:
		return BottomLeft
	case row == lastRow && col == lastCol:
		return BottomRight
	case row == 0:
		return Top
	case col == 0:
		return Left
	case row == lastRow:
		return Bottom
	case col == lastCol:
		return Right
	default:
		return Center
	}
}

// Offsets returns the neighbour offsets to probe for class c. Callers must
// not modify the returned slice.
func Offsets(c EdgeClass) []Offset {
	if int(c) >= len(neighborTable) {
		return nil
	}
	return neighborTable[c]
}
