package mines

// PositionClass is the structural class of a cell: a corner, an edge or the
// interior of the board. It decides which neighbor offsets exist for the cell.
type PositionClass uint8

const (
	TopLeft PositionClass = iota
	Top
	TopRight
	Left
	Middle
	Right
	BottomLeft
	Bottom
	BottomRight
)

var classNames = [...]string{
	TopLeft:     "top-left",
	Top:         "top",
	TopRight:    "top-right",
	Left:        "left",
	Middle:      "middle",
	Right:       "right",
	BottomLeft:  "bottom-left",
	Bottom:      "bottom",
	BottomRight: "bottom-right",
}

func (c PositionClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Corner reports whether the class has exactly three neighbors.
func (c PositionClass) Corner() bool {
	return c == TopLeft || c == TopRight || c == BottomLeft || c == BottomRight
}

// RowStart reports whether a cell of this class begins a board row.
func (c PositionClass) RowStart() bool {
	return c == TopLeft || c == Left || c == BottomLeft
}

// RowEnd reports whether a cell of this class ends a board row.
func (c PositionClass) RowEnd() bool {
	return c == TopRight || c == Right || c == BottomRight
}

type offset struct{ dr, dc int }

var (
	up        = offset{-1, 0}
	upRight   = offset{-1, 1}
	right     = offset{0, 1}
	downRight = offset{1, 1}
	down      = offset{1, 0}
	downLeft  = offset{1, -1}
	left      = offset{0, -1}
	upLeft    = offset{-1, -1}
)

var neighborhoods = [...][]offset{
	TopLeft:     {right, down, downRight},
	Top:         {left, right, downLeft, down, downRight},
	TopRight:    {left, downLeft, down},
	Left:        {up, upRight, right, down, downRight},
	Middle:      {up, upRight, right, downRight, down, downLeft, left, upLeft},
	Right:       {up, upLeft, left, down, downLeft},
	BottomLeft:  {up, upRight, right},
	Bottom:      {left, upLeft, up, upRight, right},
	BottomRight: {up, upLeft, left},
}

// Classify returns the class of the cell stored at index in a row-major
// width x height board. Both dimensions must be at least 2.
func Classify(index, width, height int) PositionClass {
	row, col := index/width, index%width
	top, bottom := row == 0, row == height-1
	first, last := col == 0, col == width-1
	switch {
	case top && first:
		return TopLeft
	case top && last:
		return TopRight
	case top:
		return Top
	case bottom && first:
		return BottomLeft
	case bottom && last:
		return BottomRight
	case bottom:
		return Bottom
	case first:
		return Left
	case last:
		return Right
	default:
		return Middle
	}
}

// Neighbors returns the indices adjacent to index. Only offsets that exist
// for class are produced, so a correctly classified cell never yields an
// index outside the board.
func Neighbors(index int, class PositionClass, width int) []int {
	offsets := neighborhoods[class]
	indices := make([]int, len(offsets))
	for i, o := range offsets {
		indices[i] = index + o.dr*width + o.dc
	}
	return indices
}
