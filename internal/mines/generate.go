package mines

import (
	"fmt"
	"log/slog"
	"slices"
)

const (
	MinSide = 2
	MaxSide = 26
)

var Log *slog.Logger = slog.Default()

// ValidateSize reports whether a width x height board can be generated.
func ValidateSize(width, height int) error {
	if width < MinSide || width > MaxSide || height < MinSide || height > MaxSide {
		return fmt.Errorf(
			"%w: %dx%d, sides must be between %d and %d",
			ErrBoardSize, width, height, MinSide, MaxSide,
		)
	}
	return nil
}

// Generate builds a board with mines sampled from src. It fails only when the
// board size is invalid or src cannot supply enough positions.
func Generate(width, height int, src Source) (*Board, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	positions, err := Sample(src, width*height)
	if err != nil {
		return nil, fmt.Errorf("unable to place mines: %w", err)
	}
	board, err := NewBoard(width, height, positions)
	if err != nil {
		return nil, err
	}
	Log.Debug("generated board",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("mines", board.mines),
	)
	return board, nil
}

// NewBoard lays out a board with mines at the given positions, which must be
// distinct and inside the board.
func NewBoard(width, height int, mines []int) (*Board, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	total := width * height

	sorted := slices.Clone(mines)
	slices.Sort(sorted)
	if len(slices.Compact(slices.Clone(sorted))) != len(sorted) {
		return nil, fmt.Errorf("%w: duplicate positions", ErrMinePositions)
	}

	cells := make([]Cell, total)
	next := 0
	for i := range cells {
		cells[i].Class = Classify(i, width, height)
		if next < len(sorted) && sorted[next] == i {
			cells[i].Status = Mine
			next++
		}
	}
	if next != len(sorted) {
		return nil, fmt.Errorf("%w: positions must be in [0, %d)", ErrMinePositions, total)
	}

	for i := range cells {
		if cells[i].Status != Mine {
			continue
		}
		for _, j := range Neighbors(i, cells[i].Class, width) {
			if cells[j].Status == Empty {
				cells[j].Adjacent++
			}
		}
	}

	board := &Board{
		cells:  cells,
		width:  width,
		height: height,
		mines:  len(sorted),
		target: total - len(sorted),
		flags:  len(sorted),
	}
	return board, nil
}
