// Package coords converts between the letter notation used by players and
// the linear cell index of a board. Rows are lowercase letters starting at
// 'a', columns uppercase letters starting at 'A'.
package coords

import (
	"errors"
	"fmt"
)

const Alphabet = 26

var (
	ErrRowLetter    = errors.New("row must be a lowercase letter")
	ErrColumnLetter = errors.New("column must be an uppercase letter")
	ErrRowRange     = errors.New("row outside the board")
	ErrColumnRange  = errors.New("column outside the board")
	ErrFormat       = errors.New("square must be a row letter followed by a column letter")
)

// Square is a zero-based row and column on the board.
type Square struct {
	Row, Col int
}

func (s Square) Index(width int) int {
	return s.Row*width + s.Col
}

func (s Square) String() string {
	return string([]rune{RowLetter(s.Row), ColumnLetter(s.Col)})
}

func FromIndex(index, width int) Square {
	return Square{Row: index / width, Col: index % width}
}

func RowLetter(row int) rune {
	return 'a' + rune(row)
}

func ColumnLetter(col int) rune {
	return 'A' + rune(col)
}

func ParseRow(r rune, height int) (int, error) {
	if r < 'a' || r > 'z' {
		return 0, ErrRowLetter
	}
	row := int(r - 'a')
	if row >= height {
		return 0, fmt.Errorf("%w: %c", ErrRowRange, r)
	}
	return row, nil
}

func ParseColumn(r rune, width int) (int, error) {
	if r < 'A' || r > 'Z' {
		return 0, ErrColumnLetter
	}
	col := int(r - 'A')
	if col >= width {
		return 0, fmt.Errorf("%w: %c", ErrColumnRange, r)
	}
	return col, nil
}

// Parse reads a square such as "cB" (third row, second column) and checks it
// against the board dimensions.
func Parse(s string, width, height int) (Square, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return Square{}, ErrFormat
	}
	row, err := ParseRow(runes[0], height)
	if err != nil {
		return Square{}, err
	}
	col, err := ParseColumn(runes[1], width)
	if err != nil {
		return Square{}, err
	}
	return Square{Row: row, Col: col}, nil
}

// ParseIndex is [Parse] followed by [Square.Index].
func ParseIndex(s string, width, height int) (int, error) {
	sq, err := Parse(s, width, height)
	if err != nil {
		return 0, err
	}
	return sq.Index(width), nil
}
