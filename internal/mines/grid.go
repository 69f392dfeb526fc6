package mines

import "fmt"

type Status int8

const (
	Empty Status = iota
	Mine
)

func (s Status) String() string {
	if s == Mine {
		return "mine"
	}
	return "empty"
}

// Cell is one square of the board. Adjacent is only meaningful for Empty
// cells, where it counts the neighboring mines.
type Cell struct {
	Status   Status
	Adjacent int
	Opened   bool
	Flagged  bool
	Class    PositionClass
}

func (c Cell) Mined() bool {
	return c.Status == Mine
}

// Board is a row-major grid of cells plus the flag bookkeeping. Cells are
// only mutated through [Game]; everything exported here is read-only.
type Board struct {
	cells         []Cell
	width, height int
	mines         int
	target        int
	flags         int
	opened        int
}

func (b *Board) Width() int           { return b.width }
func (b *Board) Height() int          { return b.height }
func (b *Board) Len() int             { return len(b.cells) }
func (b *Board) MineCount() int       { return b.mines }
func (b *Board) TargetOpenCount() int { return b.target }
func (b *Board) FlagBudget() int      { return b.flags }
func (b *Board) OpenedCount() int     { return b.opened }

// Cell returns a copy of the cell at index.
func (b *Board) Cell(index int) Cell {
	b.checkIndex(index)
	return b.cells[index]
}

// Cells returns a copy of every cell in row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Solved reports whether every safe cell is open and the flag budget is spent.
func (b *Board) Solved() bool {
	return b.opened == b.target && b.flags == 0
}

// panics [AssertionError]
func (b *Board) checkIndex(index int) {
	if index < 0 || index >= len(b.cells) {
		panic(AssertionError{fmt.Sprintf("cell index %d out of range [0, %d)", index, len(b.cells))})
	}
}

// open marks a cell opened. A flag on the cell is removed and returned to the
// budget so a cell is never both opened and flagged.
func (b *Board) open(index int) {
	c := &b.cells[index]
	if c.Opened {
		return
	}
	if c.Flagged {
		c.Flagged = false
		b.flags++
	}
	c.Opened = true
	b.opened++
}
