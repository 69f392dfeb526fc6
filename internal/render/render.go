// Package render draws a board as text.
package render

import (
	"fmt"
	"strings"

	"github.com/vancomm/minefield/internal/coords"
	"github.com/vancomm/minefield/internal/mines"
)

const (
	MineSymbol   = '*'
	FlagSymbol   = '!'
	HiddenSymbol = ' '
)

// Symbol is what a player sees on a cell.
func Symbol(c mines.Cell) rune {
	switch {
	case c.Flagged:
		return FlagSymbol
	case !c.Opened:
		return HiddenSymbol
	case c.Mined():
		return MineSymbol
	default:
		return '0' + rune(c.Adjacent)
	}
}

// RevealedSymbol is [Symbol] with unopened, unflagged mines shown.
func RevealedSymbol(c mines.Cell) rune {
	if c.Mined() && !c.Flagged {
		return MineSymbol
	}
	return Symbol(c)
}

// Symbols renders cells in order. With reveal set, hidden mines are exposed.
func Symbols(cells []mines.Cell, reveal bool) []string {
	symbol := Symbol
	if reveal {
		symbol = RevealedSymbol
	}
	symbols := make([]string, len(cells))
	for i, c := range cells {
		symbols[i] = string(symbol(c))
	}
	return symbols
}

// Board draws the grid framed by column letters above and below, row letters
// on both sides, followed by the remaining flag count.
func Board(b *mines.Board) string {
	var header strings.Builder
	header.WriteString("  ")
	for col := range b.Width() {
		header.WriteRune(coords.ColumnLetter(col))
		header.WriteByte(' ')
	}
	header.WriteByte('\n')

	separator := " +" + strings.Repeat("-+", b.Width()) + "\n"

	var s strings.Builder
	s.WriteString(header.String())
	row := 0
	for _, c := range b.Cells() {
		switch {
		case c.Class.RowStart():
			if c.Class == mines.TopLeft {
				s.WriteString(separator)
			}
			s.WriteRune(coords.RowLetter(row))
			s.WriteByte('|')
			s.WriteRune(Symbol(c))
			s.WriteByte('|')
		case c.Class.RowEnd():
			s.WriteRune(Symbol(c))
			s.WriteByte('|')
			s.WriteRune(coords.RowLetter(row))
			s.WriteByte('\n')
			s.WriteString(separator)
			row++
		default:
			s.WriteRune(Symbol(c))
			s.WriteByte('|')
		}
	}
	s.WriteString(header.String())
	fmt.Fprintf(&s, "Flags remaining: %d", b.FlagBudget())
	return s.String()
}
