package console

import (
	"errors"
	"strings"

	"github.com/vancomm/minefield/internal/coords"
	"github.com/vancomm/minefield/internal/mines"
)

// InputError is a rejected line of player input. Its message is meant to be
// shown to the player as is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func inputError(msg string) error {
	return &InputError{Message: msg}
}

const Usage = `Open square with: "o aA", Toggle flag with: "f aA", Quit game with "q"`

// ParseCommand reads one of "q", "o <row><col>" or "f <row><col>", for
// example "o bC" opens the square on the second row, third column.
func ParseCommand(line string, width, height int) (mines.Action, error) {
	input := []rune(strings.TrimSpace(line))
	switch len(input) {
	case 0:
		return mines.Action{}, inputError("Empty input is invalid!")
	case 1:
		if input[0] == 'q' {
			return mines.QuitGame(), nil
		}
		return mines.Action{}, inputError("First character is invalid!")
	case 2, 3:
		return mines.Action{}, inputError("Incomplete input!")
	case 4:
	default:
		return mines.Action{}, inputError("Too much input!")
	}

	if input[0] != 'o' && input[0] != 'f' {
		return mines.Action{}, inputError("First character is invalid!")
	}
	if input[1] != ' ' {
		return mines.Action{}, inputError("Second character should be a space!")
	}
	row, err := coords.ParseRow(input[2], height)
	if errors.Is(err, coords.ErrRowLetter) {
		return mines.Action{}, inputError("Third character should be a lowercase letter!")
	} else if err != nil {
		return mines.Action{}, inputError("Invalid row!")
	}
	col, err := coords.ParseColumn(input[3], width)
	if errors.Is(err, coords.ErrColumnLetter) {
		return mines.Action{}, inputError("Fourth character should be an uppercase letter!")
	} else if err != nil {
		return mines.Action{}, inputError("Invalid column!")
	}

	index := coords.Square{Row: row, Col: col}.Index(width)
	if input[0] == 'f' {
		return mines.ToggleFlag(index), nil
	}
	return mines.OpenSquare(index), nil
}

// RejectionMessage explains to the player why an action was not applied.
func RejectionMessage(err error) string {
	switch {
	case errors.Is(err, mines.ErrSquareOpened):
		return "Cannot set flag! Square already opened!"
	case errors.Is(err, mines.ErrNoFlags):
		return "Not enough flags! Are you sure you marked the right squares and opened the rest?"
	case errors.Is(err, mines.ErrGameOver):
		return "The game is over!"
	case err != nil:
		return err.Error()
	default:
		return ""
	}
}
