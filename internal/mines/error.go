package mines

import "errors"

var (
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
	ErrSamplerStalled     = errors.New("mine sampler stopped producing new positions")
	ErrBoardSize          = errors.New("board dimensions out of range")
	ErrMinePositions      = errors.New("invalid mine positions")
)

// Reasons an action was rejected, reported by [Game.Check].
var (
	ErrSquareOpened = errors.New("square already opened")
	ErrNoFlags      = errors.New("no flags remaining")
	ErrGameOver     = errors.New("game is over")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
