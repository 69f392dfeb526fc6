package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, width, height int, mines ...int) *Game {
	t.Helper()
	b, err := NewBoard(width, height, mines)
	require.NoError(t, err)
	return NewGame(b)
}

func openedSet(b *Board) []int {
	var indices []int
	for i, c := range b.Cells() {
		if c.Opened {
			indices = append(indices, i)
		}
	}
	return indices
}

func TestFloodRevealPocket(t *testing.T) {
	// a wall of mines down the middle column of a 5x5 board
	g := newTestGame(t, 5, 5, 2, 7, 12, 17, 22)

	assert.Equal(t, Unfinished, g.Apply(OpenSquare(10)))
	assert.ElementsMatch(t,
		[]int{0, 5, 10, 15, 20, 1, 6, 11, 16, 21},
		openedSet(g.Board()),
	)
	assert.Equal(t, 10, g.Board().OpenedCount())
}

func TestFloodRevealWholeBoard(t *testing.T) {
	g := newTestGame(t, 5, 5, 24)

	assert.Equal(t, Unfinished, g.Apply(OpenSquare(0)))
	assert.Equal(t, 24, g.Board().OpenedCount())
	assert.False(t, g.Board().Cell(24).Opened)
}

func TestFloodRevealNeverOpensMines(t *testing.T) {
	b, err := NewBoard(8, 6, []int{3, 9, 14, 20, 27, 33, 40, 46, 47})
	require.NoError(t, err)
	for i := range b.Len() {
		if b.Cell(i).Mined() {
			continue
		}
		g := NewGame(cloneBoard(b))
		g.Apply(OpenSquare(i))
		for j, c := range g.Board().Cells() {
			if c.Mined() {
				assert.False(t, c.Opened, "mine %d opened from %d", j, i)
			}
		}
	}
}

func cloneBoard(b *Board) *Board {
	c := *b
	c.cells = b.Cells()
	return &c
}

func TestOpenNonZeroDoesNotCascade(t *testing.T) {
	g := newTestGame(t, 2, 2, 0)

	assert.Equal(t, Unfinished, g.Apply(OpenSquare(3)))
	assert.Equal(t, []int{3}, openedSet(g.Board()))
}

func TestVictory(t *testing.T) {
	g := newTestGame(t, 2, 2, 0)

	assert.Equal(t, Unfinished, g.Apply(OpenSquare(1)))
	assert.Equal(t, Unfinished, g.Apply(OpenSquare(2)))
	assert.Equal(t, Unfinished, g.Apply(OpenSquare(3)))
	assert.False(t, g.Board().Solved())

	assert.Equal(t, Victory, g.Apply(ToggleFlag(0)))
	assert.True(t, g.Board().Solved())
	assert.Equal(t, 0, g.Board().FlagBudget())
	assert.True(t, g.Over())
}

func TestVictoryFlagFirst(t *testing.T) {
	g := newTestGame(t, 5, 5, 2, 7, 12, 17, 22)
	for _, i := range []int{2, 7, 12, 17, 22} {
		require.Equal(t, Unfinished, g.Apply(ToggleFlag(i)))
	}
	assert.Equal(t, Unfinished, g.Apply(OpenSquare(0)))
	assert.Equal(t, Victory, g.Apply(OpenSquare(4)))
}

func TestDeath(t *testing.T) {
	g := newTestGame(t, 2, 2, 0)
	assert.Equal(t, Death, g.Apply(OpenSquare(0)))
	assert.True(t, g.Board().Cell(0).Opened)

	g = newTestGame(t, 2, 2, 0)
	require.Equal(t, Unfinished, g.Apply(ToggleFlag(0)))
	assert.Equal(t, Death, g.Apply(OpenSquare(0)))
	assert.False(t, g.Board().Cell(0).Flagged)
}

func TestTerminalOutcomesStick(t *testing.T) {
	g := newTestGame(t, 2, 2, 0)
	require.Equal(t, Death, g.Apply(OpenSquare(0)))

	for _, a := range []Action{OpenSquare(1), ToggleFlag(2), QuitGame()} {
		assert.Equal(t, Unchanged, g.Apply(a))
		assert.ErrorIs(t, g.Check(a), ErrGameOver)
	}
	assert.Equal(t, Death, g.State())
	assert.Equal(t, []int{0}, openedSet(g.Board()))
	assert.Equal(t, 1, g.Board().FlagBudget())

	g = newTestGame(t, 2, 2, 0)
	assert.Equal(t, Quit, g.Apply(QuitGame()))
	assert.Equal(t, Unchanged, g.Apply(OpenSquare(1)))
	assert.False(t, g.Board().Cell(1).Opened)
}

func TestQuitDoesNotMutate(t *testing.T) {
	g := newTestGame(t, 3, 3, 4)
	before := g.Board().Cells()
	assert.Equal(t, Quit, g.Apply(QuitGame()))
	assert.Equal(t, before, g.Board().Cells())
}

func TestToggleFlagTwice(t *testing.T) {
	g := newTestGame(t, 3, 3, 4)
	budget := g.Board().FlagBudget()

	assert.Equal(t, Unfinished, g.Apply(ToggleFlag(0)))
	assert.True(t, g.Board().Cell(0).Flagged)
	assert.Equal(t, budget-1, g.Board().FlagBudget())

	assert.Equal(t, Unfinished, g.Apply(ToggleFlag(0)))
	assert.False(t, g.Board().Cell(0).Flagged)
	assert.Equal(t, budget, g.Board().FlagBudget())
}

func TestFlagRejections(t *testing.T) {
	g := newTestGame(t, 3, 3, 4)

	require.Equal(t, Unfinished, g.Apply(OpenSquare(0)))
	assert.ErrorIs(t, g.Check(ToggleFlag(0)), ErrSquareOpened)
	assert.Equal(t, Unchanged, g.Apply(ToggleFlag(0)))
	assert.False(t, g.Board().Cell(0).Flagged)

	require.Equal(t, Unfinished, g.Apply(ToggleFlag(8)))
	assert.Equal(t, 0, g.Board().FlagBudget())
	assert.ErrorIs(t, g.Check(ToggleFlag(7)), ErrNoFlags)
	assert.Equal(t, Unchanged, g.Apply(ToggleFlag(7)))
	assert.False(t, g.Board().Cell(7).Flagged)

	// removing a flag is always allowed
	assert.NoError(t, g.Check(ToggleFlag(8)))
	assert.Equal(t, Unfinished, g.Apply(ToggleFlag(8)))
	assert.Equal(t, 1, g.Board().FlagBudget())
	assert.Equal(t, Unfinished, g.State())
}

func TestOpenFlaggedCellReturnsFlag(t *testing.T) {
	g := newTestGame(t, 3, 3, 4)
	require.Equal(t, Unfinished, g.Apply(ToggleFlag(1)))
	require.Equal(t, 0, g.Board().FlagBudget())

	assert.Equal(t, Unfinished, g.Apply(OpenSquare(1)))
	c := g.Board().Cell(1)
	assert.True(t, c.Opened)
	assert.False(t, c.Flagged)
	assert.Equal(t, 1, g.Board().FlagBudget())
}

func TestCascadeClearsFlags(t *testing.T) {
	g := newTestGame(t, 5, 5, 24)
	require.Equal(t, Unfinished, g.Apply(ToggleFlag(12)))

	assert.Equal(t, Unfinished, g.Apply(OpenSquare(0)))
	for i, c := range g.Board().Cells() {
		assert.False(t, c.Opened && c.Flagged, "cell %d opened and flagged", i)
	}
	assert.Equal(t, 1, g.Board().FlagBudget())
	assert.Equal(t, Victory, g.Apply(ToggleFlag(24)))
}

func TestOpenTwice(t *testing.T) {
	g := newTestGame(t, 2, 2, 0)
	require.Equal(t, Unfinished, g.Apply(OpenSquare(3)))
	assert.Equal(t, Unfinished, g.Apply(OpenSquare(3)))
	assert.Equal(t, 1, g.Board().OpenedCount())
}

func TestWorklistFIFO(t *testing.T) {
	w := newWorklist(5)
	_, ok := w.pop()
	assert.False(t, ok)

	w.push(3)
	w.push(0)
	i, _ := w.pop()
	assert.Equal(t, 3, i)
	w.push(4)
	for _, want := range []int{0, 4} {
		i, ok = w.pop()
		assert.True(t, ok)
		assert.Equal(t, want, i)
	}
	_, ok = w.pop()
	assert.False(t, ok)

	w.push(3)
	i, _ = w.pop()
	assert.Equal(t, 3, i)
}
