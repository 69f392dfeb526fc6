package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/mines"
)

type fixedSource []int

func (s fixedSource) Draw(int) ([]int, error) {
	return s, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input  string
		action mines.Action
		msg    string
	}{
		{"q", mines.QuitGame(), ""},
		{"  q  ", mines.QuitGame(), ""},
		{"o aA", mines.OpenSquare(0), ""},
		{"o bA", mines.OpenSquare(3), ""},
		{"f aC", mines.ToggleFlag(2), ""},
		{"f bC\n", mines.ToggleFlag(5), ""},
		{"", mines.Action{}, "Empty input is invalid!"},
		{"x", mines.Action{}, "First character is invalid!"},
		{"o", mines.Action{}, "First character is invalid!"},
		{"o a", mines.Action{}, "Incomplete input!"},
		{"x aA", mines.Action{}, "First character is invalid!"},
		{"o-aA", mines.Action{}, "Second character should be a space!"},
		{"o 1A", mines.Action{}, "Third character should be a lowercase letter!"},
		{"o cA", mines.Action{}, "Invalid row!"},
		{"o a1", mines.Action{}, "Fourth character should be an uppercase letter!"},
		{"o aD", mines.Action{}, "Invalid column!"},
		{"o aAA", mines.Action{}, "Too much input!"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			action, err := ParseCommand(test.input, 3, 2)
			if test.msg != "" {
				var inputErr *InputError
				require.ErrorAs(t, err, &inputErr)
				assert.Equal(t, test.msg, inputErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.action, action)
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	assert.Equal(t, "Cannot set flag! Square already opened!", RejectionMessage(mines.ErrSquareOpened))
	assert.Contains(t, RejectionMessage(mines.ErrNoFlags), "Not enough flags!")
	assert.Empty(t, RejectionMessage(nil))
}

func play(t *testing.T, src mines.Source, input ...string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(strings.Join(input, "\n")+"\n"), &out, testLogger())
	require.NoError(t, c.Run(src))
	return out.String()
}

func TestRunVictory(t *testing.T) {
	out := play(t, fixedSource{0}, "2", "2", "f aA", "o aB", "o bA", "o bB")

	assert.Contains(t, out, "Input minefield width: ")
	assert.Contains(t, out, "Input minefield height: ")
	assert.Contains(t, out, "a|!|1|a\n")
	assert.Contains(t, out, "b|1|1|b\n")
	assert.True(t, strings.HasSuffix(out, "Flags remaining: 0\nYou flagged all the mines! You win!\n"))
}

func TestRunDeath(t *testing.T) {
	out := play(t, fixedSource{0}, "2", "2", "o bB", "o aA")

	assert.Contains(t, out, "b| |1|b\n")
	assert.Contains(t, out, "a|*| |a\n")
	assert.True(t, strings.HasSuffix(out, "You stepped on a mine! You lose!\n"))
}

func TestRunRejections(t *testing.T) {
	out := play(t, fixedSource{3},
		"two", "1", "27", "2", "2",
		"o a", "o aA", "f aA", "f aB", "f bA", "q",
	)

	assert.Contains(t, out, "Input a number!\n")
	assert.Equal(t, 2, strings.Count(out, "Number must be between 2 and 26 inclusive!\n"))
	assert.Contains(t, out, "Incomplete input!\n")
	assert.Contains(t, out, "Cannot set flag! Square already opened!\n")
	assert.Contains(t, out, "Not enough flags! Are you sure you marked the right squares and opened the rest?\n")
	assert.NotContains(t, out, "You win!")
	assert.NotContains(t, out, "You lose!")
}

func TestRunInputClosed(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("3\n"), &out, testLogger())
	assert.NoError(t, c.Run(fixedSource{0}))
}

type brokenSource struct{}

func (brokenSource) Draw(int) ([]int, error) {
	return nil, mines.ErrEntropyUnavailable
}

func TestRunEntropyUnavailable(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("4\n4\n"), &out, testLogger())
	assert.ErrorIs(t, c.Run(brokenSource{}), mines.ErrEntropyUnavailable)
}
