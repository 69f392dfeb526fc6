// Package console plays a game on a text terminal: it asks for the board
// size, then reads commands and redraws the board until the game ends.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/render"
)

type Console struct {
	in  *bufio.Scanner
	out io.Writer
	log logrus.FieldLogger
}

func New(in io.Reader, out io.Writer, log logrus.FieldLogger) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

var errInputClosed = errors.New("input closed")

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("unable to read input: %w", err)
		}
		return "", errInputClosed
	}
	return c.in.Text(), nil
}

func (c *Console) readSide(prompt string) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Input a number!")
			continue
		}
		if n < mines.MinSide || n > mines.MaxSide {
			fmt.Fprintf(c.out, "Number must be between %d and %d inclusive!\n", mines.MinSide, mines.MaxSide)
			continue
		}
		return n, nil
	}
}

func (c *Console) readAction(width, height int) (mines.Action, error) {
	for {
		fmt.Fprintln(c.out, Usage)
		fmt.Fprint(c.out, "Input: ")
		line, err := c.readLine()
		if err != nil {
			return mines.Action{}, err
		}
		action, err := ParseCommand(line, width, height)
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			c.log.WithField("input", line).Debug("rejected input")
			fmt.Fprintln(c.out, inputErr.Message)
			continue
		}
		return action, err
	}
}

// Run plays one game with mines drawn from src. Closing the input ends the
// game like a quit.
func (c *Console) Run(src mines.Source) error {
	err := c.run(src)
	if errors.Is(err, errInputClosed) {
		c.log.Info("input closed")
		return nil
	}
	return err
}

func (c *Console) run(src mines.Source) error {
	width, err := c.readSide("Input minefield width: ")
	if err != nil {
		return err
	}
	height, err := c.readSide("Input minefield height: ")
	if err != nil {
		return err
	}

	board, err := mines.Generate(width, height, src)
	if err != nil {
		return fmt.Errorf("unable to generate a minefield: %w", err)
	}
	c.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  board.MineCount(),
	}).Info("new game")

	game := mines.NewGame(board)
	fmt.Fprintln(c.out, render.Board(board))
	for {
		action, err := c.readAction(width, height)
		if err != nil {
			return err
		}
		reason := game.Check(action)
		outcome := game.Apply(action)
		c.log.WithFields(logrus.Fields{
			"move":    action.Move,
			"index":   action.Index,
			"outcome": outcome,
		}).Debug("applied action")

		switch outcome {
		case mines.Quit:
			return nil
		case mines.Death:
			fmt.Fprintf(c.out, "%s\nYou stepped on a mine! You lose!\n", render.Board(board))
			return nil
		case mines.Victory:
			fmt.Fprintf(c.out, "%s\nYou flagged all the mines! You win!\n", render.Board(board))
			return nil
		case mines.Unfinished:
			fmt.Fprintln(c.out, render.Board(board))
		case mines.Unchanged:
			fmt.Fprintln(c.out, RejectionMessage(reason))
		}
	}
}
