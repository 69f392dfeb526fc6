package mines

import "fmt"

// Outcome is the result of applying one action.
type Outcome uint8

const (
	Unfinished Outcome = iota
	Unchanged
	Death
	Victory
	Quit
)

var outcomeNames = [...]string{
	Unfinished: "unfinished",
	Unchanged:  "unchanged",
	Death:      "death",
	Victory:    "victory",
	Quit:       "quit",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Terminal reports whether no further action can follow the outcome.
func (o Outcome) Terminal() bool {
	return o == Death || o == Victory || o == Quit
}

type Move uint8

const (
	MoveOpen Move = iota + 1
	MoveFlag
	MoveQuit
)

func (m Move) String() string {
	switch m {
	case MoveOpen:
		return "open"
	case MoveFlag:
		return "flag"
	case MoveQuit:
		return "quit"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// Action is a player command. Index is ignored for [MoveQuit].
type Action struct {
	Move  Move
	Index int
}

func OpenSquare(index int) Action { return Action{Move: MoveOpen, Index: index} }
func ToggleFlag(index int) Action { return Action{Move: MoveFlag, Index: index} }
func QuitGame() Action            { return Action{Move: MoveQuit} }

// Game owns a board and applies player actions to it one at a time. A Game
// is not safe for concurrent use.
type Game struct {
	board *Board
	state Outcome
}

func NewGame(board *Board) *Game {
	return &Game{board: board, state: Unfinished}
}

func (g *Game) Board() *Board { return g.board }

// State is the outcome of the last action that was not rejected.
func (g *Game) State() Outcome { return g.state }

func (g *Game) Over() bool { return g.state.Terminal() }

// Check reports why a would be rejected, or nil if applying it would change
// the game. It does not mutate anything.
func (g *Game) Check(a Action) error {
	if g.Over() {
		return ErrGameOver
	}
	if a.Move != MoveFlag {
		return nil
	}
	c := g.board.Cell(a.Index)
	switch {
	case c.Opened:
		return ErrSquareOpened
	case !c.Flagged && g.board.flags == 0:
		return ErrNoFlags
	}
	return nil
}

// Apply performs a and reports its outcome. Once the game reached a terminal
// outcome every action is answered with [Unchanged].
//
// panics [AssertionError] on an index outside the board
func (g *Game) Apply(a Action) Outcome {
	if g.Over() {
		return Unchanged
	}
	var out Outcome
	switch a.Move {
	case MoveFlag:
		out = g.toggleFlag(a.Index)
	case MoveOpen:
		out = g.openSquare(a.Index)
	case MoveQuit:
		out = Quit
	default:
		panic(AssertionError{fmt.Sprintf("unknown move %d", a.Move)})
	}
	if out != Unchanged {
		g.state = out
	}
	return out
}

func (g *Game) toggleFlag(index int) Outcome {
	b := g.board
	b.checkIndex(index)
	c := &b.cells[index]
	if c.Opened {
		return Unchanged
	}
	if !c.Flagged && b.flags == 0 {
		return Unchanged
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		b.flags--
	} else {
		b.flags++
	}
	return g.settle()
}

func (g *Game) openSquare(index int) Outcome {
	b := g.board
	b.checkIndex(index)
	b.open(index)
	if b.cells[index].Status == Mine {
		return Death
	}
	b.revealFrom(index)
	return g.settle()
}

func (g *Game) settle() Outcome {
	if g.board.Solved() {
		return Victory
	}
	return Unfinished
}
