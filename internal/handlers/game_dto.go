package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/render"
	"github.com/vancomm/minefield/internal/session"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewGameDTO struct {
	Width  int `schema:"width,required"`
	Height int `schema:"height,required"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

type MoveDTO struct {
	Move   string `schema:"move,required"`
	Square string `schema:"square,required"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

var ErrBadMove = errors.New("move must be one of 'open', 'flag'")

func ParseMove(s string) (mines.Move, error) {
	switch strings.ToLower(s) {
	case "open":
		return mines.MoveOpen, nil
	case "flag":
		return mines.MoveFlag, nil
	default:
		return 0, fmt.Errorf("%w, got %q", ErrBadMove, s)
	}
}

type GameSessionDTO struct {
	GameSessionId  string   `json:"game_session_id"`
	Grid           []string `json:"grid"`
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	MineCount      int      `json:"mine_count"`
	FlagsRemaining int      `json:"flags_remaining"`
	Opened         int      `json:"opened"`
	TargetOpen     int      `json:"target_open"`
	State          string   `json:"state"`
	Dead           bool     `json:"dead"`
	Won            bool     `json:"won"`
	StartedAt      int64    `json:"started_at"`
	EndedAt        *int64   `json:"ended_at,omitempty"`
}

// NewGameSessionDTO exposes only what the player may see; mines are
// revealed once the game is over.
func NewGameSessionDTO(s session.Snapshot) *GameSessionDTO {
	var endedAt *int64
	if s.EndedAt != nil {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	reveal := s.State == mines.Death || s.State == mines.Victory
	return &GameSessionDTO{
		GameSessionId:  s.ID.String(),
		Grid:           render.Symbols(s.Cells, reveal),
		Width:          s.Width,
		Height:         s.Height,
		MineCount:      s.MineCount,
		FlagsRemaining: s.FlagBudget,
		Opened:         s.OpenedCount,
		TargetOpen:     s.TargetOpen,
		State:          s.State.String(),
		Dead:           s.State == mines.Death,
		Won:            s.State == mines.Victory,
		StartedAt:      s.StartedAt.UnixMilli(),
		EndedAt:        endedAt,
	}
}

type NewGameResponse struct {
	Session *GameSessionDTO `json:"session"`
	Token   string          `json:"token"`
}

type MoveResponse struct {
	Outcome  string          `json:"outcome"`
	Rejected string          `json:"rejected,omitempty"`
	Session  *GameSessionDTO `json:"session"`
}

func newMoveResponse(outcome mines.Outcome, snap session.Snapshot, reason error) *MoveResponse {
	resp := &MoveResponse{
		Outcome: outcome.String(),
		Session: NewGameSessionDTO(snap),
	}
	if reason != nil {
		resp.Rejected = reason.Error()
	}
	return resp
}
