package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/coords"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

var (
	ErrBadSessionID = errors.New("invalid game session id")
	ErrUnauthorized = errors.New("token does not grant access to this game session")
)

type GameHandler struct {
	logger   *slog.Logger
	sessions *session.Registry
	jwt      *config.JWT
	ws       *config.WebSocket
	src      mines.Source
}

func NewGameHandler(
	logger *slog.Logger,
	sessions *session.Registry,
	jwt *config.JWT,
	ws *config.WebSocket,
	src mines.Source,
) *GameHandler {
	handler := &GameHandler{
		logger:   logger,
		sessions: sessions,
		jwt:      jwt,
		ws:       ws,
		src:      src,
	}

	return handler
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	board, err := mines.Generate(dto.Width, dto.Height, g.src)
	if errors.Is(err, mines.ErrBoardSize) {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", slog.Any("error", err))
		return
	}

	s := g.sessions.Create(mines.NewGame(board))
	token, err := g.jwt.Issue(s.ID.String())
	if err != nil {
		g.sessions.Delete(s.ID)
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to issue session token", slog.Any("error", err))
		return
	}

	sendJSONOrLog(w, g.logger, http.StatusCreated, NewGameResponse{
		Session: NewGameSessionDTO(s.Snapshot()),
		Token:   token,
	})
}

// lookup resolves the {id} path value. With authorize set the request must
// also carry a token issued for that session. On failure the response has
// been written.
func (g GameHandler) lookup(w http.ResponseWriter, r *http.Request, authorize bool) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, ErrBadSessionID)
		return nil, false
	}

	s, err := g.sessions.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		sendErrorOrLog(w, g.logger, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session", slog.Any("error", err))
		return nil, false
	}

	if authorize {
		claims, ok := middleware.SessionClaims(r.Context())
		if !ok || claims.SessionID != id.String() {
			sendErrorOrLog(w, g.logger, http.StatusUnauthorized, ErrUnauthorized)
			return nil, false
		}
	}
	return s, true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r, false)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, http.StatusOK, NewGameSessionDTO(s.Snapshot()))
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r, true)
	if !ok {
		return
	}

	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	move, err := ParseMove(dto.Move)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	index, err := coords.ParseIndex(dto.Square, s.Width, s.Height)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, fmt.Errorf("invalid square: %w", err))
		return
	}

	g.apply(w, s, mines.Action{Move: move, Index: index})
}

func (g GameHandler) Quit(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r, true)
	if !ok {
		return
	}
	g.apply(w, s, mines.QuitGame())
}

func (g GameHandler) apply(w http.ResponseWriter, s *session.Session, a mines.Action) {
	outcome, snap, reason := s.Apply(a)
	g.logger.Debug("applied action",
		slog.String("session", s.ID.String()),
		slog.String("move", a.Move.String()),
		slog.Int("index", a.Index),
		slog.String("outcome", outcome.String()),
	)
	sendJSONOrLog(w, g.logger, http.StatusOK, newMoveResponse(outcome, snap, reason))
}
