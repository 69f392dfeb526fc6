package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minefield/internal/console"
	"github.com/vancomm/minefield/internal/session"
)

// runGameLoop reads console commands from text frames, one per line, and
// answers every applied command with a [MoveResponse]. Input errors are
// answered with an error body and do not end the loop; a terminal outcome
// does.
func (g GameHandler) runGameLoop(conn *websocket.Conn, s *session.Session) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		lines := strings.Split(strings.TrimSpace(string(buf)), "\n")
		for _, line := range lines {
			action, err := console.ParseCommand(line, s.Width, s.Height)
			var inputErr *console.InputError
			if errors.As(err, &inputErr) {
				if err := conn.WriteJSON(errorBody{inputErr.Message}); err != nil {
					return fmt.Errorf("unable to write json: %w", err)
				}
				continue
			}

			outcome, snap, reason := s.Apply(action)
			if err := conn.WriteJSON(newMoveResponse(outcome, snap, reason)); err != nil {
				return fmt.Errorf("unable to write json: %w", err)
			}
			if snap.Over() {
				return nil
			}
		}
	}
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.lookup(w, r, true)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(g.ws.ReadLimit)

	g.logger.Debug("established WS connection", slog.String("session", s.ID.String()))

	err = g.runGameLoop(conn, s)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		g.logger.Warn("error in ws loop", slog.Any("error", err))
		return
	}
	conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
