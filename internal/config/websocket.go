package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

const wsReadLimit = 4096

type WebSocket struct {
	Upgrader  websocket.Upgrader
	ReadLimit int64
}

// NewWebSocket accepts any origin in development and only same-origin
// requests otherwise.
func NewWebSocket(development bool) *WebSocket {
	upgrader := websocket.Upgrader{}
	if development {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		ReadLimit: wsReadLimit,
	}

	return ws
}
