package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/vancomm/minefield/internal/handlers"
	"github.com/vancomm/minefield/internal/mines"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.sessions, a.jwt, a.ws, mines.NewRandSource(createRand()),
	)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("POST /game/{id}/quit", game.Quit)
	a.router.HandleFunc("GET /game/{id}/connect", game.ConnectWS)
}

// Handler is the router behind the middleware chain, mounted under the
// configured base path.
func (a *App) Handler() http.Handler {
	var h http.Handler = a.router
	if a.cfg.BasePath != "" {
		h = http.StripPrefix(a.cfg.BasePath, h)
	}
	return h
}
