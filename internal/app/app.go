package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 15 * time.Second
)

type App struct {
	logger   *slog.Logger
	cfg      *config.App
	router   *http.ServeMux
	sessions *session.Registry
	jwt      *config.JWT
	ws       *config.WebSocket
}

func New(logger *slog.Logger, cfg *config.App) (*App, error) {
	jwt, err := config.NewJWT(cfg.TokenSecret, cfg.TokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("unable to set up session tokens: %w", err)
	}

	mines.Log = logger.With(slog.String("component", "mines"))

	app := &App{
		logger:   logger,
		cfg:      cfg,
		router:   http.NewServeMux(),
		sessions: session.NewRegistry(logger, cfg.SessionTTL),
		jwt:      jwt,
		ws:       config.NewWebSocket(cfg.Development),
	}
	app.loadRoutes()

	return app, nil
}

// Start serves until ctx is done, then shuts the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	handler := middleware.Wrap(
		a.Handler(),
		middleware.Logging(a.logger),
		middleware.Recover(a.logger),
		middleware.Cors(a.cfg.AllowedOrigins),
		middleware.Auth(a.logger, a.jwt),
	)
	server := &http.Server{
		Addr:         a.cfg.Addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening",
			slog.String("addr", a.cfg.Addr),
			slog.String("base_path", a.cfg.BasePath),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return a.sessions.Janitor(gCtx, a.cfg.SweepInterval)
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
