// Package session keeps the games of a multi-player host in memory. Each
// session owns one game and serializes every access to it with its own lock.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minefield/internal/mines"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID            uuid.UUID
	Width, Height int
	StartedAt     time.Time

	mu        sync.Mutex
	game      *mines.Game
	endedAt   time.Time
	touchedAt time.Time
	now       func() time.Time
}

// Snapshot is a consistent copy of a session taken under its lock.
type Snapshot struct {
	ID          uuid.UUID
	Width       int
	Height      int
	MineCount   int
	FlagBudget  int
	OpenedCount int
	TargetOpen  int
	State       mines.Outcome
	Cells       []mines.Cell
	StartedAt   time.Time
	EndedAt     *time.Time
}

func (s Snapshot) Over() bool {
	return s.State.Terminal()
}

func (s *Session) snapshot() Snapshot {
	b := s.game.Board()
	snap := Snapshot{
		ID:          s.ID,
		Width:       b.Width(),
		Height:      b.Height(),
		MineCount:   b.MineCount(),
		FlagBudget:  b.FlagBudget(),
		OpenedCount: b.OpenedCount(),
		TargetOpen:  b.TargetOpenCount(),
		State:       s.game.State(),
		Cells:       b.Cells(),
		StartedAt:   s.StartedAt,
	}
	if !s.endedAt.IsZero() {
		endedAt := s.endedAt
		snap.EndedAt = &endedAt
	}
	return snap
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = s.now()
	return s.snapshot()
}

// Apply runs one action to completion. A rejected action is reported with
// the reason from [mines.Game.Check] next to an [mines.Unchanged] outcome.
//
// panics [mines.AssertionError] on an index outside the board
func (s *Session) Apply(a mines.Action) (mines.Outcome, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.touchedAt = now

	reason := s.game.Check(a)
	outcome := s.game.Apply(a)
	if outcome.Terminal() {
		s.endedAt = now.UTC()
	}
	if outcome != mines.Unchanged {
		reason = nil
	}
	return outcome, s.snapshot(), reason
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

type Registry struct {
	logger *slog.Logger
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry(logger *slog.Logger, ttl time.Duration) *Registry {
	return &Registry{
		logger:   logger,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (r *Registry) Create(game *mines.Game) *Session {
	now := r.now()
	b := game.Board()
	s := &Session{
		ID:        uuid.New(),
		Width:     b.Width(),
		Height:    b.Height(),
		StartedAt: now.UTC(),
		game:      game,
		touchedAt: now,
		now:       r.now,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.logger.Debug("created session", slog.String("id", s.ID.String()))
	return s
}

func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions that have not been touched for longer than the ttl
// and returns how many were dropped.
func (r *Registry) Sweep() int {
	deadline := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for id, s := range r.sessions {
		if s.idleSince().Before(deadline) {
			delete(r.sessions, id)
			dropped++
		}
	}
	if dropped > 0 {
		r.logger.Info("dropped idle sessions",
			slog.Int("dropped", dropped),
			slog.Int("remaining", len(r.sessions)),
		)
	}
	return dropped
}

// Janitor sweeps every interval until ctx is done.
func (r *Registry) Janitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}
