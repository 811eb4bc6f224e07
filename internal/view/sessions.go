package view

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/trading-league/internal/platform/cache"
	"github.com/riskibarqy/trading-league/internal/platform/id"
)

// Sessions keeps browser sessions alive while they are used.
type Sessions struct {
	store    *cache.Store[*Session]
	ids      id.Generator
	services Services
	opts     Options
}

func NewSessions(ttl time.Duration, ids id.Generator, services Services, opts Options) *Sessions {
	store := cache.NewStore[*Session](ttl)
	store.OnEvict(func(_ string, s *Session) {
		s.Close()
	})

	return &Sessions{
		store:    store,
		ids:      ids,
		services: services,
		opts:     opts,
	}
}

// Resolve returns the session for sessionID, recreating it under the same id
// when it expired. A malformed or empty id gets a fresh session. created is
// true when the caller must hand the id back to the browser.
func (s *Sessions) Resolve(ctx context.Context, sessionID string) (*Session, bool, error) {
	if id.ValidUUID(sessionID) {
		if existing, ok := s.store.Get(ctx, sessionID); ok {
			return existing, false, nil
		}
		session, err := s.store.GetOrLoad(ctx, sessionID, func(context.Context) (*Session, error) {
			return NewSession(sessionID, s.services, s.opts), nil
		})
		return session, false, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return nil, false, fmt.Errorf("new session id: %w", err)
	}
	session, err := s.store.GetOrLoad(ctx, newID, func(context.Context) (*Session, error) {
		return NewSession(newID, s.services, s.opts), nil
	})
	if err != nil {
		return nil, false, err
	}
	return session, true, nil
}

func (s *Sessions) Get(ctx context.Context, sessionID string) (*Session, bool) {
	return s.store.Get(ctx, sessionID)
}

// Sweep closes expired sessions.
func (s *Sessions) Sweep(ctx context.Context) int {
	return s.store.Sweep(ctx)
}

func (s *Sessions) Len() int {
	return s.store.Len()
}
