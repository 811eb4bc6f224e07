package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/trading-league/internal/platform/resilience"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process TTL map. Expiry slides on every Get, so a key stays
// alive while it keeps being read. It holds presentational state only.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
	flight  resilience.SingleFlight[V]
	onEvict func(key string, value V)
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// OnEvict registers a callback run (outside the lock) for every expired or
// deleted entry.
func (s *Store[V]) OnEvict(fn func(key string, value V)) {
	s.mu.Lock()
	s.onEvict = fn
	s.mu.Unlock()
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	now := s.now()
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		return zero, false
	}
	if s.ttl > 0 && !e.expiresAt.After(now) {
		delete(s.entries, key)
		evict := s.onEvict
		s.mu.Unlock()
		if evict != nil {
			evict(key, e.value)
		}
		return zero, false
	}
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
		s.entries[key] = e
	}
	s.mu.Unlock()

	return e.value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{
		value:     value,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

func (s *Store[V]) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	e, ok := s.entries[key]
	delete(s.entries, key)
	evict := s.onEvict
	s.mu.Unlock()

	if ok && evict != nil {
		evict(key, e.value)
	}
}

func (s *Store[V]) DeletePrefix(ctx context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.RLock()
	keys := make([]string, 0)
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	s.mu.RUnlock()

	for _, key := range keys {
		s.Delete(ctx, key)
	}
}

// Sweep drops every expired entry and returns how many were removed.
func (s *Store[V]) Sweep(_ context.Context) int {
	if s.ttl <= 0 {
		return 0
	}

	now := s.now()
	s.mu.Lock()
	expired := make(map[string]V)
	for key, e := range s.entries {
		if !e.expiresAt.After(now) {
			expired[key] = e.value
			delete(s.entries, key)
		}
	}
	evict := s.onEvict
	s.mu.Unlock()

	if evict != nil {
		for key, value := range expired {
			evict(key, value)
		}
	}
	return len(expired)
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (V, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return zero, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	return value, nil
}
