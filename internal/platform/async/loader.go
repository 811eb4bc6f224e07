package async

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/panics"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// FetchFunc is the data-fetch collaborator of a view, parameterised by the
// activation key (a route id, or struct{} for views without one).
type FetchFunc[K comparable, T any] func(ctx context.Context, key K) (T, error)

// LoadSnapshot is a consistent read of a loader.
type LoadSnapshot[K comparable, T any] struct {
	State State
	Key   K
	Value T
	Err   error
}

// Reason is the diagnostic message of a failed load.
func (s LoadSnapshot[K, T]) Reason() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Loader drives Idle -> Loading -> {Ready, Failed} for one view. The fetch
// runs once per activation; activating with a different key starts a new
// generation and results of older generations are dropped.
type Loader[K comparable, T any] struct {
	cfg   Config
	fetch FetchFunc[K, T]

	mu     sync.Mutex
	active bool
	gen    uint64
	state  State
	key    K
	value  T
	err    error
}

func NewLoader[K comparable, T any](fetch FetchFunc[K, T], cfg Config) *Loader[K, T] {
	return &Loader[K, T]{
		cfg:   cfg.normalize(),
		fetch: fetch,
		state: StateIdle,
	}
}

// Activate moves the loader to Loading and starts the fetch. It returns false
// without doing anything when the loader is already active for key, whatever
// the outcome of that activation was.
func (l *Loader[K, T]) Activate(ctx context.Context, key K) bool {
	l.mu.Lock()
	if l.active && l.key == key {
		l.mu.Unlock()
		return false
	}
	var zero T
	l.gen++
	gen := l.gen
	l.active = true
	l.key = key
	l.state = StateLoading
	l.value = zero
	l.err = nil
	l.mu.Unlock()

	l.cfg.OnChange()

	// The activation outlives the request that caused it.
	fetchCtx := context.WithoutCancel(ctx)
	if err := l.cfg.Executor.Submit(func() { l.run(fetchCtx, gen, key) }); err != nil {
		l.complete(fetchCtx, gen, zero, crerr.Wrap(err, "submit fetch"))
	}

	return true
}

// Reset returns the loader to Idle; an in-flight fetch is ignored when it
// completes.
func (l *Loader[K, T]) Reset() {
	l.mu.Lock()
	var zeroK K
	var zeroT T
	l.gen++
	l.active = false
	l.state = StateIdle
	l.key = zeroK
	l.value = zeroT
	l.err = nil
	l.mu.Unlock()

	l.cfg.OnChange()
}

func (l *Loader[K, T]) Snapshot() LoadSnapshot[K, T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return LoadSnapshot[K, T]{
		State: l.state,
		Key:   l.key,
		Value: l.value,
		Err:   l.err,
	}
}

func (l *Loader[K, T]) run(ctx context.Context, gen uint64, key K) {
	var (
		value T
		err   error
		pc    panics.Catcher
	)
	pc.Try(func() {
		value, err = l.fetch(ctx, key)
	})
	if rec := pc.Recovered(); rec != nil {
		err = crerr.Wrap(rec.AsError(), "fetch panicked")
	}

	l.complete(ctx, gen, value, err)
}

func (l *Loader[K, T]) complete(ctx context.Context, gen uint64, value T, err error) {
	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		return
	}
	if err != nil {
		l.state = StateFailed
		l.err = err
	} else {
		l.state = StateReady
		l.value = value
	}
	key := l.key
	l.mu.Unlock()

	if err != nil {
		l.cfg.Logger.ErrorContext(ctx, "fetch failed", "view", l.cfg.Name, "key", key, "error", err)
	}
	l.cfg.OnChange()
}
