package async

import (
	"context"
	"sort"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/panics"
)

// Action is one user-triggered call. ID is the identity the busy flag is
// keyed by (a plan id, a platform, a league id).
type Action[R any] struct {
	ID        string
	Call      func(ctx context.Context) (R, error)
	OnSuccess func(R)
	OnFailure func(error)
}

// Invoker tracks one busy flag per action identity. Distinct identities run
// concurrently; a trigger for an identity that is already busy is inert.
type Invoker[R any] struct {
	cfg Config

	mu   sync.Mutex
	busy map[string]struct{}
}

func NewInvoker[R any](cfg Config) *Invoker[R] {
	return &Invoker[R]{
		cfg:  cfg.normalize(),
		busy: make(map[string]struct{}),
	}
}

// Trigger marks the action busy and runs it on the executor. It returns false
// when the identity is already in flight, in which case Call is not invoked.
func (i *Invoker[R]) Trigger(ctx context.Context, action Action[R]) bool {
	i.mu.Lock()
	if _, ok := i.busy[action.ID]; ok {
		i.mu.Unlock()
		return false
	}
	i.busy[action.ID] = struct{}{}
	i.mu.Unlock()

	i.cfg.OnChange()

	runCtx := context.WithoutCancel(ctx)
	if err := i.cfg.Executor.Submit(func() { i.run(runCtx, action) }); err != nil {
		func() {
			defer i.finish(action.ID)
			i.fail(runCtx, action, crerr.Wrap(err, "submit action"))
		}()
	}

	return true
}

func (i *Invoker[R]) Busy(id string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	_, ok := i.busy[id]
	return ok
}

// BusyIDs lists in-flight identities in lexical order.
func (i *Invoker[R]) BusyIDs() []string {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := make([]string, 0, len(i.busy))
	for id := range i.busy {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (i *Invoker[R]) run(ctx context.Context, action Action[R]) {
	defer i.finish(action.ID)

	var (
		result R
		err    error
		pc     panics.Catcher
	)
	pc.Try(func() {
		result, err = action.Call(ctx)
	})
	if rec := pc.Recovered(); rec != nil {
		err = crerr.Wrap(rec.AsError(), "action panicked")
	}
	if err != nil {
		i.fail(ctx, action, err)
		return
	}

	if action.OnSuccess != nil {
		action.OnSuccess(result)
	}
}

func (i *Invoker[R]) fail(ctx context.Context, action Action[R], err error) {
	i.cfg.Logger.ErrorContext(ctx, "action failed", "action", i.cfg.Name, "id", action.ID, "error", err)
	if action.OnFailure != nil {
		action.OnFailure(err)
	}
}

func (i *Invoker[R]) finish(id string) {
	i.mu.Lock()
	delete(i.busy, id)
	i.mu.Unlock()

	i.cfg.OnChange()
}
