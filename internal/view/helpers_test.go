package view

import (
	"testing"
	"time"

	"github.com/riskibarqy/trading-league/internal/platform/async"
	"github.com/riskibarqy/trading-league/internal/platform/logging"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func newTestSession(services Services, exec async.Executor, clock async.Clock) *Session {
	return NewSession("11111111-1111-4111-8111-111111111111", services, Options{
		Executor: exec,
		Clock:    clock,
		Logger:   logging.NewNop(),
		CopyHold: async.MinConfirmationHold,
	})
}

func effectsOf(kind EffectKind, effects []Effect) []string {
	out := make([]string, 0)
	for _, e := range effects {
		if e.Kind == kind {
			out = append(out, e.Value)
		}
	}
	return out
}
