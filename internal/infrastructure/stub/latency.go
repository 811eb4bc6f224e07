package stub

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
)

const (
	LatencyListLeagues        = 1000 * time.Millisecond
	LatencyLeagueDetail       = 800 * time.Millisecond
	LatencyJoinLeague         = 500 * time.Millisecond
	LatencyCreateSubscription = 1500 * time.Millisecond
	LatencyReferralData       = 800 * time.Millisecond
	LatencyReferralLink       = 500 * time.Millisecond
	LatencyShare              = 300 * time.Millisecond
)

// Latency simulates the network delay of a collaborator. Scale multiplies
// every delay; zero disables sleeping.
type Latency struct {
	Scale float64
}

func (l Latency) wait(ctx context.Context, op string, base time.Duration) error {
	d := time.Duration(float64(base) * l.Scale)
	if d <= 0 {
		return crerr.Wrapf(ctx.Err(), "%s", op)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return crerr.Wrapf(ctx.Err(), "%s interrupted", op)
	case <-timer.C:
		return nil
	}
}
