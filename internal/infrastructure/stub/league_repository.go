package stub

import (
	"context"
	"sync"

	"github.com/riskibarqy/trading-league/internal/domain/league"
)

type LeagueRepository struct {
	latency Latency

	mu     sync.RWMutex
	items  map[string]league.Summary
	orders []string
}

func NewLeagueRepository(leagues []league.Summary, latency Latency) *LeagueRepository {
	items := make(map[string]league.Summary, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		latency: latency,
		items:   items,
		orders:  orders,
	}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.Summary, error) {
	if err := r.latency.wait(ctx, "list leagues", LatencyListLeagues); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.Summary, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *LeagueRepository) GetDetail(ctx context.Context, leagueID string) (league.Detail, bool, error) {
	if err := r.latency.wait(ctx, "get league detail", LatencyLeagueDetail); err != nil {
		return league.Detail{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	summary, ok := r.items[leagueID]
	if !ok {
		return league.Detail{}, false, nil
	}

	return SeedDetail(summary), true, nil
}

// Join always succeeds; the closed-league guard lives in the caller.
func (r *LeagueRepository) Join(ctx context.Context, leagueID string) (league.JoinResult, error) {
	if err := r.latency.wait(ctx, "join league", LatencyJoinLeague); err != nil {
		return league.JoinResult{}, err
	}

	return league.JoinResult{
		Success: true,
		Message: "Successfully joined the league!",
	}, nil
}
