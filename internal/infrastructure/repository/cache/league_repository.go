package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/trading-league/internal/domain/league"
	basecache "github.com/riskibarqy/trading-league/internal/platform/cache"
)

const leagueListKey = "league:list"

// LeagueRepository is a read-through cache in front of the league
// collaborator. Join is never cached.
type LeagueRepository struct {
	next    league.Repository
	lists   *basecache.Store[[]league.Summary]
	details *basecache.Store[cachedLeagueDetail]
}

type cachedLeagueDetail struct {
	value  league.Detail
	exists bool
}

func NewLeagueRepository(next league.Repository, ttl time.Duration) *LeagueRepository {
	return &LeagueRepository{
		next:    next,
		lists:   basecache.NewStore[[]league.Summary](ttl),
		details: basecache.NewStore[cachedLeagueDetail](ttl),
	}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.Summary, error) {
	items, err := r.lists.GetOrLoad(ctx, leagueListKey, func(ctx context.Context) ([]league.Summary, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.Summary(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]league.Summary(nil), items...), nil
}

func (r *LeagueRepository) GetDetail(ctx context.Context, leagueID string) (league.Detail, bool, error) {
	cached, err := r.details.GetOrLoad(ctx, "league:detail:"+leagueID, func(ctx context.Context) (cachedLeagueDetail, error) {
		item, exists, err := r.next.GetDetail(ctx, leagueID)
		if err != nil {
			return cachedLeagueDetail{}, err
		}
		return cachedLeagueDetail{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.Detail{}, false, err
	}

	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) Join(ctx context.Context, leagueID string) (league.JoinResult, error) {
	return r.next.Join(ctx, leagueID)
}
