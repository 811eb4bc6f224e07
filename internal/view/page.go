package view

import (
	"context"
	"net/url"
	"time"

	"github.com/riskibarqy/trading-league/internal/platform/async"
	"github.com/riskibarqy/trading-league/internal/platform/logging"
)

const (
	RouteLeagues   = "/leagues"
	RoutePremium   = "/premium"
	RouteDashboard = "/dashboard"
	RouteShare     = "/share"
)

func LeagueRoute(leagueID string) string {
	return RouteLeagues + "/" + url.PathEscape(leagueID)
}

// ShareRoute is the share page for a league, or for the platform when
// leagueID is empty.
func ShareRoute(leagueID string) string {
	if leagueID == "" {
		return RouteShare
	}
	return RouteShare + "?league=" + url.QueryEscape(leagueID)
}

// Page is one mounted view of a session. Its data fetch starts on activate
// and stops mattering on close.
type Page interface {
	Route() string
	Render() any
	activate(ctx context.Context)
	close()
}

type pageEnv struct {
	services Services
	effects  *EffectQueue
	clock    async.Clock
	copyHold time.Duration
	executor async.Executor
	logger   *logging.Logger
	onChange func()
}

func (e pageEnv) config(name string) async.Config {
	return async.Config{
		Name:     name,
		Executor: e.executor,
		Logger:   e.logger,
		OnChange: e.onChange,
	}
}
