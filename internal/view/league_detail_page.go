package view

import (
	"context"
	"sync"

	"github.com/riskibarqy/trading-league/internal/domain/league"
	"github.com/riskibarqy/trading-league/internal/platform/async"
)

const (
	LabelJoin        = "Join League"
	LabelJoining     = "Joining..."
	LabelLeagueEnded = "League Ended"

	MessageJoinFailed = "Failed to join league. Please try again."
)

type StandingRow struct {
	league.Standing
	Medal      string `json:"medal,omitempty"`
	Profitable bool   `json:"profitable"`
}

type LeagueDetailView struct {
	Route string `json:"route"`
	Load
	League      *league.Detail `json:"league,omitempty"`
	Tone        string         `json:"tone,omitempty"`
	Leaderboard []StandingRow  `json:"leaderboard"`
	Join        Control        `json:"join"`
	Joined      bool           `json:"joined"`
	ShareURL    string         `json:"shareUrl"`
	PremiumURL  string         `json:"premiumUrl"`
	BackURL     string         `json:"backUrl"`
}

// LeagueDetailPage shows one league and owns its join action.
type LeagueDetailPage struct {
	leagueID string
	leagues  LeagueService
	notifier Notifier
	loader   *async.Loader[string, league.Detail]
	join     *async.Invoker[league.JoinResult]

	mu     sync.Mutex
	joined bool
}

func newLeagueDetailPage(env pageEnv, leagueID string) *LeagueDetailPage {
	p := &LeagueDetailPage{
		leagueID: leagueID,
		leagues:  env.services.Leagues,
		notifier: env.effects,
		join:     async.NewInvoker[league.JoinResult](env.config("join-league")),
	}
	p.loader = async.NewLoader(func(ctx context.Context, id string) (league.Detail, error) {
		return p.leagues.GetLeagueDetail(ctx, id)
	}, env.config("league-detail"))
	return p
}

func (p *LeagueDetailPage) Route() string {
	return LeagueRoute(p.leagueID)
}

func (p *LeagueDetailPage) activate(ctx context.Context) {
	p.loader.Activate(ctx, p.leagueID)
}

func (p *LeagueDetailPage) close() {
	p.loader.Reset()
}

// Join starts the join action. It returns false when a join for this league
// is already in flight.
func (p *LeagueDetailPage) Join(ctx context.Context) (bool, error) {
	snap := p.loader.Snapshot()
	if snap.State != async.StateReady {
		return false, ErrNotReady
	}
	target := snap.Value.Summary
	if !target.Joinable() {
		return false, ErrControlDisabled
	}

	return p.join.Trigger(ctx, async.Action[league.JoinResult]{
		ID: target.ID,
		Call: func(ctx context.Context) (league.JoinResult, error) {
			return p.leagues.JoinLeague(ctx, target)
		},
		OnSuccess: func(res league.JoinResult) {
			p.mu.Lock()
			p.joined = true
			p.mu.Unlock()
			p.notifier.Alert(res.Message)
		},
		OnFailure: func(error) {
			p.notifier.Alert(MessageJoinFailed)
		},
	}), nil
}

func (p *LeagueDetailPage) Render() any {
	return p.View()
}

func (p *LeagueDetailPage) View() LeagueDetailView {
	snap := p.loader.Snapshot()

	p.mu.Lock()
	joined := p.joined
	p.mu.Unlock()

	out := LeagueDetailView{
		Route:       p.Route(),
		Load:        loadOf(snap),
		Leaderboard: []StandingRow{},
		Join:        Control{Label: LabelJoin, Disabled: true},
		Joined:      joined,
		ShareURL:    ShareRoute(p.leagueID),
		PremiumURL:  RoutePremium,
		BackURL:     RouteLeagues,
	}
	if snap.State != async.StateReady {
		return out
	}

	detail := snap.Value
	out.League = &detail
	out.Tone = detail.Status.Tone()
	for _, s := range detail.Leaderboard {
		out.Leaderboard = append(out.Leaderboard, StandingRow{
			Standing:   s,
			Medal:      s.Medal(),
			Profitable: s.Profitable(),
		})
	}
	out.Join = joinControl(detail.Summary, p.join.Busy(detail.ID))
	return out
}

func joinControl(s league.Summary, busy bool) Control {
	switch {
	case busy:
		return Control{Label: LabelJoining, Disabled: true, Busy: true}
	case !s.Joinable():
		return Control{Label: LabelLeagueEnded, Disabled: true}
	default:
		return Control{Label: LabelJoin}
	}
}

func (v LeagueDetailView) Settled() bool {
	return !v.Pending() && !v.Join.Busy
}
