package view

import (
	"context"
	"sync"

	"github.com/riskibarqy/trading-league/internal/domain/league"
	"github.com/riskibarqy/trading-league/internal/platform/async"
)

const MessageNoLeagues = "No leagues found for the selected filter."

var filterLabels = map[league.Filter]string{
	league.FilterAll:          "All",
	league.FilterActive:       "Active",
	league.FilterStartingSoon: "Starting Soon",
	league.FilterEnded:        "Ended",
}

type FilterOption struct {
	Value    league.Filter `json:"value"`
	Label    string        `json:"label"`
	Selected bool          `json:"selected"`
}

type LeagueCard struct {
	league.Summary
	Tone string `json:"tone"`
	URL  string `json:"url"`
}

type LeaguesView struct {
	Route string `json:"route"`
	Load
	Filters      []FilterOption `json:"filters"`
	Leagues      []LeagueCard   `json:"leagues"`
	EmptyMessage string         `json:"emptyMessage,omitempty"`
}

// LeaguesPage is the filterable league listing.
type LeaguesPage struct {
	leagues  LeagueService
	loader   *async.Loader[struct{}, []league.Summary]
	onChange func()

	mu     sync.Mutex
	filter league.Filter
}

func newLeaguesPage(env pageEnv) *LeaguesPage {
	p := &LeaguesPage{
		leagues:  env.services.Leagues,
		onChange: env.onChange,
		filter:   league.FilterAll,
	}
	p.loader = async.NewLoader(func(ctx context.Context, _ struct{}) ([]league.Summary, error) {
		return p.leagues.ListLeagues(ctx)
	}, env.config("leagues"))
	return p
}

func (p *LeaguesPage) Route() string {
	return RouteLeagues
}

func (p *LeaguesPage) activate(ctx context.Context) {
	p.loader.Activate(ctx, struct{}{})
}

func (p *LeaguesPage) close() {
	p.loader.Reset()
}

// SetFilter changes the filter without refetching.
func (p *LeaguesPage) SetFilter(f league.Filter) {
	p.mu.Lock()
	changed := p.filter != f
	p.filter = f
	p.mu.Unlock()

	if changed {
		p.onChange()
	}
}

func (p *LeaguesPage) Filter() league.Filter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

func (p *LeaguesPage) Render() any {
	return p.View()
}

func (p *LeaguesPage) View() LeaguesView {
	snap := p.loader.Snapshot()
	filter := p.Filter()

	out := LeaguesView{
		Route:   RouteLeagues,
		Load:    loadOf(snap),
		Filters: make([]FilterOption, 0, len(league.Filters())),
		Leagues: []LeagueCard{},
	}
	for _, f := range league.Filters() {
		out.Filters = append(out.Filters, FilterOption{Value: f, Label: filterLabels[f], Selected: f == filter})
	}
	if snap.State != async.StateReady {
		return out
	}

	for _, item := range p.leagues.FilterLeagues(snap.Value, filter) {
		out.Leagues = append(out.Leagues, LeagueCard{
			Summary: item,
			Tone:    item.Status.Tone(),
			URL:     LeagueRoute(item.ID),
		})
	}
	if len(out.Leagues) == 0 {
		out.EmptyMessage = MessageNoLeagues
	}
	return out
}

// Settled reports whether nothing on the page is still in flight.
func (v LeaguesView) Settled() bool {
	return !v.Pending()
}
