package view

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/trading-league/internal/platform/async"
	"github.com/riskibarqy/trading-league/internal/platform/logging"
)

// Options configure the pages of every session.
type Options struct {
	Executor async.Executor
	Clock    async.Clock
	Logger   *logging.Logger
	CopyHold time.Duration
}

// Session is one browser's view state. It holds a single mounted page:
// mounting a different route discards the previous one.
type Session struct {
	id      string
	env     pageEnv
	effects *EffectQueue
	changes *Broadcaster

	mu   sync.Mutex
	page Page
}

// Frame is a rendered page plus the effects the browser must apply.
type Frame struct {
	SessionID string   `json:"sessionId"`
	Route     string   `json:"route"`
	View      any      `json:"view"`
	Effects   []Effect `json:"effects"`
}

func NewSession(id string, services Services, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = async.SystemClock{}
	}
	if opts.Executor == nil {
		opts.Executor = async.GoExecutor{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}

	s := &Session{
		id:      id,
		changes: NewBroadcaster(),
	}
	s.effects = NewEffectQueue(s.changes.Notify)
	s.env = pageEnv{
		services: services,
		effects:  s.effects,
		clock:    opts.Clock,
		copyHold: opts.CopyHold,
		executor: opts.Executor,
		logger:   opts.Logger.With("session_id", id),
		onChange: s.changes.Notify,
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Leagues(ctx context.Context) *LeaguesPage {
	return mount(ctx, s, RouteLeagues, func() *LeaguesPage { return newLeaguesPage(s.env) })
}

func (s *Session) LeagueDetail(ctx context.Context, leagueID string) *LeagueDetailPage {
	return mount(ctx, s, LeagueRoute(leagueID), func() *LeagueDetailPage { return newLeagueDetailPage(s.env, leagueID) })
}

func (s *Session) Pricing(ctx context.Context) *PricingPage {
	return mount(ctx, s, RoutePremium, func() *PricingPage { return newPricingPage(s.env) })
}

func (s *Session) Dashboard(ctx context.Context) *ReferralDashboard {
	return mount(ctx, s, RouteDashboard, func() *ReferralDashboard { return newReferralDashboard(s.env) })
}

func (s *Session) Share(ctx context.Context, leagueID string) *ShareWidget {
	return mount(ctx, s, ShareRoute(leagueID), func() *ShareWidget { return newShareWidget(s.env, leagueID) })
}

// Current is the mounted page, if any.
func (s *Session) Current() (Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page, s.page != nil
}

// Frame renders page and drains the pending effects.
func (s *Session) Frame(page Page) Frame {
	effects := s.effects.Drain()
	if effects == nil {
		effects = []Effect{}
	}
	return Frame{
		SessionID: s.id,
		Route:     page.Route(),
		View:      page.Render(),
		Effects:   effects,
	}
}

// Subscribe signals every observable change of the session.
func (s *Session) Subscribe() (<-chan struct{}, func()) {
	return s.changes.Subscribe()
}

// Close discards the mounted page and ends every subscription.
func (s *Session) Close() {
	s.mu.Lock()
	page := s.page
	s.page = nil
	s.mu.Unlock()

	if page != nil {
		page.close()
	}
	s.changes.Close()
}

func mount[P Page](ctx context.Context, s *Session, route string, create func() P) P {
	s.mu.Lock()
	var previous Page
	page, ok := s.page.(P)
	if !ok || page.Route() != route {
		previous = s.page
		page = create()
		s.page = page
	}
	s.mu.Unlock()

	if previous != nil {
		previous.close()
	}
	page.activate(ctx)
	return page
}
