package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/trading-league/internal/config"
	"github.com/riskibarqy/trading-league/internal/domain/league"
	"github.com/riskibarqy/trading-league/internal/domain/subscription"
	repocache "github.com/riskibarqy/trading-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/trading-league/internal/infrastructure/stub"
	"github.com/riskibarqy/trading-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/trading-league/internal/platform/id"
	"github.com/riskibarqy/trading-league/internal/platform/logging"
	"github.com/riskibarqy/trading-league/internal/platform/workerpool"
	"github.com/riskibarqy/trading-league/internal/usecase"
	"github.com/riskibarqy/trading-league/internal/view"
)

// App owns the HTTP server and the long-lived pieces behind it.
type App struct {
	Server *http.Server

	sessions      *view.Sessions
	pool          *workerpool.Pool
	logger        *logging.Logger
	sweepInterval time.Duration
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	latency := stub.Latency{Scale: cfg.StubLatencyScale}
	var leagueRepo league.Repository = stub.NewLeagueRepository(stub.SeedLeagues(), latency)
	if cfg.CacheEnabled {
		leagueRepo = repocache.NewLeagueRepository(leagueRepo, cfg.CacheTTL)
	}
	referralRepo := stub.NewReferralRepository(stub.SeedReferral(), cfg.ReferralBaseURL, latency)
	subscriptionGateway := stub.NewSubscriptionGateway(idgen.NewTimestampGenerator("sub_", nil), latency)
	shareGateway := stub.NewShareGateway(latency)

	leagueSvc := usecase.NewLeagueService(leagueRepo)
	referralSvc := usecase.NewReferralService(referralRepo)
	services := view.Services{
		Leagues:       leagueSvc,
		Subscriptions: usecase.NewSubscriptionService(subscription.DefaultPlans(), subscriptionGateway),
		Referrals:     referralSvc,
		Shares:        usecase.NewShareService(leagueSvc, referralSvc, shareGateway),
	}

	pool, err := workerpool.New(cfg.WorkerPoolSize, logger.Named("workerpool"))
	if err != nil {
		return nil, err
	}

	sessions := view.NewSessions(cfg.SessionTTL, idgen.NewUUIDGenerator(), services, view.Options{
		Executor: pool,
		Logger:   logger.Named("view"),
		CopyHold: cfg.CopyConfirmationHold,
	})

	handler, err := httpapi.NewHandler(logger.Named("httpapi"), cfg.CORSAllowedOrigins)
	if err != nil {
		_ = pool.Release(time.Second)
		return nil, fmt.Errorf("build http handler: %w", err)
	}

	cookie := httpapi.SessionCookie{
		Name:   cfg.SessionCookieName,
		MaxAge: cfg.SessionTTL,
		Secure: cfg.SessionCookieSecure,
	}
	router := httpapi.NewRouter(handler, sessions, cookie, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	if cfg.HTTPAddr == "" {
		_ = pool.Release(time.Second)
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		Server:        server,
		sessions:      sessions,
		pool:          pool,
		logger:        logger,
		sweepInterval: cfg.SessionSweepInterval,
	}, nil
}

// SweepSessions evicts idle sessions on every tick until ctx is done.
func (a *App) SweepSessions(ctx context.Context) {
	ticker := time.NewTicker(a.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.sessions.Sweep(ctx); n > 0 {
				a.logger.DebugContext(ctx, "idle sessions evicted", "count", n, "remaining", a.sessions.Len())
			}
		}
	}
}

// Close releases the worker pool, waiting up to timeout for in-flight
// fetches and actions.
func (a *App) Close(timeout time.Duration) error {
	return a.pool.Release(timeout)
}
