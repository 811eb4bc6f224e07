package view

import (
	"context"

	"github.com/riskibarqy/trading-league/internal/domain/league"
	"github.com/riskibarqy/trading-league/internal/domain/referral"
	"github.com/riskibarqy/trading-league/internal/domain/share"
	"github.com/riskibarqy/trading-league/internal/domain/subscription"
	"github.com/riskibarqy/trading-league/internal/usecase"
)

type LeagueService interface {
	ListLeagues(ctx context.Context) ([]league.Summary, error)
	FilterLeagues(items []league.Summary, filter league.Filter) []league.Summary
	GetLeagueDetail(ctx context.Context, leagueID string) (league.Detail, error)
	JoinLeague(ctx context.Context, target league.Summary) (league.JoinResult, error)
}

type SubscriptionService interface {
	Plans() []subscription.Plan
	CreateSubscription(ctx context.Context, planID string) (subscription.Result, error)
}

type ReferralService interface {
	GetReferralData(ctx context.Context) (referral.Snapshot, error)
}

type ShareService interface {
	PrepareShare(ctx context.Context, leagueID string) (usecase.ShareTarget, error)
	ShareToSocial(ctx context.Context, platform share.Platform, content string) (share.Result, error)
}

// Services are the collaborators pages call.
type Services struct {
	Leagues       LeagueService
	Subscriptions SubscriptionService
	Referrals     ReferralService
	Shares        ShareService
}
