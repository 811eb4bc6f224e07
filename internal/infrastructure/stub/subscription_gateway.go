package stub

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/trading-league/internal/domain/subscription"
	"github.com/riskibarqy/trading-league/internal/platform/id"
)

const UpgradeRedirectURL = "/dashboard?upgraded=true"

// SubscriptionGateway pretends to create a subscription; nothing is charged.
type SubscriptionGateway struct {
	latency Latency
	ids     id.Generator
}

func NewSubscriptionGateway(ids id.Generator, latency Latency) *SubscriptionGateway {
	return &SubscriptionGateway{latency: latency, ids: ids}
}

func (g *SubscriptionGateway) Create(ctx context.Context, planID string) (subscription.Result, error) {
	if err := g.latency.wait(ctx, "create subscription", LatencyCreateSubscription); err != nil {
		return subscription.Result{}, err
	}

	subID, err := g.ids.NewID()
	if err != nil {
		return subscription.Result{}, crerr.Wrapf(err, "new subscription id for plan=%s", planID)
	}

	return subscription.Result{
		Success:        true,
		SubscriptionID: subID,
		RedirectURL:    UpgradeRedirectURL,
	}, nil
}
