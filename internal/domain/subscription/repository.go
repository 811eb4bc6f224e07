package subscription

import "context"

// Gateway creates subscriptions. No payment is processed.
type Gateway interface {
	Create(ctx context.Context, planID string) (Result, error)
}
