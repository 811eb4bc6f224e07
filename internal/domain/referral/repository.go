package referral

import "context"

type Repository interface {
	Get(ctx context.Context) (Snapshot, error)
	GenerateLink(ctx context.Context, kind LinkKind) (Link, error)
}
