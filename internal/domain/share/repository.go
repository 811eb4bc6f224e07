package share

import "context"

type Gateway interface {
	Share(ctx context.Context, platform Platform, content string) (Result, error)
}
