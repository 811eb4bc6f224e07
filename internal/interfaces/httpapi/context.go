package httpapi

import (
	"context"

	"github.com/riskibarqy/trading-league/internal/view"
)

type contextKey string

const sessionContextKey contextKey = "view_session"

func withSession(ctx context.Context, s *view.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

func sessionFromContext(ctx context.Context) (*view.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*view.Session)
	return s, ok && s != nil
}
