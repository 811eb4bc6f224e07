package league

import "context"

// Repository is the league collaborator consumed by views.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	GetDetail(ctx context.Context, leagueID string) (Detail, bool, error)
	Join(ctx context.Context, leagueID string) (JoinResult, error)
}
