package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/trading-league/internal/domain/league"
)

type LeagueService struct {
	leagueRepo league.Repository
}

func NewLeagueService(leagueRepo league.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list leagues: %w", ErrDependencyUnavailable, err)
	}
	if err := validateEach(ctx, "league", leagues); err != nil {
		return nil, err
	}

	return leagues, nil
}

// FilterLeagues keeps the collaborator order.
func (s *LeagueService) FilterLeagues(items []league.Summary, filter league.Filter) []league.Summary {
	return filter.Apply(items)
}

func (s *LeagueService) GetLeagueDetail(ctx context.Context, leagueID string) (league.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeagueDetail")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.Detail{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	detail, exists, err := s.leagueRepo.GetDetail(ctx, leagueID)
	if err != nil {
		return league.Detail{}, fmt.Errorf("%w: get league detail: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return league.Detail{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	if err := validatePayload(ctx, "league detail", detail); err != nil {
		return league.Detail{}, err
	}

	return detail, nil
}

// JoinLeague refuses ended leagues before reaching the collaborator.
func (s *LeagueService) JoinLeague(ctx context.Context, target league.Summary) (league.JoinResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.JoinLeague")
	defer span.End()

	leagueID := strings.TrimSpace(target.ID)
	if leagueID == "" {
		return league.JoinResult{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if !target.Joinable() {
		return league.JoinResult{}, fmt.Errorf("%w: league=%s", ErrLeagueClosed, leagueID)
	}

	result, err := s.leagueRepo.Join(ctx, leagueID)
	if err != nil {
		return league.JoinResult{}, fmt.Errorf("%w: join league: %w", ErrDependencyUnavailable, err)
	}
	if err := validatePayload(ctx, "join result", result); err != nil {
		return league.JoinResult{}, err
	}
	if !result.Success {
		return league.JoinResult{}, fmt.Errorf("%w: join league=%s: %s", ErrActionRejected, leagueID, result.Message)
	}

	return result, nil
}
