package view

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/trading-league/internal/domain/league"
	"github.com/riskibarqy/trading-league/internal/infrastructure/stub"
	leaguemock "github.com/riskibarqy/trading-league/internal/mocks/domain/league"
	"github.com/riskibarqy/trading-league/internal/platform/async"
	"github.com/riskibarqy/trading-league/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestLeaguesPage_LoadingThenFilteredGrid(t *testing.T) {
	release := make(chan struct{})
	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("List", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(stub.SeedLeagues(), nil).
		Once()

	session := newTestSession(Services{Leagues: usecase.NewLeagueService(leagueRepo)}, async.GoExecutor{}, nil)
	page := session.Leagues(context.Background())

	if got := page.View(); got.Status != StatusLoading || len(got.Leagues) != 0 {
		t.Fatalf("expected loading placeholder before fetch resolves, got %+v", got)
	}

	close(release)
	waitFor(t, func() bool { return page.View().Status == StatusReady })

	view := page.View()
	seed := stub.SeedLeagues()
	if len(view.Leagues) != len(seed) {
		t.Fatalf("expected %d leagues, got %d", len(seed), len(view.Leagues))
	}
	for i, card := range view.Leagues {
		if card.Summary != seed[i] {
			t.Fatalf("card %d does not reflect payload: got=%+v want=%+v", i, card.Summary, seed[i])
		}
	}
	if view.Leagues[0].Tone != "green" || view.Leagues[2].Tone != "yellow" || view.Leagues[3].Tone != "gray" {
		t.Fatalf("unexpected status tones: %+v", view.Leagues)
	}

	page.SetFilter(league.FilterActive)
	active := page.View().Leagues
	if len(active) != 2 || active[0].ID != "1" || active[1].ID != "2" {
		t.Fatalf("expected the two active leagues, got %+v", active)
	}

	page.SetFilter(league.FilterStartingSoon)
	if got := page.View().Leagues; len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected the starting soon league, got %+v", got)
	}

	// Re-mounting the same route keeps the page and does not refetch.
	if session.Leagues(context.Background()) != page {
		t.Fatalf("expected the mounted page to be reused")
	}
	if page.Filter() != league.FilterStartingSoon {
		t.Fatalf("expected filter kept across renders")
	}
}

func TestLeaguesPage_EmptyFilterMessage(t *testing.T) {
	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("List", mock.Anything).Return(stub.SeedLeagues()[:2], nil).Once()

	session := newTestSession(Services{Leagues: usecase.NewLeagueService(leagueRepo)}, async.InlineExecutor{}, nil)
	page := session.Leagues(context.Background())
	page.SetFilter(league.FilterEnded)

	view := page.View()
	if len(view.Leagues) != 0 || view.EmptyMessage != MessageNoLeagues {
		t.Fatalf("expected empty message, got %+v", view)
	}
	for _, f := range view.Filters {
		if f.Selected != (f.Value == league.FilterEnded) {
			t.Fatalf("unexpected filter selection: %+v", view.Filters)
		}
	}
}

func TestLeaguesPage_FetchFailureIsExplicit(t *testing.T) {
	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("List", mock.Anything).Return(nil, errors.New("upstream timeout")).Once()

	session := newTestSession(Services{Leagues: usecase.NewLeagueService(leagueRepo)}, async.InlineExecutor{}, nil)
	view := session.Leagues(context.Background()).View()

	if view.Status != StatusFailed || view.Message != MessageLoadFailed || view.Reason == "" {
		t.Fatalf("expected failed state with reason, got %+v", view)
	}
	if view.EmptyMessage != "" {
		t.Fatalf("failed load must not claim the filter is empty")
	}
}
