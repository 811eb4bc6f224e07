package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/trading-league/internal/domain/league"
	"github.com/riskibarqy/trading-league/internal/infrastructure/stub"
	leaguemock "github.com/riskibarqy/trading-league/internal/mocks/domain/league"
	"github.com/stretchr/testify/mock"
)

func TestLeagueRepository_ListLoadsOnce(t *testing.T) {
	next := leaguemock.NewRepository(t)
	next.On("List", mock.Anything).Return(stub.SeedLeagues(), nil).Once()

	repo := NewLeagueRepository(next, time.Minute)
	ctx := context.Background()

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	first[0].Name = "mutated"

	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list leagues again: %v", err)
	}
	if second[0].Name != "Premier Trading League" {
		t.Fatalf("cached slice leaked a caller mutation: %q", second[0].Name)
	}
}

func TestLeagueRepository_ListErrorNotCached(t *testing.T) {
	next := leaguemock.NewRepository(t)
	next.On("List", mock.Anything).Return(nil, errors.New("upstream down")).Once()
	next.On("List", mock.Anything).Return(stub.SeedLeagues(), nil).Once()

	repo := NewLeagueRepository(next, time.Minute)
	ctx := context.Background()

	if _, err := repo.List(ctx); err == nil {
		t.Fatalf("expected first list to fail")
	}
	items, err := repo.List(ctx)
	if err != nil || len(items) != 4 {
		t.Fatalf("expected reload after failure, got %d items err=%v", len(items), err)
	}
}

func TestLeagueRepository_MissingDetailCached(t *testing.T) {
	next := leaguemock.NewRepository(t)
	next.On("GetDetail", mock.Anything, "99").Return(league.Detail{}, false, nil).Once()

	repo := NewLeagueRepository(next, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, ok, err := repo.GetDetail(ctx, "99")
		if err != nil || ok {
			t.Fatalf("expected cached miss, got ok=%v err=%v", ok, err)
		}
	}
}

func TestLeagueRepository_JoinPassesThrough(t *testing.T) {
	next := leaguemock.NewRepository(t)
	next.On("Join", mock.Anything, "1").Return(league.JoinResult{Success: true}, nil).Twice()

	repo := NewLeagueRepository(next, time.Minute)
	for i := 0; i < 2; i++ {
		if _, err := repo.Join(context.Background(), "1"); err != nil {
			t.Fatalf("join: %v", err)
		}
	}
}
