package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/trading-league/internal/domain/league"
	"github.com/riskibarqy/trading-league/internal/domain/referral"
	"github.com/riskibarqy/trading-league/internal/domain/share"
	"github.com/sourcegraph/conc/pool"
)

// ShareTarget is everything the share widget needs before any button is
// pressed. LeagueName is empty when the platform itself is shared.
type ShareTarget struct {
	Kind       referral.LinkKind `json:"kind"`
	LeagueID   string            `json:"leagueId,omitempty"`
	LeagueName string            `json:"leagueName,omitempty"`
	URL        string            `json:"url"`
	Content    string            `json:"content"`
}

type ShareService struct {
	leagues   *LeagueService
	referrals *ReferralService
	gateway   share.Gateway
}

func NewShareService(leagues *LeagueService, referrals *ReferralService, gateway share.Gateway) *ShareService {
	return &ShareService{
		leagues:   leagues,
		referrals: referrals,
		gateway:   gateway,
	}
}

// PrepareShare resolves the referral link and, for a league share, the league
// name. Both lookups run concurrently.
func (s *ShareService) PrepareShare(ctx context.Context, leagueID string) (ShareTarget, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShareService.PrepareShare")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		link, err := s.referrals.GenerateReferralLink(ctx, referral.KindPlatform)
		if err != nil {
			return ShareTarget{}, err
		}
		return ShareTarget{
			Kind:    link.Kind,
			URL:     link.URL,
			Content: share.Content("", link.URL),
		}, nil
	}

	var (
		detail league.Detail
		link   referral.Link
	)
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		detail, err = s.leagues.GetLeagueDetail(ctx, leagueID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		link, err = s.referrals.GenerateReferralLink(ctx, referral.LeagueKind(leagueID))
		return err
	})
	if err := p.Wait(); err != nil {
		return ShareTarget{}, err
	}

	return ShareTarget{
		Kind:       link.Kind,
		LeagueID:   detail.ID,
		LeagueName: detail.Name,
		URL:        link.URL,
		Content:    share.Content(detail.Name, link.URL),
	}, nil
}

func (s *ShareService) ShareToSocial(ctx context.Context, platform share.Platform, content string) (share.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShareService.ShareToSocial")
	defer span.End()

	platform, err := share.ParsePlatform(string(platform))
	if err != nil {
		return share.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(content) == "" {
		return share.Result{}, fmt.Errorf("%w: share content is required", ErrInvalidInput)
	}

	result, err := s.gateway.Share(ctx, platform, content)
	if err != nil {
		return share.Result{}, fmt.Errorf("%w: share to %s: %w", ErrDependencyUnavailable, platform, err)
	}
	if err := validatePayload(ctx, "share result", result); err != nil {
		return share.Result{}, err
	}
	if !result.Success {
		return share.Result{}, fmt.Errorf("%w: share to %s", ErrActionRejected, platform)
	}

	return result, nil
}
