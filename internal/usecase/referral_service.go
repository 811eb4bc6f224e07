package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/trading-league/internal/domain/referral"
)

type ReferralService struct {
	referralRepo referral.Repository
}

func NewReferralService(referralRepo referral.Repository) *ReferralService {
	return &ReferralService{referralRepo: referralRepo}
}

func (s *ReferralService) GetReferralData(ctx context.Context) (referral.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferralService.GetReferralData")
	defer span.End()

	snapshot, err := s.referralRepo.Get(ctx)
	if err != nil {
		return referral.Snapshot{}, fmt.Errorf("%w: get referral data: %w", ErrDependencyUnavailable, err)
	}
	if err := validatePayload(ctx, "referral snapshot", snapshot); err != nil {
		return referral.Snapshot{}, err
	}

	return snapshot, nil
}

func (s *ReferralService) GenerateReferralLink(ctx context.Context, kind referral.LinkKind) (referral.Link, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferralService.GenerateReferralLink")
	defer span.End()

	if err := kind.Validate(); err != nil {
		return referral.Link{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	link, err := s.referralRepo.GenerateLink(ctx, kind)
	if err != nil {
		return referral.Link{}, fmt.Errorf("%w: generate referral link: %w", ErrDependencyUnavailable, err)
	}
	if err := validatePayload(ctx, "referral link", link); err != nil {
		return referral.Link{}, err
	}

	return link, nil
}
