package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/trading-league/internal/domain/subscription"
)

type SubscriptionService struct {
	plans   []subscription.Plan
	gateway subscription.Gateway
}

func NewSubscriptionService(plans []subscription.Plan, gateway subscription.Gateway) *SubscriptionService {
	return &SubscriptionService{
		plans:   plans,
		gateway: gateway,
	}
}

func (s *SubscriptionService) Plans() []subscription.Plan {
	out := make([]subscription.Plan, len(s.plans))
	copy(out, s.plans)
	return out
}

func (s *SubscriptionService) CreateSubscription(ctx context.Context, planID string) (subscription.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SubscriptionService.CreateSubscription")
	defer span.End()

	plan, ok := subscription.FindPlan(s.plans, planID)
	if !ok {
		return subscription.Result{}, fmt.Errorf("%w: plan=%s", ErrNotFound, planID)
	}
	if !plan.Purchasable() {
		return subscription.Result{}, fmt.Errorf("%w: plan=%s is not purchasable", ErrInvalidInput, plan.ID)
	}

	result, err := s.gateway.Create(ctx, plan.ID)
	if err != nil {
		return subscription.Result{}, fmt.Errorf("%w: create subscription: %w", ErrDependencyUnavailable, err)
	}
	if err := validatePayload(ctx, "subscription result", result); err != nil {
		return subscription.Result{}, err
	}
	if !result.Success {
		return subscription.Result{}, fmt.Errorf("%w: subscription plan=%s", ErrActionRejected, plan.ID)
	}

	return result, nil
}
