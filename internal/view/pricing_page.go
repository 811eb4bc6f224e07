package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/trading-league/internal/domain/subscription"
	"github.com/riskibarqy/trading-league/internal/platform/async"
	"github.com/riskibarqy/trading-league/internal/usecase"
)

const (
	LabelProcessing = "Processing..."

	MessageSubscriptionFailed = "Failed to create subscription. Please try again."
)

type PlanCard struct {
	subscription.Plan
	Selected bool    `json:"selected"`
	Button   Control `json:"button"`
}

type PricingView struct {
	Route string `json:"route"`
	Load
	Plans []PlanCard `json:"plans"`
}

// PricingPage renders the static plan catalog; it has nothing to fetch.
type PricingPage struct {
	subscriptions SubscriptionService
	plans         []subscription.Plan
	notifier      Notifier
	navigator     Navigator
	subscribe     *async.Invoker[subscription.Result]
	onChange      func()

	mu       sync.Mutex
	selected string
}

func newPricingPage(env pageEnv) *PricingPage {
	return &PricingPage{
		subscriptions: env.services.Subscriptions,
		plans:         env.services.Subscriptions.Plans(),
		notifier:      env.effects,
		navigator:     env.effects,
		subscribe:     async.NewInvoker[subscription.Result](env.config("create-subscription")),
		onChange:      env.onChange,
	}
}

func (p *PricingPage) Route() string {
	return RoutePremium
}

func (p *PricingPage) activate(context.Context) {}

func (p *PricingPage) close() {}

// Select highlights a plan card.
func (p *PricingPage) Select(planID string) error {
	plan, ok := subscription.FindPlan(p.plans, planID)
	if !ok {
		return fmt.Errorf("%w: plan=%s", usecase.ErrNotFound, planID)
	}

	p.mu.Lock()
	p.selected = plan.ID
	p.mu.Unlock()

	p.onChange()
	return nil
}

// Subscribe selects the plan and starts subscription creation for it.
func (p *PricingPage) Subscribe(ctx context.Context, planID string) (bool, error) {
	plan, ok := subscription.FindPlan(p.plans, planID)
	if !ok {
		return false, fmt.Errorf("%w: plan=%s", usecase.ErrNotFound, planID)
	}
	if !plan.Purchasable() {
		return false, ErrControlDisabled
	}
	if err := p.Select(plan.ID); err != nil {
		return false, err
	}

	return p.subscribe.Trigger(ctx, async.Action[subscription.Result]{
		ID: plan.ID,
		Call: func(ctx context.Context) (subscription.Result, error) {
			return p.subscriptions.CreateSubscription(ctx, plan.ID)
		},
		OnSuccess: func(res subscription.Result) {
			p.notifier.Alert("Success! Subscription created: " + res.SubscriptionID)
			p.navigator.Navigate(res.RedirectURL)
		},
		OnFailure: func(error) {
			p.notifier.Alert(MessageSubscriptionFailed)
		},
	}), nil
}

func (p *PricingPage) Render() any {
	return p.View()
}

func (p *PricingPage) View() PricingView {
	p.mu.Lock()
	selected := p.selected
	p.mu.Unlock()

	out := PricingView{
		Route: RoutePremium,
		Load:  Load{Status: StatusReady},
		Plans: make([]PlanCard, 0, len(p.plans)),
	}
	for _, plan := range p.plans {
		out.Plans = append(out.Plans, PlanCard{
			Plan:     plan,
			Selected: plan.ID == selected,
			Button:   planControl(plan, p.subscribe.Busy(plan.ID)),
		})
	}
	return out
}

func planControl(plan subscription.Plan, busy bool) Control {
	switch {
	case busy:
		return Control{Label: LabelProcessing, Disabled: true, Busy: true}
	case !plan.Purchasable():
		return Control{Label: plan.ButtonText, Disabled: true}
	default:
		return Control{Label: plan.ButtonText}
	}
}

func (v PricingView) Settled() bool {
	for _, card := range v.Plans {
		if card.Button.Busy {
			return false
		}
	}
	return true
}
