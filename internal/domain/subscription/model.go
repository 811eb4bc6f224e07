package subscription

import "strings"

const (
	PlanFree    = "free"
	PlanPro     = "pro"
	PlanPremium = "premium"
)

// Plan is one pricing card. The catalog is static.
type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      string   `json:"price"`
	Period     string   `json:"period"`
	Features   []string `json:"features"`
	Popular    bool     `json:"popular"`
	ButtonText string   `json:"buttonText"`
}

// Purchasable is false for the free tier: its control is inert.
func (p Plan) Purchasable() bool {
	return p.ID != PlanFree
}

func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:     PlanFree,
			Name:   "Free",
			Price:  "$0",
			Period: "month",
			Features: []string{
				"Join public leagues",
				"Basic leaderboards",
				"Standard support",
				"5 trades per day limit",
			},
			ButtonText: "Current Plan",
		},
		{
			ID:     PlanPro,
			Name:   "Pro",
			Price:  "$29",
			Period: "month",
			Features: []string{
				"Join all leagues",
				"Advanced analytics",
				"Priority support",
				"Unlimited trades",
				"Custom strategies",
				"Performance insights",
			},
			Popular:    true,
			ButtonText: "Upgrade to Pro",
		},
		{
			ID:     PlanPremium,
			Name:   "Premium",
			Price:  "$99",
			Period: "month",
			Features: []string{
				"Everything in Pro",
				"Exclusive VIP leagues",
				"Personal trading coach",
				"Advanced AI insights",
				"Portfolio optimization",
				"White-label features",
				"24/7 dedicated support",
			},
			ButtonText: "Go Premium",
		},
	}
}

func FindPlan(plans []Plan, planID string) (Plan, bool) {
	planID = strings.ToLower(strings.TrimSpace(planID))
	for _, p := range plans {
		if p.ID == planID {
			return p, true
		}
	}
	return Plan{}, false
}

// Result is the answer of the subscription collaborator.
type Result struct {
	Success        bool   `json:"success"`
	SubscriptionID string `json:"subscriptionId" validate:"required_if=Success true"`
	RedirectURL    string `json:"redirectUrl" validate:"required_if=Success true"`
}
