package stub

import (
	"github.com/riskibarqy/trading-league/internal/domain/league"
	"github.com/riskibarqy/trading-league/internal/domain/referral"
)

const ReferralCode = "PUMP69_REF_ABC123"

func SeedLeagues() []league.Summary {
	return []league.Summary{
		{ID: "1", Name: "Premier Trading League", Participants: 156, Prize: "$10,000", Status: league.StatusActive},
		{ID: "2", Name: "Crypto Champions", Participants: 89, Prize: "$5,000", Status: league.StatusActive},
		{ID: "3", Name: "DeFi Masters", Participants: 234, Prize: "$15,000", Status: league.StatusStartingSoon},
		{ID: "4", Name: "Token Titans", Participants: 67, Prize: "$7,500", Status: league.StatusEnded},
	}
}

// SeedDetail expands a listed league with the shared detail literals.
func SeedDetail(summary league.Summary) league.Detail {
	return league.Detail{
		Summary:     summary,
		Description: "The ultimate trading competition for experienced traders. Compete with the best and win amazing prizes!",
		StartDate:   "2025-08-01",
		EndDate:     "2025-09-01",
		Rules: []string{
			"Minimum trade amount: $100",
			"Maximum leverage: 10x",
			"No wash trading allowed",
			"Real-time position tracking",
		},
		Leaderboard: []league.Standing{
			{Rank: 1, User: "CryptoMaster", PnL: "+$2,450", Trades: 45},
			{Rank: 2, User: "TokenTrader", PnL: "+$1,890", Trades: 32},
			{Rank: 3, User: "DeFiPro", PnL: "+$1,650", Trades: 28},
			{Rank: 4, User: "ChartWiz", PnL: "+$1,234", Trades: 41},
			{Rank: 5, User: "BullRun", PnL: "+$989", Trades: 19},
		},
	}
}

func SeedReferral() referral.Snapshot {
	return referral.Snapshot{
		Code:             ReferralCode,
		TotalReferrals:   23,
		ActiveReferrals:  18,
		TotalEarnings:    "$1,247.50",
		PendingPayouts:   "$324.75",
		ClickThroughRate: "4.2%",
		ConversionRate:   "12.3%",
		Recent: []referral.Record{
			{ID: "1", Name: "John D.", JoinDate: "2025-08-10", Status: "Active", Earnings: "$45.00"},
			{ID: "2", Name: "Sarah M.", JoinDate: "2025-08-09", Status: "Active", Earnings: "$67.50"},
			{ID: "3", Name: "Mike R.", JoinDate: "2025-08-08", Status: "Pending", Earnings: "$0.00"},
		},
	}
}
