package referral

import (
	"fmt"
	"strings"
)

// Snapshot is the referral dashboard payload.
type Snapshot struct {
	Code             string   `json:"code" validate:"required"`
	TotalReferrals   int      `json:"totalReferrals" validate:"gte=0"`
	ActiveReferrals  int      `json:"activeReferrals" validate:"gte=0,ltefield=TotalReferrals"`
	TotalEarnings    string   `json:"totalEarnings" validate:"required"`
	PendingPayouts   string   `json:"pendingPayouts" validate:"required"`
	ClickThroughRate string   `json:"clickThroughRate" validate:"required"`
	ConversionRate   string   `json:"conversionRate" validate:"required"`
	Recent           []Record `json:"recentReferrals" validate:"dive"`
}

type Record struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	JoinDate string `json:"joinDate" validate:"required"`
	Status   string `json:"status" validate:"required"`
	Earnings string `json:"earnings" validate:"required"`
}

// Active is used for the status badge colour.
func (r Record) Active() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), "active")
}

// LinkKind selects what a referral link points at: the platform itself or a
// single league ("league-<id>").
type LinkKind string

const (
	KindPlatform     LinkKind = "platform"
	leagueKindPrefix          = "league-"
)

func LeagueKind(leagueID string) LinkKind {
	return LinkKind(leagueKindPrefix + strings.TrimSpace(leagueID))
}

// LeagueID returns the league of a league link kind.
func (k LinkKind) LeagueID() (string, bool) {
	id, ok := strings.CutPrefix(string(k), leagueKindPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func (k LinkKind) Validate() error {
	if k == KindPlatform {
		return nil
	}
	if _, ok := k.LeagueID(); ok {
		return nil
	}
	return fmt.Errorf("unknown referral link kind %q", string(k))
}

// Link is a generated referral URL.
type Link struct {
	Kind LinkKind `json:"kind" validate:"required"`
	URL  string   `json:"url" validate:"required,url"`
}
