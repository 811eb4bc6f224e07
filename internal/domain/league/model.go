package league

import (
	"fmt"
	"strings"
)

// Status is the display tag of a league. The set is small and fixed, but the
// values are display strings and are compared case-insensitively.
type Status string

const (
	StatusActive       Status = "Active"
	StatusStartingSoon Status = "Starting Soon"
	StatusEnded        Status = "Ended"
)

// Tone is the colour family a status badge is rendered with.
func (s Status) Tone() string {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "active":
		return "green"
	case "starting soon":
		return "yellow"
	default:
		return "gray"
	}
}

func (s Status) Ended() bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(StatusEnded))
}

// Summary is one card of the leagues listing.
type Summary struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Participants int    `json:"participants" validate:"gte=0"`
	Prize        string `json:"prize" validate:"required"`
	Status       Status `json:"status" validate:"required"`
}

// Joinable reports whether the join control may be enabled. Ended leagues are
// never joinable, whatever the join collaborator would answer.
func (s Summary) Joinable() bool {
	return !s.Status.Ended()
}

// Detail is the league detail view model.
type Detail struct {
	Summary
	Description string     `json:"description" validate:"required"`
	StartDate   string     `json:"startDate" validate:"required"`
	EndDate     string     `json:"endDate" validate:"required"`
	Rules       []string   `json:"rules" validate:"dive,required"`
	Leaderboard []Standing `json:"leaderboard" validate:"dive"`
}

// Standing is one leaderboard row.
type Standing struct {
	Rank   int    `json:"rank" validate:"gte=1"`
	User   string `json:"user" validate:"required"`
	PnL    string `json:"pnl" validate:"required"`
	Trades int    `json:"trades" validate:"gte=0"`
}

// Medal is the podium marker for ranks 1 to 3.
func (s Standing) Medal() string {
	switch s.Rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return ""
	}
}

// Profitable is true for PnL text carrying a leading plus sign.
func (s Standing) Profitable() bool {
	return strings.HasPrefix(strings.TrimSpace(s.PnL), "+")
}

// JoinResult is the answer of the join collaborator.
type JoinResult struct {
	Success bool   `json:"success"`
	Message string `json:"message" validate:"required_if=Success true"`
}

// Filter is one of the listing filter buttons.
type Filter string

const (
	FilterAll          Filter = "all"
	FilterActive       Filter = "active"
	FilterStartingSoon Filter = "starting soon"
	FilterEnded        Filter = "ended"
)

func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterStartingSoon, FilterEnded}
}

func ParseFilter(v string) (Filter, error) {
	normalized := Filter(strings.ToLower(strings.TrimSpace(v)))
	if normalized == "" {
		return FilterAll, nil
	}
	for _, f := range Filters() {
		if f == normalized {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown league filter %q", v)
}

// Matches uses a case-insensitive substring test on the status text.
func (f Filter) Matches(s Status) bool {
	if f == FilterAll || f == "" {
		return true
	}
	return strings.Contains(strings.ToLower(string(s)), strings.ToLower(string(f)))
}

// Apply keeps the collaborator's order.
func (f Filter) Apply(items []Summary) []Summary {
	out := make([]Summary, 0, len(items))
	for _, item := range items {
		if f.Matches(item.Status) {
			out = append(out, item)
		}
	}
	return out
}
