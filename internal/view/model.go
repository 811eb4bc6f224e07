package view

import (
	"errors"

	"github.com/riskibarqy/trading-league/internal/platform/async"
	"github.com/riskibarqy/trading-league/internal/usecase"
)

// Status is the render state of a page's data.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusLoading  Status = "loading"
	StatusReady    Status = "ready"
	StatusFailed   Status = "failed"
	StatusNotFound Status = "not_found"
)

const (
	MessageLoadFailed = "Something went wrong while loading this page."
	MessageNotFound   = "League not found."
)

// Control is the render state of one button.
type Control struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
	Busy     bool   `json:"busy"`
}

// Load is the common header of every page view.
type Load struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Pending reports whether the page is still waiting on a fetch.
func (l Load) Pending() bool {
	return l.Status == StatusLoading || l.Status == StatusIdle
}

func loadOf[K comparable, T any](snap async.LoadSnapshot[K, T]) Load {
	switch snap.State {
	case async.StateLoading:
		return Load{Status: StatusLoading}
	case async.StateReady:
		return Load{Status: StatusReady}
	case async.StateFailed:
		if errors.Is(snap.Err, usecase.ErrNotFound) {
			return Load{Status: StatusNotFound, Message: MessageNotFound}
		}
		return Load{Status: StatusFailed, Message: MessageLoadFailed, Reason: snap.Reason()}
	default:
		return Load{Status: StatusIdle}
	}
}
