package view

import (
	"context"
	"fmt"

	"github.com/riskibarqy/trading-league/internal/domain/share"
	"github.com/riskibarqy/trading-league/internal/platform/async"
	"github.com/riskibarqy/trading-league/internal/usecase"
)

const (
	LabelSharing = "Sharing..."
	LabelCopy    = "Copy Link"

	MessageShareFailed = "Failed to share. Please try again."
	MessageLinkCopied  = "Link copied to clipboard!"

	copyLinkAction = "share-link"
)

type ShareButton struct {
	Platform share.Platform `json:"platform"`
	Control
}

type BackLink struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

type ShareView struct {
	Route string `json:"route"`
	Load
	LeagueID string        `json:"leagueId,omitempty"`
	Title    string        `json:"title"`
	URL      string        `json:"url,omitempty"`
	Content  string        `json:"content,omitempty"`
	Buttons  []ShareButton `json:"buttons"`
	CopyLink Control       `json:"copyLink"`
	Back     BackLink      `json:"back"`
}

// ShareWidget shares a league, or the platform when no league is given.
type ShareWidget struct {
	leagueID  string
	shares    ShareService
	notifier  Notifier
	clipboard Clipboard
	navigator Navigator
	loader    *async.Loader[string, usecase.ShareTarget]
	share     *async.Invoker[share.Result]
	copy      *async.Invoker[string]
}

func newShareWidget(env pageEnv, leagueID string) *ShareWidget {
	p := &ShareWidget{
		leagueID:  leagueID,
		shares:    env.services.Shares,
		notifier:  env.effects,
		clipboard: env.effects,
		navigator: env.effects,
		share:     async.NewInvoker[share.Result](env.config("share-to-social")),
		copy:      async.NewInvoker[string](env.config("copy-share-link")),
	}
	p.loader = async.NewLoader(func(ctx context.Context, id string) (usecase.ShareTarget, error) {
		return p.shares.PrepareShare(ctx, id)
	}, env.config("share-widget"))
	return p
}

func (p *ShareWidget) Route() string {
	return ShareRoute(p.leagueID)
}

func (p *ShareWidget) activate(ctx context.Context) {
	p.loader.Activate(ctx, p.leagueID)
}

func (p *ShareWidget) close() {
	p.loader.Reset()
}

// Share posts the prepared content to one platform. Each platform has its own
// busy flag.
func (p *ShareWidget) Share(ctx context.Context, platform string) (bool, error) {
	target, err := p.ready()
	if err != nil {
		return false, err
	}
	pf, err := share.ParsePlatform(platform)
	if err != nil {
		return false, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	return p.share.Trigger(ctx, async.Action[share.Result]{
		ID: string(pf),
		Call: func(ctx context.Context) (share.Result, error) {
			return p.shares.ShareToSocial(ctx, pf, target.Content)
		},
		OnSuccess: func(res share.Result) {
			p.notifier.Alert(fmt.Sprintf("Successfully shared to %s!", res.Platform))
			if intent, ok := share.IntentURL(pf, target.Content, target.URL); ok {
				p.navigator.Open(intent)
			}
		},
		OnFailure: func(error) {
			p.notifier.Alert(MessageShareFailed)
		},
	}), nil
}

func (p *ShareWidget) CopyLink(ctx context.Context) (bool, error) {
	target, err := p.ready()
	if err != nil {
		return false, err
	}

	return p.copy.Trigger(ctx, async.Action[string]{
		ID: copyLinkAction,
		Call: func(context.Context) (string, error) {
			return target.URL, p.clipboard.WriteText(target.URL)
		},
		OnSuccess: func(string) {
			p.notifier.Alert(MessageLinkCopied)
		},
		OnFailure: func(error) {
			p.notifier.Alert(MessageCopyFailed)
		},
	}), nil
}

func (p *ShareWidget) ready() (usecase.ShareTarget, error) {
	snap := p.loader.Snapshot()
	if snap.State != async.StateReady {
		return usecase.ShareTarget{}, ErrNotReady
	}
	return snap.Value, nil
}

func (p *ShareWidget) Render() any {
	return p.View()
}

func (p *ShareWidget) View() ShareView {
	snap := p.loader.Snapshot()

	out := ShareView{
		Route:    p.Route(),
		Load:     loadOf(snap),
		LeagueID: p.leagueID,
		Title:    "Share Pump69",
		Buttons:  make([]ShareButton, 0, len(share.Platforms())),
		CopyLink: Control{Label: LabelCopy, Disabled: true},
		Back:     BackLink{URL: RouteLeagues, Label: "Back to Leagues"},
	}
	if p.leagueID != "" {
		out.Back = BackLink{URL: LeagueRoute(p.leagueID), Label: "Back to League"}
	}

	ready := snap.State == async.StateReady
	if ready {
		target := snap.Value
		if target.LeagueName != "" {
			out.Title = "Share " + target.LeagueName
		}
		out.URL = target.URL
		out.Content = target.Content
		out.CopyLink = Control{Label: LabelCopy, Disabled: p.copy.Busy(copyLinkAction), Busy: p.copy.Busy(copyLinkAction)}
	}

	for _, pf := range share.Platforms() {
		btn := ShareButton{Platform: pf, Control: Control{Label: pf.Label(), Disabled: !ready}}
		if p.share.Busy(string(pf)) {
			btn.Control = Control{Label: LabelSharing, Disabled: true, Busy: true}
		}
		out.Buttons = append(out.Buttons, btn)
	}
	return out
}

func (v ShareView) Settled() bool {
	if v.Pending() || v.CopyLink.Busy {
		return false
	}
	for _, b := range v.Buttons {
		if b.Busy {
			return false
		}
	}
	return true
}
