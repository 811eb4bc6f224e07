package view

import (
	"context"
	"sync"

	"github.com/riskibarqy/trading-league/internal/domain/referral"
	"github.com/riskibarqy/trading-league/internal/platform/async"
)

const (
	LabelCopyCode = "Copy Code"
	LabelCopied   = "✓ Copied!"

	MessageCopyFailed = "Failed to copy to clipboard."
	MessageUpgraded   = "Your subscription is active. Welcome aboard!"

	copyCodeAction = "referral-code"
)

type ReferralRow struct {
	referral.Record
	Active bool `json:"active"`
}

type ReferralDashboardView struct {
	Route string `json:"route"`
	Load
	Referral *referral.Snapshot `json:"referral,omitempty"`
	Recent   []ReferralRow      `json:"recentReferrals"`
	Copy     Control            `json:"copy"`
	Banner   string             `json:"banner,omitempty"`
	ShareURL string             `json:"shareUrl"`
}

// ReferralDashboard shows the referral stats and copies the referral code.
type ReferralDashboard struct {
	referrals ReferralService
	notifier  Notifier
	clipboard Clipboard
	loader    *async.Loader[struct{}, referral.Snapshot]
	copy      *async.Invoker[string]
	copied    *async.Confirmation
	onChange  func()

	mu       sync.Mutex
	upgraded bool
}

func newReferralDashboard(env pageEnv) *ReferralDashboard {
	p := &ReferralDashboard{
		referrals: env.services.Referrals,
		notifier:  env.effects,
		clipboard: env.effects,
		copy:      async.NewInvoker[string](env.config("copy-referral-code")),
		copied:    async.NewConfirmation(env.clock, env.copyHold, env.onChange),
		onChange:  env.onChange,
	}
	p.loader = async.NewLoader(func(ctx context.Context, _ struct{}) (referral.Snapshot, error) {
		return p.referrals.GetReferralData(ctx)
	}, env.config("referral-dashboard"))
	return p
}

func (p *ReferralDashboard) Route() string {
	return RouteDashboard
}

func (p *ReferralDashboard) activate(ctx context.Context) {
	p.loader.Activate(ctx, struct{}{})
}

func (p *ReferralDashboard) close() {
	p.copied.Stop()
	p.loader.Reset()
}

// MarkUpgraded shows the post-subscription banner.
func (p *ReferralDashboard) MarkUpgraded() {
	p.mu.Lock()
	changed := !p.upgraded
	p.upgraded = true
	p.mu.Unlock()

	if changed {
		p.onChange()
	}
}

// CopyCode writes the referral code to the clipboard and shows the copied
// confirmation.
func (p *ReferralDashboard) CopyCode(ctx context.Context) (bool, error) {
	snap := p.loader.Snapshot()
	if snap.State != async.StateReady {
		return false, ErrNotReady
	}
	code := snap.Value.Code

	return p.copy.Trigger(ctx, async.Action[string]{
		ID: copyCodeAction,
		Call: func(context.Context) (string, error) {
			return code, p.clipboard.WriteText(code)
		},
		OnSuccess: func(string) {
			p.copied.Show()
		},
		OnFailure: func(error) {
			p.notifier.Alert(MessageCopyFailed)
		},
	}), nil
}

func (p *ReferralDashboard) Render() any {
	return p.View()
}

func (p *ReferralDashboard) View() ReferralDashboardView {
	snap := p.loader.Snapshot()

	p.mu.Lock()
	upgraded := p.upgraded
	p.mu.Unlock()

	out := ReferralDashboardView{
		Route:    RouteDashboard,
		Load:     loadOf(snap),
		Recent:   []ReferralRow{},
		Copy:     Control{Label: LabelCopyCode, Disabled: true},
		ShareURL: ShareRoute(""),
	}
	if upgraded {
		out.Banner = MessageUpgraded
	}
	if snap.State != async.StateReady {
		return out
	}

	data := snap.Value
	out.Referral = &data
	for _, r := range data.Recent {
		out.Recent = append(out.Recent, ReferralRow{Record: r, Active: r.Active()})
	}

	busy := p.copy.Busy(copyCodeAction)
	switch {
	case busy:
		out.Copy = Control{Label: LabelCopyCode, Disabled: true, Busy: true}
	case p.copied.Shown():
		out.Copy = Control{Label: LabelCopied}
	default:
		out.Copy = Control{Label: LabelCopyCode}
	}
	return out
}

// Settled is false while the copy confirmation is up so that it can revert.
func (v ReferralDashboardView) Settled() bool {
	return !v.Pending() && !v.Copy.Busy && v.Copy.Label != LabelCopied
}
