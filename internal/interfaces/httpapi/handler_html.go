package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/riskibarqy/trading-league/internal/view"
)

const (
	titleLeagues   = "Trading Leagues"
	titleLeague    = "League"
	titlePremium   = "Premium Plans"
	titleDashboard = "Referral Dashboard"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, view.RouteLeagues, http.StatusSeeOther)
}

func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, session *view.Session, page view.Page, name, title string) {
	doc := documentOf(title, session.Frame(page))
	if err := h.pages.render(w, http.StatusOK, name, doc); err != nil {
		h.logger.ErrorContext(ctx, "render page failed", "template", name, "error", err)
		writeInternalError(ctx, w)
	}
}

func (h *Handler) renderError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	message := http.StatusText(mapped.HTTPStatus)
	if mapped.HTTPStatus < http.StatusInternalServerError {
		message = err.Error()
	}

	doc := htmlDocument{
		Title: message,
		Error: &htmlError{Code: mapped.HTTPStatus, Message: message},
	}
	if renderErr := h.pages.render(w, mapped.HTTPStatus, pageError, doc); renderErr != nil {
		h.logger.ErrorContext(ctx, "render error page failed", "error", renderErr)
		writeInternalError(ctx, w)
	}
}

// htmlSession is session lookup for HTML routes.
func (h *Handler) htmlSession(ctx context.Context, w http.ResponseWriter) (*view.Session, bool) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "session is missing from request context")
		writeInternalError(ctx, w)
		return nil, false
	}
	return session, true
}

// afterAction redirects back to the page the form was posted from.
func (h *Handler) afterAction(ctx context.Context, w http.ResponseWriter, r *http.Request, route, action string, err error) {
	if err != nil {
		h.logger.WarnContext(ctx, "view action refused", "action", action, "route", route, "error", err)
		h.renderError(ctx, w, err)
		return
	}
	http.Redirect(w, r, route, http.StatusSeeOther)
}

func (h *Handler) LeaguesPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeaguesPage")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.Leagues(ctx)
	if raw := strings.TrimSpace(r.URL.Query().Get("filter")); raw != "" {
		f, err := parseFilter(raw)
		if err != nil {
			h.renderError(ctx, w, err)
			return
		}
		page.SetFilter(f)
	}

	h.renderPage(ctx, w, session, page, pageLeagues, titleLeagues)
}

func (h *Handler) LeagueDetailPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueDetailPage")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.LeagueDetail(ctx, r.PathValue("leagueID"))
	title := titleLeague
	if v := page.View(); v.League != nil {
		title = v.League.Name
	}
	h.renderPage(ctx, w, session, page, pageLeagueDetail, title)
}

func (h *Handler) SubmitJoin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitJoin")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.LeagueDetail(ctx, r.PathValue("leagueID"))
	_, err := page.Join(ctx)
	h.afterAction(ctx, w, r, page.Route(), "join-league", err)
}

func (h *Handler) PremiumPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PremiumPage")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	h.renderPage(ctx, w, session, session.Pricing(ctx), pagePremium, titlePremium)
}

func (h *Handler) SubmitSelectPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitSelectPlan")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.Pricing(ctx)
	err := page.Select(r.PathValue("planID"))
	h.afterAction(ctx, w, r, page.Route(), "select-plan", err)
}

func (h *Handler) SubmitSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitSubscribe")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.Pricing(ctx)
	_, err := page.Subscribe(ctx, r.PathValue("planID"))
	h.afterAction(ctx, w, r, page.Route(), "create-subscription", err)
}

func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DashboardPage")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.Dashboard(ctx)
	if r.URL.Query().Get("upgraded") == "true" {
		page.MarkUpgraded()
	}
	h.renderPage(ctx, w, session, page, pageDashboard, titleDashboard)
}

func (h *Handler) SubmitCopyCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitCopyCode")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.Dashboard(ctx)
	_, err := page.CopyCode(ctx)
	h.afterAction(ctx, w, r, page.Route(), "copy-referral-code", err)
}

func (h *Handler) SharePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SharePage")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.Share(ctx, shareLeagueID(r))
	h.renderPage(ctx, w, session, page, pageShare, page.View().Title)
}

func (h *Handler) SubmitShare(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitShare")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.Share(ctx, shareLeagueID(r))
	_, err := page.Share(ctx, r.PathValue("platform"))
	h.afterAction(ctx, w, r, page.Route(), "share-to-social", err)
}

func (h *Handler) SubmitCopyLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitCopyLink")
	defer span.End()

	session, ok := h.htmlSession(ctx, w)
	if !ok {
		return
	}

	page := session.Share(ctx, shareLeagueID(r))
	_, err := page.CopyLink(ctx)
	h.afterAction(ctx, w, r, page.Route(), "copy-share-link", err)
}
