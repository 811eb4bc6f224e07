package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/trading-league/internal/domain/league"
	"github.com/riskibarqy/trading-league/internal/platform/logging"
	"github.com/riskibarqy/trading-league/internal/usecase"
	"github.com/riskibarqy/trading-league/internal/view"
)

type Handler struct {
	logger    *logging.Logger
	validator *validator.Validate
	pages     *pageRenderer
	upgrader  websocket.Upgrader
}

func NewHandler(logger *logging.Logger, allowedOrigins []string) (*Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}

	pages, err := newPageRenderer()
	if err != nil {
		return nil, err
	}

	return &Handler{
		logger:    logger,
		validator: validator.New(),
		pages:     pages,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}, nil
}

// actionResponse is returned by every action endpoint. Started is false when
// the same action was already in flight.
type actionResponse struct {
	Started bool       `json:"started"`
	Frame   view.Frame `json:"frame"`
}

type leaguesFilterRequest struct {
	Filter string `json:"filter" validate:"max=32"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) session(ctx context.Context, w http.ResponseWriter) (*view.Session, bool) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("session is missing from request context"))
		return nil, false
	}
	return session, true
}

func (h *Handler) writeFrame(ctx context.Context, w http.ResponseWriter, session *view.Session, page view.Page) {
	writeSuccess(ctx, w, http.StatusOK, session.Frame(page))
}

func (h *Handler) writeAction(ctx context.Context, w http.ResponseWriter, session *view.Session, page view.Page, action string, started bool, err error) {
	if err != nil {
		h.logger.WarnContext(ctx, "view action refused", "action", action, "route", page.Route(), "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusAccepted
	if !started {
		status = http.StatusOK
	}
	writeSuccess(ctx, w, status, actionResponse{
		Started: started,
		Frame:   session.Frame(page),
	})
}

func parseFilter(raw string) (league.Filter, error) {
	f, err := league.ParseFilter(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return f, nil
}

func (h *Handler) GetLeaguesView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaguesView")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	page := session.Leagues(ctx)
	if raw := strings.TrimSpace(r.URL.Query().Get("filter")); raw != "" {
		f, err := parseFilter(raw)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		page.SetFilter(f)
	}

	h.writeFrame(ctx, w, session, page)
}

func (h *Handler) SetLeaguesFilter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetLeaguesFilter")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	var req leaguesFilterRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	f, err := parseFilter(req.Filter)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page := session.Leagues(ctx)
	page.SetFilter(f)
	h.writeFrame(ctx, w, session, page)
}

func (h *Handler) GetLeagueDetailView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueDetailView")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	h.writeFrame(ctx, w, session, session.LeagueDetail(ctx, r.PathValue("leagueID")))
}

func (h *Handler) JoinLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinLeague")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	page := session.LeagueDetail(ctx, r.PathValue("leagueID"))
	started, err := page.Join(ctx)
	h.writeAction(ctx, w, session, page, "join-league", started, err)
}

func (h *Handler) GetPricingView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPricingView")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	h.writeFrame(ctx, w, session, session.Pricing(ctx))
}

func (h *Handler) SelectPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectPlan")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	page := session.Pricing(ctx)
	if err := page.Select(r.PathValue("planID")); err != nil {
		writeError(ctx, w, err)
		return
	}
	h.writeFrame(ctx, w, session, page)
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Subscribe")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	page := session.Pricing(ctx)
	started, err := page.Subscribe(ctx, r.PathValue("planID"))
	h.writeAction(ctx, w, session, page, "create-subscription", started, err)
}

func (h *Handler) GetDashboardView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardView")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	page := session.Dashboard(ctx)
	if r.URL.Query().Get("upgraded") == "true" {
		page.MarkUpgraded()
	}
	h.writeFrame(ctx, w, session, page)
}

func (h *Handler) CopyReferralCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CopyReferralCode")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	page := session.Dashboard(ctx)
	started, err := page.CopyCode(ctx)
	h.writeAction(ctx, w, session, page, "copy-referral-code", started, err)
}

func (h *Handler) GetShareView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetShareView")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	h.writeFrame(ctx, w, session, session.Share(ctx, shareLeagueID(r)))
}

func (h *Handler) ShareToPlatform(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ShareToPlatform")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	page := session.Share(ctx, shareLeagueID(r))
	started, err := page.Share(ctx, r.PathValue("platform"))
	h.writeAction(ctx, w, session, page, "share-to-social", started, err)
}

func (h *Handler) CopyShareLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CopyShareLink")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	page := session.Share(ctx, shareLeagueID(r))
	started, err := page.CopyLink(ctx)
	h.writeAction(ctx, w, session, page, "copy-share-link", started, err)
}

// shareLeagueID reads the league from the query string, or from the posted
// form for HTML share buttons.
func shareLeagueID(r *http.Request) string {
	if v := strings.TrimSpace(r.URL.Query().Get("league")); v != "" {
		return v
	}
	if r.Method == http.MethodPost {
		return strings.TrimSpace(r.PostFormValue("league"))
	}
	return ""
}
