package httpapi

import (
	"net/http"

	"github.com/riskibarqy/trading-league/internal/view"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

// registerPageRoutes serves the server-rendered pages. Form posts redirect
// back to the page they came from.
func registerPageRoutes(mux *http.ServeMux, handler *Handler, sessions *view.Sessions, cookie SessionCookie) {
	withSession := func(fn http.HandlerFunc) http.Handler {
		return RequireSession(sessions, cookie, fn)
	}

	mux.HandleFunc("GET /{$}", handler.Home)

	mux.Handle("GET /leagues", withSession(handler.LeaguesPage))
	mux.Handle("GET /leagues/{leagueID}", withSession(handler.LeagueDetailPage))
	mux.Handle("POST /leagues/{leagueID}/join", withSession(handler.SubmitJoin))

	mux.Handle("GET /premium", withSession(handler.PremiumPage))
	mux.Handle("POST /premium/{planID}/select", withSession(handler.SubmitSelectPlan))
	mux.Handle("POST /premium/{planID}/subscribe", withSession(handler.SubmitSubscribe))

	mux.Handle("GET /dashboard", withSession(handler.DashboardPage))
	mux.Handle("POST /dashboard/copy", withSession(handler.SubmitCopyCode))

	mux.Handle("GET /share", withSession(handler.SharePage))
	mux.Handle("POST /share/copy", withSession(handler.SubmitCopyLink))
	mux.Handle("POST /share/{platform}", withSession(handler.SubmitShare))
}

// registerViewRoutes serves the same pages as JSON frames plus the push
// stream, for script clients.
func registerViewRoutes(mux *http.ServeMux, handler *Handler, sessions *view.Sessions, cookie SessionCookie) {
	withSession := func(fn http.HandlerFunc) http.Handler {
		return RequireSession(sessions, cookie, fn)
	}

	mux.Handle("GET /v1/views/stream", withSession(handler.StreamViews))

	mux.Handle("GET /v1/views/leagues", withSession(handler.GetLeaguesView))
	mux.Handle("POST /v1/views/leagues/filter", withSession(handler.SetLeaguesFilter))
	mux.Handle("GET /v1/views/leagues/{leagueID}", withSession(handler.GetLeagueDetailView))
	mux.Handle("POST /v1/views/leagues/{leagueID}/join", withSession(handler.JoinLeague))

	mux.Handle("GET /v1/views/premium", withSession(handler.GetPricingView))
	mux.Handle("POST /v1/views/premium/{planID}/select", withSession(handler.SelectPlan))
	mux.Handle("POST /v1/views/premium/{planID}/subscribe", withSession(handler.Subscribe))

	mux.Handle("GET /v1/views/dashboard", withSession(handler.GetDashboardView))
	mux.Handle("POST /v1/views/dashboard/copy", withSession(handler.CopyReferralCode))

	mux.Handle("GET /v1/views/share", withSession(handler.GetShareView))
	mux.Handle("POST /v1/views/share/copy", withSession(handler.CopyShareLink))
	mux.Handle("POST /v1/views/share/{platform}", withSession(handler.ShareToPlatform))
}
