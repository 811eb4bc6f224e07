package httpapi

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/trading-league/internal/domain/subscription"
	"github.com/riskibarqy/trading-league/internal/infrastructure/stub"
	"github.com/riskibarqy/trading-league/internal/platform/async"
	"github.com/riskibarqy/trading-league/internal/platform/id"
	"github.com/riskibarqy/trading-league/internal/platform/logging"
	"github.com/riskibarqy/trading-league/internal/usecase"
	"github.com/riskibarqy/trading-league/internal/view"
)

const testCookie = "tl_session"

type frameEnvelope struct {
	Data struct {
		SessionID string         `json:"sessionId"`
		Route     string         `json:"route"`
		View      map[string]any `json:"view"`
		Effects   []view.Effect  `json:"effects"`
	} `json:"data"`
	Error *googleErrorBody `json:"error"`
}

type actionEnvelope struct {
	Data struct {
		Started bool `json:"started"`
		Frame   struct {
			Route   string        `json:"route"`
			Effects []view.Effect `json:"effects"`
		} `json:"frame"`
	} `json:"data"`
	Error *googleErrorBody `json:"error"`
}

// newTestServer wires the stub collaborators with no latency and an inline
// executor, so every fetch and action has resolved when the request returns.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	noDelay := stub.Latency{}
	leagues := usecase.NewLeagueService(stub.NewLeagueRepository(stub.SeedLeagues(), noDelay))
	referrals := usecase.NewReferralService(stub.NewReferralRepository(stub.SeedReferral(), "https://pump69.com", noDelay))
	services := view.Services{
		Leagues:       leagues,
		Subscriptions: usecase.NewSubscriptionService(subscription.DefaultPlans(), stub.NewSubscriptionGateway(id.NewTimestampGenerator("sub_", nil), noDelay)),
		Referrals:     referrals,
		Shares:        usecase.NewShareService(leagues, referrals, stub.NewShareGateway(noDelay)),
	}

	logger := logging.NewNop()
	sessions := view.NewSessions(time.Minute, id.NewUUIDGenerator(), services, view.Options{
		Executor: async.InlineExecutor{},
		Logger:   logger,
	})

	handler, err := NewHandler(logger, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	router := NewRouter(handler, sessions, SessionCookie{Name: testCookie, MaxAge: time.Hour}, logger, true, nil)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client
}

func do(t *testing.T, client *http.Client, method, url, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}

func effectValues(kind view.EffectKind, effects []view.Effect) []string {
	out := make([]string, 0)
	for _, e := range effects {
		if e.Kind == kind {
			out = append(out, e.Value)
		}
	}
	return out
}

func TestRouter_Healthz(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodGet, srv.URL+"/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(resp.Cookies()) != 0 {
		t.Fatalf("health probe must not open a session")
	}
}

func TestRouter_SessionCookieIssuedOnce(t *testing.T) {
	srv, client := newTestServer(t)

	first := do(t, client, http.MethodGet, srv.URL+"/v1/views/premium", "")
	cookies := first.Cookies()
	if len(cookies) != 1 || cookies[0].Name != testCookie || !cookies[0].HttpOnly {
		t.Fatalf("expected http-only session cookie, got %+v", cookies)
	}
	frame := decode[frameEnvelope](t, first)
	if frame.Data.SessionID != cookies[0].Value {
		t.Fatalf("frame session %q does not match cookie %q", frame.Data.SessionID, cookies[0].Value)
	}

	second := do(t, client, http.MethodGet, srv.URL+"/v1/views/premium", "")
	if len(second.Cookies()) != 0 {
		t.Fatalf("expected existing session reused without a new cookie")
	}
}

func TestRouter_LeaguesViewFilter(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodGet, srv.URL+"/v1/views/leagues?filter=ended", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	frame := decode[frameEnvelope](t, resp)
	if frame.Data.Route != view.RouteLeagues {
		t.Fatalf("unexpected route %q", frame.Data.Route)
	}
	items, _ := frame.Data.View["leagues"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one ended league, got %d", len(items))
	}
	if name, _ := items[0].(map[string]any)["name"].(string); name != "Token Titans" {
		t.Fatalf("unexpected league %q", name)
	}

	bad := do(t, client, http.MethodGet, srv.URL+"/v1/views/leagues?filter=paused", "")
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown filter, got %d", bad.StatusCode)
	}
}

func TestRouter_SetLeaguesFilterRejectsUnknownFields(t *testing.T) {
	srv, client := newTestServer(t)

	ok := do(t, client, http.MethodPost, srv.URL+"/v1/views/leagues/filter", `{"filter":"starting soon"}`)
	if ok.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", ok.StatusCode)
	}
	frame := decode[frameEnvelope](t, ok)
	if items, _ := frame.Data.View["leagues"].([]any); len(items) != 1 {
		t.Fatalf("expected one starting-soon league, got %d", len(items))
	}

	bad := do(t, client, http.MethodPost, srv.URL+"/v1/views/leagues/filter", `{"filter":"all","page":2}`)
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", bad.StatusCode)
	}
}

func TestRouter_JoinLeague(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodPost, srv.URL+"/v1/views/leagues/1/join", "")
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
	action := decode[actionEnvelope](t, resp)
	if !action.Data.Started {
		t.Fatalf("expected join started")
	}
	alerts := effectValues(view.EffectAlert, action.Data.Frame.Effects)
	if len(alerts) != 1 || alerts[0] != "Successfully joined the league!" {
		t.Fatalf("unexpected alerts %v", alerts)
	}
}

func TestRouter_JoinEndedLeagueRefused(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodPost, srv.URL+"/v1/views/leagues/4/join", "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	body := decode[actionEnvelope](t, resp)
	if body.Error == nil || body.Error.Status != "FAILED_PRECONDITION" {
		t.Fatalf("unexpected error body %+v", body.Error)
	}
}

func TestRouter_Subscribe(t *testing.T) {
	srv, client := newTestServer(t)

	free := do(t, client, http.MethodPost, srv.URL+"/v1/views/premium/free/subscribe", "")
	if free.StatusCode != http.StatusConflict {
		t.Fatalf("expected free plan refused with 409, got %d", free.StatusCode)
	}

	unknown := do(t, client, http.MethodPost, srv.URL+"/v1/views/premium/enterprise/subscribe", "")
	if unknown.StatusCode != http.StatusNotFound {
		t.Fatalf("expected unknown plan 404, got %d", unknown.StatusCode)
	}

	resp := do(t, client, http.MethodPost, srv.URL+"/v1/views/premium/pro/subscribe", "")
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
	action := decode[actionEnvelope](t, resp)
	alerts := effectValues(view.EffectAlert, action.Data.Frame.Effects)
	if len(alerts) != 1 || !strings.HasPrefix(alerts[0], "Success! Subscription created: ") {
		t.Fatalf("unexpected alerts %v", alerts)
	}
	navs := effectValues(view.EffectNavigate, action.Data.Frame.Effects)
	if len(navs) != 1 || navs[0] != stub.UpgradeRedirectURL {
		t.Fatalf("unexpected navigation %v", navs)
	}
}

func TestRouter_ShareToPlatform(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodPost, srv.URL+"/v1/views/share/twitter?league=2", "")
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
	action := decode[actionEnvelope](t, resp)
	if action.Data.Frame.Route != view.ShareRoute("2") {
		t.Fatalf("unexpected route %q", action.Data.Frame.Route)
	}
	opens := effectValues(view.EffectOpen, action.Data.Frame.Effects)
	if len(opens) != 1 || !strings.HasPrefix(opens[0], "https://twitter.com/intent/tweet?text=") {
		t.Fatalf("unexpected open effects %v", opens)
	}

	bad := do(t, client, http.MethodPost, srv.URL+"/v1/views/share/myspace?league=2", "")
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown platform, got %d", bad.StatusCode)
	}
}

func TestRouter_CopyReferralCode(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodPost, srv.URL+"/v1/views/dashboard/copy", "")
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
	action := decode[actionEnvelope](t, resp)
	copies := effectValues(view.EffectClipboard, action.Data.Frame.Effects)
	if len(copies) != 1 || copies[0] != stub.ReferralCode {
		t.Fatalf("unexpected clipboard effects %v", copies)
	}
}

func TestRouter_HTMLRedirectsHome(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodGet, srv.URL+"/", "")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != view.RouteLeagues {
		t.Fatalf("expected redirect to leagues, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestRouter_HTMLLeaguesPage(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodGet, srv.URL+"/leagues", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := readBody(t, resp)
	for _, want := range []string{"Premier Trading League", "Token Titans", "Starting Soon"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in page", want)
		}
	}
	if strings.Contains(body, `http-equiv="refresh"`) {
		t.Fatalf("settled page must not refresh itself")
	}
}

func TestRouter_HTMLJoinPostRedirectGet(t *testing.T) {
	srv, client := newTestServer(t)

	post := do(t, client, http.MethodPost, srv.URL+"/leagues/1/join", "")
	if post.StatusCode != http.StatusSeeOther || post.Header.Get("Location") != "/leagues/1" {
		t.Fatalf("expected redirect back to detail, got %d %q", post.StatusCode, post.Header.Get("Location"))
	}

	page := do(t, client, http.MethodGet, srv.URL+"/leagues/1", "")
	body := readBody(t, page)
	if !strings.Contains(body, "Successfully joined the league!") {
		t.Fatalf("expected join alert rendered once after redirect")
	}
	if !strings.Contains(body, "Join League") {
		t.Fatalf("expected join control re-enabled")
	}

	again := readBody(t, do(t, client, http.MethodGet, srv.URL+"/leagues/1", ""))
	if strings.Contains(again, "Successfully joined the league!") {
		t.Fatalf("alert must not be shown twice")
	}
}

func TestRouter_HTMLEndedLeagueJoinRendersError(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodPost, srv.URL+"/leagues/4/join", "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html error page, got %q", ct)
	}
}

func TestRouter_HTMLSubscribeNavigates(t *testing.T) {
	srv, client := newTestServer(t)

	post := do(t, client, http.MethodPost, srv.URL+"/premium/premium/subscribe", "")
	if post.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", post.StatusCode)
	}

	body := readBody(t, do(t, client, http.MethodGet, srv.URL+"/premium", ""))
	if !strings.Contains(body, `url=/dashboard?upgraded=true`) {
		t.Fatalf("expected delayed navigation to dashboard")
	}

	dashboard := readBody(t, do(t, client, http.MethodGet, srv.URL+"/dashboard?upgraded=true", ""))
	if !strings.Contains(dashboard, view.MessageUpgraded) {
		t.Fatalf("expected upgrade banner")
	}
	if !strings.Contains(dashboard, stub.ReferralCode) {
		t.Fatalf("expected referral code on dashboard")
	}
}

func TestRouter_HTMLSharePage(t *testing.T) {
	srv, client := newTestServer(t)

	body := readBody(t, do(t, client, http.MethodGet, srv.URL+"/share?league=2", ""))
	if !strings.Contains(body, "Share Crypto Champions") {
		t.Fatalf("expected league share title")
	}
	if !strings.Contains(body, "Back to League") {
		t.Fatalf("expected back link to league")
	}

	platform := readBody(t, do(t, client, http.MethodGet, srv.URL+"/share", ""))
	if !strings.Contains(platform, "Share Pump69") {
		t.Fatalf("expected platform share title")
	}
}

func TestRouter_SwaggerDocs(t *testing.T) {
	srv, client := newTestServer(t)

	resp := do(t, client, http.MethodGet, srv.URL+"/openapi.yaml", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(readBody(t, resp), "/v1/views/stream") {
		t.Fatalf("expected stream path in openapi document")
	}
}
