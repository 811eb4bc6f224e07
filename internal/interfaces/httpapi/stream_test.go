package httpapi

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/trading-league/internal/view"
)

type streamFrame struct {
	SessionID string        `json:"sessionId"`
	Route     string        `json:"route"`
	Effects   []view.Effect `json:"effects"`
}

func dialStream(t *testing.T, srvURL string, client *http.Client) *websocket.Conn {
	t.Helper()

	base, err := url.Parse(srvURL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	header := http.Header{}
	for _, c := range client.Jar.Cookies(base) {
		header.Add("Cookie", c.String())
	}

	wsURL := "ws" + strings.TrimPrefix(srvURL, "http") + "/v1/views/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("dial stream (status %d): %v", status, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) streamFrame {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	var frame streamFrame
	if err := sonic.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return frame
}

func TestStreamViews_PushesCurrentFrameOnConnect(t *testing.T) {
	srv, client := newTestServer(t)

	mounted := decode[frameEnvelope](t, do(t, client, http.MethodGet, srv.URL+"/v1/views/leagues/2", ""))

	conn := dialStream(t, srv.URL, client)
	frame := readFrame(t, conn)
	if frame.Route != "/leagues/2" {
		t.Fatalf("unexpected route %q", frame.Route)
	}
	if frame.SessionID != mounted.Data.SessionID {
		t.Fatalf("stream bound to session %q, expected %q", frame.SessionID, mounted.Data.SessionID)
	}
}

func TestStreamViews_PushesOnChange(t *testing.T) {
	srv, client := newTestServer(t)

	do(t, client, http.MethodGet, srv.URL+"/v1/views/premium", "")
	conn := dialStream(t, srv.URL, client)
	if first := readFrame(t, conn); first.Route != view.RoutePremium {
		t.Fatalf("unexpected initial route %q", first.Route)
	}

	do(t, client, http.MethodPost, srv.URL+"/v1/views/premium/pro/select", "")

	if next := readFrame(t, conn); next.Route != view.RoutePremium {
		t.Fatalf("unexpected pushed route %q", next.Route)
	}
}
