package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/trading-league/internal/view"
	"github.com/sourcegraph/conc"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
	streamReadLimit  = 512
)

// originChecker accepts same-host upgrades plus the configured CORS origins.
func originChecker(allowedOrigins []string) func(*http.Request) bool {
	allowAll := false
	allowMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "" {
			continue
		}
		if candidate == "*" {
			allowAll = true
			continue
		}
		allowMap[candidate] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" || allowAll {
			return true
		}
		if _, ok := allowMap[origin]; ok {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}

// StreamViews pushes the session's current frame every time its state
// changes. Client messages are ignored; they only keep the read side alive.
func (h *Handler) StreamViews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamViews")
	defer span.End()

	session, ok := h.session(ctx, w)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(ctx, "websocket upgrade failed", "session_id", session.ID(), "error", err)
		return
	}

	changes, unsubscribe := session.Subscribe()
	defer unsubscribe()

	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	h.logger.DebugContext(ctx, "view stream opened", "session_id", session.ID())

	var wg conc.WaitGroup
	wg.Go(func() {
		defer cancel()
		readStream(conn)
	})
	wg.Go(func() {
		defer cancel()
		defer conn.Close()
		if err := h.writeStream(streamCtx, conn, session, changes); err != nil {
			h.logger.DebugContext(ctx, "view stream write stopped", "session_id", session.ID(), "error", err)
		}
	})
	wg.Wait()

	h.logger.DebugContext(ctx, "view stream closed", "session_id", session.ID())
}

func readStream(conn *websocket.Conn) {
	conn.SetReadLimit(streamReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *Handler) writeStream(ctx context.Context, conn *websocket.Conn, session *view.Session, changes <-chan struct{}) error {
	ping := time.NewTicker(streamPingPeriod)
	defer ping.Stop()

	if err := pushFrame(conn, session); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				_ = conn.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"),
					time.Now().Add(streamWriteWait),
				)
				return nil
			}
			if err := pushFrame(conn, session); err != nil {
				return err
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func pushFrame(conn *websocket.Conn, session *view.Session) error {
	page, ok := session.Current()
	if !ok {
		return nil
	}

	payload, err := sonic.Marshal(session.Frame(page))
	if err != nil {
		return err
	}

	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
