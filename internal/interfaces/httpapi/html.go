package httpapi

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/riskibarqy/trading-league/internal/view"
	"github.com/valyala/bytebufferpool"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageLeagues      = "leagues.html"
	pageLeagueDetail = "league_detail.html"
	pagePremium      = "premium.html"
	pageDashboard    = "dashboard.html"
	pageShare        = "share.html"
	pageError        = "error.html"

	// refreshSeconds is how often an unsettled page reloads itself.
	refreshSeconds = 1
	// redirectSeconds leaves time to read the alert before navigating.
	redirectSeconds = 2
)

type htmlDocument struct {
	Title    string
	Refresh  int
	Redirect string
	Alerts   []string
	Copies   []string
	Opens    []string
	View     any
	Error    *htmlError
}

type htmlError struct {
	Code    int
	Message string
}

type pageRenderer struct {
	pages map[string]*template.Template
}

func newPageRenderer() (*pageRenderer, error) {
	base, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout template: %w", err)
	}

	names := []string{pageLeagues, pageLeagueDetail, pagePremium, pageDashboard, pageShare, pageError}
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		t, err := clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &pageRenderer{pages: pages}, nil
}

func (p *pageRenderer) render(w http.ResponseWriter, status int, name string, doc htmlDocument) error {
	t, ok := p.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := t.ExecuteTemplate(buf, "layout", doc); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// documentOf turns a drained frame into template input. A navigate effect
// wins over the settle refresh.
func documentOf(title string, frame view.Frame) htmlDocument {
	doc := htmlDocument{Title: title, View: frame.View}
	for _, effect := range frame.Effects {
		switch effect.Kind {
		case view.EffectAlert:
			doc.Alerts = append(doc.Alerts, effect.Value)
		case view.EffectClipboard:
			doc.Copies = append(doc.Copies, effect.Value)
		case view.EffectOpen:
			doc.Opens = append(doc.Opens, effect.Value)
		case view.EffectNavigate:
			doc.Redirect = effect.Value
		}
	}

	if doc.Redirect != "" {
		doc.Refresh = redirectSeconds
		return doc
	}
	if s, ok := frame.View.(interface{ Settled() bool }); ok && !s.Settled() {
		doc.Refresh = refreshSeconds
	}
	return doc
}
