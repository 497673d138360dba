package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen/internal/dom"
	"github.com/vaultpass/passgen/internal/page"
)

// ViewFactory builds a fresh view for a single render.
type ViewFactory func() page.View

// PreviewHandler serves the composed markup of the generator view. It never
// generates passwords: every request renders an untouched view.
type PreviewHandler struct {
	newView ViewFactory
	title   string
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(newView ViewFactory, title string) *PreviewHandler {
	return &PreviewHandler{newView: newView, title: title}
}

// HandlePage handles GET / requests.
func (h *PreviewHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	markup, err := RenderDocument(h.newView, h.title)
	if err != nil {
		slog.Error("render preview failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(markup))
}

// HandleHealth handles GET /health requests.
func (h *PreviewHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// RenderDocument mounts a fresh view into an empty document titled title and
// returns the whole page. The view is torn down before returning.
func RenderDocument(newView ViewFactory, title string) (string, error) {
	v := newView()
	defer v.Teardown()

	body, app := page.NewDocument()
	if err := page.Mount(app, v); err != nil {
		return "", err
	}

	head := dom.NewElement("head").Append(
		dom.NewElement("meta").SetAttr("charset", "utf-8"),
		dom.NewElement("title").SetText(title),
	)
	doc := dom.NewElement("html").SetAttr("lang", "en").Append(head, body)

	var buf bytes.Buffer
	if err := doc.RenderDocument(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
