package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/pbtc21/dsw-wallpaper/internal/web"
	"github.com/pbtc21/dsw-wallpaper/pkg/logger"
)

type PagesHandler struct{ renderer *web.Renderer }

func NewPagesHandler(renderer *web.Renderer) *PagesHandler {
	return &PagesHandler{renderer: renderer}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.renderer.Home)
}

func (h *PagesHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.renderer.ThankYou)
}

func (h *PagesHandler) Admin(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.renderer.Admin)
}

// serve renders into a buffer first so a template fault becomes a clean 500
// instead of a half-written page.
func (h *PagesHandler) serve(w http.ResponseWriter, r *http.Request, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logger.ErrorContext(r.Context(), "page render failed", "error", err, "path", r.URL.Path)
		http.Error(w, "error rendering page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
