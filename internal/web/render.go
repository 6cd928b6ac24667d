package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer produces the site's HTML pages. Output is a pure function of the
// page and the injected clock (only the footer year depends on it).
type Renderer struct {
	now   func() time.Time
	pages map[string]*template.Template
}

func NewRenderer(now func() time.Time) (*Renderer, error) {
	if now == nil {
		now = time.Now
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{"home", "thankyou", "admin"} {
		t, err := template.ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{now: now, pages: pages}, nil
}

type pageData struct {
	Title string
	Year  int
}

func (r *Renderer) render(w io.Writer, page, title string) error {
	return r.pages[page].ExecuteTemplate(w, "layout.gohtml", pageData{
		Title: title,
		Year:  r.now().Year(),
	})
}

func (r *Renderer) Home(w io.Writer) error {
	return r.render(w, "home", "Daniel Schneider-Weiler | Hand Painted Wallpaper")
}

func (r *Renderer) ThankYou(w io.Writer) error {
	return r.render(w, "thankyou", "Thank You | Daniel Schneider-Weiler")
}

func (r *Renderer) Admin(w io.Writer) error {
	return r.render(w, "admin", "Admin | Daniel Schneider-Weiler")
}

// Static serves the shared stylesheet and the admin client script. Paths are
// rooted at /static/ so the handler mounts without a prefix strip.
func Static() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
