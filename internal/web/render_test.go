package web_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pbtc21/dsw-wallpaper/internal/web"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newRenderer(t *testing.T, at time.Time) *web.Renderer {
	t.Helper()
	r, err := web.NewRenderer(fixedClock(at))
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}

func TestRender_DeterministicForFixedClock(t *testing.T) {
	at := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	r := newRenderer(t, at)

	pages := map[string]func(*web.Renderer, *bytes.Buffer) error{
		"home":     func(r *web.Renderer, b *bytes.Buffer) error { return r.Home(b) },
		"thankyou": func(r *web.Renderer, b *bytes.Buffer) error { return r.ThankYou(b) },
		"admin":    func(r *web.Renderer, b *bytes.Buffer) error { return r.Admin(b) },
	}

	for name, render := range pages {
		t.Run(name, func(t *testing.T) {
			var first, second bytes.Buffer
			if err := render(r, &first); err != nil {
				t.Fatalf("first render failed: %v", err)
			}
			if err := render(r, &second); err != nil {
				t.Fatalf("second render failed: %v", err)
			}
			if !bytes.Equal(first.Bytes(), second.Bytes()) {
				t.Fatal("repeated renders produced different output")
			}
		})
	}
}

func TestRender_FooterYearTracksClock(t *testing.T) {
	for _, year := range []int{2024, 2026} {
		r := newRenderer(t, time.Date(year, time.January, 15, 0, 0, 0, 0, time.UTC))

		var buf bytes.Buffer
		if err := r.Home(&buf); err != nil {
			t.Fatalf("render failed: %v", err)
		}

		want := fmt.Sprintf("&copy; %d All Rights Reserved", year)
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected footer to contain %q", want)
		}
	}
}

func TestRenderHome_BookingForm(t *testing.T) {
	r := newRenderer(t, time.Now())

	var buf bytes.Buffer
	if err := r.Home(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`action="/api/book"`,
		`name="firstName"`,
		`name="lastName"`,
		`name="email"`,
		`name="date"`,
		`value="14:00"`,
		`value="residential"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestRenderThankYou_LinksHome(t *testing.T) {
	r := newRenderer(t, time.Now())

	var buf bytes.Buffer
	if err := r.ThankYou(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, "Thank You") {
		t.Error("thank-you page missing confirmation heading")
	}
	if !strings.Contains(html, `<a href="/" class="btn">Return Home</a>`) {
		t.Error("thank-you page missing home link")
	}
}

func TestRenderAdmin_ClientModule(t *testing.T) {
	r := newRenderer(t, time.Now())

	var buf bytes.Buffer
	if err := r.Admin(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, `id="appointments"`) {
		t.Error("admin page missing appointments container")
	}
	if !strings.Contains(html, `<script src="/static/admin.js"></script>`) {
		t.Error("admin page missing client script reference")
	}
	if strings.Contains(html, "loadAppointments()") {
		t.Error("admin page should not inline client logic")
	}
}
