// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/vitrine/internal/config"
)

func newTestRouter(t *testing.T, cfg *ChiMiddlewareConfig) (http.Handler, *fakeExtractor) {
	t.Helper()
	ext := &fakeExtractor{}
	h := NewHandler(ext, HandlerOptions{Catalog: fakeCatalog{state: "closed"}})
	return NewRouter(h, NewChiMiddleware(cfg)).SetupChi(), ext
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSetupChi_Routes(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"health", http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{"health trailing slash", http.MethodGet, "/api/v1/health/", "", http.StatusOK},
		{"live", http.MethodGet, "/api/v1/health/live", "", http.StatusOK},
		{"ready", http.MethodGet, "/api/v1/health/ready", "", http.StatusOK},
		{"performance", http.MethodGet, "/api/v1/health/performance", "", http.StatusOK},
		{"extract", http.MethodPost, "/api/v1/extract", dreamsBody, http.StatusOK},
		{"plan", http.MethodPost, "/api/v1/plan", dreamsBody, http.StatusOK},
		{"extract via GET", http.MethodGet, "/api/v1/extract", "", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/api/v1/artists", "", http.StatusNotFound},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Errorf("%s %s = %d, want %d (body %s)", tt.method, tt.path, rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestSetupChi_ErrorEnvelopes(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	rec := serve(router, http.MethodGet, "/nowhere", "")
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("404 envelope = %+v", env.Error)
	}

	rec = serve(router, http.MethodDelete, "/api/v1/plan", "")
	env = decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != ErrCodeMethodNotAllowed {
		t.Errorf("405 envelope = %+v", env.Error)
	}
}

func TestSetupChi_RequestIDAndHeaders(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec := serve(router, http.MethodPost, "/api/v1/plan", dreamsBody)

	id := rec.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("X-Request-ID = %q, want UUID", id)
	}
	env := decodeEnvelope(t, rec)
	if env.Meta == nil || env.Meta.RequestID != id {
		t.Errorf("meta.request_id = %+v, want %s", env.Meta, id)
	}

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestSetupChi_ExtractRateLimit(t *testing.T) {
	t.Parallel()

	router, ext := newTestRouter(t, nil)

	for i := 0; i < RateLimitExtract.Requests; i++ {
		if rec := serve(router, http.MethodPost, "/api/v1/extract", dreamsBody); rec.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200", i+1, rec.Code)
		}
	}

	rec := serve(router, http.MethodPost, "/api/v1/extract", dreamsBody)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("request over limit = %d, want 429", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("429 envelope = %+v", env.Error)
	}
	if ext.runs != RateLimitExtract.Requests {
		t.Errorf("pipeline runs = %d, want %d", ext.runs, RateLimitExtract.Requests)
	}

	// Planning has its own budget.
	if rec := serve(router, http.MethodPost, "/api/v1/plan", dreamsBody); rec.Code != http.StatusOK {
		t.Errorf("plan after extract limit = %d, want 200", rec.Code)
	}
}

func TestSetupChi_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	router, _ := newTestRouter(t, cfg)

	for i := 0; i < RateLimitExtract.Requests+5; i++ {
		if rec := serve(router, http.MethodPost, "/api/v1/extract", dreamsBody); rec.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200 with limiting disabled", i+1, rec.Code)
		}
	}
}

func TestSetupChi_CORSPreflight(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://curators.example.org"}
	router, _ := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/extract", nil)
	req.Header.Set("Origin", "https://curators.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://curators.example.org" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/extract", nil)
	req.Header.Set("Origin", "https://elsewhere.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Access-Control-Allow-Origin = %q", got)
	}
}

func TestNewChiMiddlewareConfig(t *testing.T) {
	t.Parallel()

	if c := NewChiMiddlewareConfig(nil); c.RateLimitRequests != 100 || c.RateLimitWindow != time.Minute {
		t.Errorf("nil security config = %+v", c)
	}

	c := NewChiMiddlewareConfig(&config.SecurityConfig{
		RateLimitReqs:     30,
		RateLimitWindow:   10 * time.Second,
		RateLimitDisabled: true,
		CORSOrigins:       []string{"https://curators.example.org"},
	})
	if c.RateLimitRequests != 30 || c.RateLimitWindow != 10*time.Second || !c.RateLimitDisabled {
		t.Errorf("rate limit fields = %+v", c)
	}
	if len(c.CORSAllowedOrigins) != 1 || c.CORSAllowedMethods == nil {
		t.Errorf("cors fields = %+v", c)
	}
}
