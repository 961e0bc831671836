// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package api

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(nil)
	if m.config == nil {
		t.Fatal("config is nil")
	}
	// Empty until configured.
	if len(m.config.CORSAllowedOrigins) != 0 {
		t.Errorf("CORSAllowedOrigins = %v, want []", m.config.CORSAllowedOrigins)
	}
	if m.config.CORSMaxAge != 86400 {
		t.Errorf("CORSMaxAge = %d, want 86400", m.config.CORSMaxAge)
	}
	if m.config.RateLimitRequests != 100 || m.config.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", m.config.RateLimitRequests, m.config.RateLimitWindow)
	}
	if m.config.RateLimitDisabled {
		t.Error("RateLimitDisabled should be false by default")
	}
}

func TestChiMiddleware_CORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		origins    []string
		method     string
		origin     string
		wantOrigin string
		wantCalled bool
	}{
		{"wildcard", []string{"*"}, http.MethodGet, "https://curator.example", "*", true},
		{"specific origin reflected", []string{"https://allowed.example"}, http.MethodGet, "https://allowed.example", "https://allowed.example", true},
		{"disallowed origin", []string{"https://allowed.example"}, http.MethodGet, "https://other.example", "", true},
		{"no origin header", []string{"https://allowed.example"}, http.MethodGet, "", "", true},
		{"preflight", []string{"*"}, http.MethodOptions, "https://curator.example", "*", false},
		{"preflight disallowed", []string{"https://allowed.example"}, http.MethodOptions, "https://other.example", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultChiMiddlewareConfig()
			cfg.CORSAllowedOrigins = tt.origins
			m := NewChiMiddleware(cfg)

			called := false
			handler := m.CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/api/v1/extract", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if called != tt.wantCalled {
				t.Errorf("handler called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}

func TestChiMiddleware_RateLimit(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitRequests: 3, RateLimitWindow: time.Minute})
	handler := m.RateLimit()(okHandler())

	var codes []int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:12345"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests && !strings.Contains(rec.Body.String(), ErrCodeTooManyRequests) {
			t.Errorf("429 body = %s, want error envelope", rec.Body.String())
		}
	}

	want := []int{200, 200, 200, 429, 429}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("status codes = %v, want %v", codes, want)
		}
	}
}

func TestChiMiddleware_RateLimit_PerIP(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitRequests: 2, RateLimitWindow: time.Minute})
	handler := m.RateLimit()(okHandler())

	for _, ip := range []string{"192.0.2.1:1", "192.0.2.2:1", "192.0.2.3:1"} {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = ip
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("IP %s request %d: status = %d, want 200", ip, i, rec.Code)
			}
		}
	}
}

func TestChiMiddleware_RateLimit_CustomKeyFunc(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 1,
		RateLimitWindow:   time.Minute,
		RateLimitKeyFunc: func(r *http.Request) (string, error) {
			return r.Header.Get("X-Curator"), nil
		},
	})
	handler := m.RateLimit()(okHandler())

	send := func(curator string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Curator", curator)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if send("ada") != http.StatusOK || send("grace") != http.StatusOK {
		t.Fatal("first request per key should pass")
	}
	if code := send("ada"); code != http.StatusTooManyRequests {
		t.Errorf("second request for same key = %d, want 429", code)
	}
}

func TestChiMiddleware_RateLimitCustom(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitRequests: 100, RateLimitWindow: time.Minute})
	tight := m.RateLimitCustom(RateLimitConfig{Requests: 2, Window: time.Minute})(okHandler())
	loose := m.RateLimitCustom(RateLimitConfig{Requests: 5, Window: time.Minute})(okHandler())

	send := func(h http.Handler) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", nil)
		req.RemoteAddr = "192.0.2.7:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	tests := []struct {
		name    string
		handler http.Handler
		want    []int
	}{
		{"tight", tight, []int{200, 200, 429}},
		{"loose keeps its own budget", loose, []int{200, 200, 200, 200, 200, 429}},
	}

	for _, tt := range tests {
		var got []int
		for range tt.want {
			got = append(got, send(tt.handler))
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s: status codes = %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestChiMiddleware_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true, RateLimitRequests: 1, RateLimitWindow: time.Second})

	for name, mw := range map[string]func(http.Handler) http.Handler{
		"general": m.RateLimit(),
		"extract": m.RateLimitExtract(),
		"plan":    m.RateLimitPlan(),
		"health":  m.RateLimitHealth(),
	} {
		handler := mw(okHandler())
		for i := 0; i < 20; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.9:1"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("%s request %d: status = %d, want 200", name, i, rec.Code)
			}
		}
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should not be set over plain HTTP")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS should be set over TLS")
	}
}
