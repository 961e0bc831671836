// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vitrine/internal/models"
)

type fakeExtractor struct {
	mu       sync.Mutex
	runs     int
	brief    models.Brief
	sections []models.Section
}

func (f *fakeExtractor) Run(_ context.Context, brief models.Brief, sections []models.Section) *models.ExtractionResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs++
	f.brief = brief
	f.sections = sections
	return &models.ExtractionResult{
		RunID:        "3f2a9c1e",
		ArtistsFound: 1,
		Candidates: []models.Candidate{
			{Rank: 1, Name: "Max Ernst", WorkCount: 7},
		},
	}
}

func (f *fakeExtractor) Plan(_ models.Brief, sections []models.Section) []models.CatalogQuery {
	queries := make([]models.CatalogQuery, len(sections))
	for i, s := range sections {
		queries[i] = models.CatalogQuery{SectionTitle: s.Title, QueryString: "art AND TYPE:IMAGE", RowTarget: 100}
	}
	return queries
}

type fakeCatalog struct{ state string }

func (f fakeCatalog) BreakerState() string { return f.state }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string                 `json:"code"`
		Message   string                 `json:"message"`
		Details   map[string]interface{} `json:"details"`
		RequestID string                 `json:"request_id"`
	} `json:"error"`
	Meta *struct {
		RequestID string `json:"request_id"`
		Count     *int   `json:"count"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

const dreamsBody = `{
  "brief": {"movements": ["surrealism"], "media_types": ["digital"], "geography": ["Netherlands"]},
  "sections": [{"title": "Dreams", "focus": "dreamlike digital landscapes"}]
}`

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestExtract_Success(t *testing.T) {
	t.Parallel()

	ext := &fakeExtractor{}
	h := NewHandler(ext, HandlerOptions{})

	rec := post(h.Extract, dreamsBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success || env.Error != nil {
		t.Fatalf("envelope = %+v", env)
	}

	var result models.ExtractionResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.RunID != "3f2a9c1e" || len(result.Candidates) != 1 || result.Candidates[0].Name != "Max Ernst" {
		t.Errorf("result = %+v", result)
	}

	if ext.runs != 1 {
		t.Fatalf("extractor ran %d times", ext.runs)
	}
	if ext.brief.Geography[0] != "Netherlands" || ext.sections[0].Title != "Dreams" {
		t.Errorf("extractor received brief %+v sections %+v", ext.brief, ext.sections)
	}
}

func TestExtract_RejectsBadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMsg  string
	}{
		{"empty body", "", ErrCodeBadRequest, "Request body is required"},
		{"malformed json", `{"brief":`, ErrCodeBadRequest, "Invalid JSON request body"},
		{"unknown field", `{"brief":{},"sections":[{"title":"x"}],"extra":1}`, ErrCodeBadRequest, "Invalid JSON request body"},
		{"missing sections", `{"brief":{}}`, ErrCodeValidationFailed, "sections is required"},
		{"section without title", `{"brief":{},"sections":[{"focus":"harbours"}]}`, ErrCodeValidationFailed, "sections[0].title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ext := &fakeExtractor{}
			h := NewHandler(ext, HandlerOptions{})
			rec := post(h.Extract, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			env := decodeEnvelope(t, rec)
			if env.Success || env.Error == nil {
				t.Fatalf("envelope = %+v", env)
			}
			if env.Error.Code != tt.wantCode || env.Error.Message != tt.wantMsg {
				t.Errorf("error = %s %q, want %s %q", env.Error.Code, env.Error.Message, tt.wantCode, tt.wantMsg)
			}
			if ext.runs != 0 {
				t.Error("pipeline must not run for a rejected request")
			}
		})
	}
}

func TestExtract_ValidationDetails(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeExtractor{}, HandlerOptions{})
	rec := post(h.Extract, `{"brief":{"time_period":"someday"},"sections":[{"title":"x"}]}`)

	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Details["field"] != "brief.time_period" {
		t.Errorf("details = %+v", env.Error)
	}
}

func TestExtract_BodyTooLarge(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeExtractor{}, HandlerOptions{MaxBodyBytes: 64})
	rec := post(h.Extract, dreamsBody)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != ErrCodePayloadTooLarge {
		t.Errorf("error = %+v", env.Error)
	}
	if limit, _ := env.Error.Details["limit_bytes"].(float64); limit != 64 {
		t.Errorf("limit_bytes = %v, want 64", env.Error.Details["limit_bytes"])
	}
}

func TestPlan_ReturnsQueriesWithCount(t *testing.T) {
	t.Parallel()

	ext := &fakeExtractor{}
	h := NewHandler(ext, HandlerOptions{})

	body := `{"brief":{},"sections":[{"title":"Harbours"},{"title":"Night"}]}`
	rec := post(h.Plan, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	var queries []models.CatalogQuery
	if err := json.Unmarshal(env.Data, &queries); err != nil {
		t.Fatalf("decode queries: %v", err)
	}
	if len(queries) != 2 || queries[1].SectionTitle != "Night" {
		t.Errorf("queries = %+v", queries)
	}
	if env.Meta == nil || env.Meta.Count == nil || *env.Meta.Count != 2 {
		t.Errorf("meta = %+v", env.Meta)
	}
	if ext.runs != 0 {
		t.Error("plan must not run the pipeline")
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		catalog     CatalogStatus
		wantStatus  string
		wantReadyOK bool
	}{
		{"no catalog source", nil, "healthy", true},
		{"closed circuit", fakeCatalog{state: "closed"}, "healthy", true},
		{"half-open circuit", fakeCatalog{state: "half-open"}, "healthy", true},
		{"open circuit", fakeCatalog{state: "open"}, "degraded", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(&fakeExtractor{}, HandlerOptions{Catalog: tt.catalog, Version: "1.2.3"})

			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
			var status HealthStatus
			if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &status); err != nil {
				t.Fatalf("decode health: %v", err)
			}
			if status.Status != tt.wantStatus || status.Version != "1.2.3" {
				t.Errorf("health = %+v, want status %s", status, tt.wantStatus)
			}

			rec = httptest.NewRecorder()
			h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
			wantCode := http.StatusOK
			if !tt.wantReadyOK {
				wantCode = http.StatusServiceUnavailable
			}
			if rec.Code != wantCode {
				t.Errorf("ready status = %d, want %d", rec.Code, wantCode)
			}
			if env := decodeEnvelope(t, rec); env.Success != tt.wantReadyOK {
				t.Errorf("ready success = %v, want %v", env.Success, tt.wantReadyOK)
			}

			rec = httptest.NewRecorder()
			h.HealthLive(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))
			if rec.Code != http.StatusOK {
				t.Errorf("live status = %d", rec.Code)
			}
		})
	}
}
