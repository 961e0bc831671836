// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vitrine/internal/catalog"
	"github.com/tomtom215/vitrine/internal/config"
	"github.com/tomtom215/vitrine/internal/executor"
	"github.com/tomtom215/vitrine/internal/models"
)

func extractionConfig() *config.ExtractionConfig {
	return &config.ExtractionConfig{
		RowTarget:            100,
		MaxConcurrentQueries: 4,
		MinWorks:             3,
		MaxUnknownRatio:      0.5,
		TopN:                 50,
		MinArtistsTarget:     1,
		RecencyThreshold:     2000,
	}
}

// catalogServer serves items by start and rows like the real search API.
func catalogServer(t *testing.T, items []catalog.Item) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		start, _ := strconv.Atoi(q.Get("start"))
		rows, _ := strconv.Atoi(q.Get("rows"))
		from := min(max(start-1, 0), len(items))
		to := min(from+rows, len(items))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"totalResults": len(items),
			"itemsCount":   to - from,
			"items":        items[from:to],
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRun_DreamsScenario(t *testing.T) {
	t.Parallel()

	var items []catalog.Item
	for i := 0; i < 7; i++ {
		items = append(items, catalog.Item{
			ID:           fmt.Sprintf("/ernst/%d", i),
			Title:        models.StringList{"Dreamlike landscape"},
			Creator:      models.StringList{"Ernst, Max"},
			Year:         models.StringList{strconv.Itoa(1970 + i)},
			Type:         models.StringList{"IMAGE"},
			Country:      models.StringList{"Netherlands"},
			DataProvider: models.StringList{"Stedelijk Museum"},
		})
	}
	items = append(items,
		catalog.Item{ID: "/unknown/1", Creator: models.StringList{"Unknown"}},
		catalog.Item{ID: "/miller/1", Creator: models.StringList{"Lee Miller"}},
		catalog.Item{ID: "/blank/1"},
	)

	server := catalogServer(t, items)
	catalogCfg := &config.CatalogConfig{
		BaseURL:        server.URL,
		APIKey:         "test",
		PageSize:       100,
		RequestTimeout: 5 * time.Second,
		RateBurst:      1,
	}
	coord := New(catalog.New(catalogCfg), catalogCfg, extractionConfig())

	brief := models.Brief{
		Movements:  []string{"surrealism"},
		MediaTypes: []string{"photography"},
		TimePeriod: "1970-2025",
		Geography:  []string{"Netherlands"},
	}
	sections := []models.Section{{Title: "Dreams", Focus: "dreamlike digital landscapes"}}

	result := coord.Run(context.Background(), brief, sections)

	if len(result.Queries) != 1 || result.Queries[0].FacetFilters[0] != "COUNTRY:Netherlands" {
		t.Fatalf("queries = %+v", result.Queries)
	}
	if result.TotalArtworks != 10 || result.UniqueArtworks != 10 {
		t.Errorf("artworks = %d/%d, want 10/10", result.TotalArtworks, result.UniqueArtworks)
	}
	if result.UnknownRecords != 2 {
		t.Errorf("UnknownRecords = %d, want 2", result.UnknownRecords)
	}
	if result.IdentitiesFound != 2 {
		t.Errorf("IdentitiesFound = %d, want 2", result.IdentitiesFound)
	}
	if result.FilteredByMinWorks != 1 {
		t.Errorf("FilteredByMinWorks = %d, want 1", result.FilteredByMinWorks)
	}
	if result.ArtistsFound != 1 {
		t.Fatalf("ArtistsFound = %d, want 1", result.ArtistsFound)
	}

	got := result.Candidates[0]
	if got.Name != "Max Ernst" || got.WorkCount != 7 || got.Rank != 1 {
		t.Errorf("candidate = %s (%d works, rank %d)", got.Name, got.WorkCount, got.Rank)
	}
	if got.Profile.PrimaryCountry != "Netherlands" || got.Profile.Nationality != "Dutch" {
		t.Errorf("profile = %+v", got.Profile)
	}
	if got.Relevance.Breakdown.GeoBonus != 10 {
		t.Errorf("GeoBonus = %v, want 10", got.Relevance.Breakdown.GeoBonus)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings %+v", result.Warnings)
	}
	if result.RunID == "" || result.CompletedAt.Before(result.StartedAt) {
		t.Errorf("run metadata = %q %v %v", result.RunID, result.StartedAt, result.CompletedAt)
	}
}

// scriptedSearcher returns one page per query string without paging.
type scriptedSearcher struct {
	pages map[string][]catalog.Item
	fail  map[string]bool
}

func (s *scriptedSearcher) Search(_ context.Context, req catalog.SearchRequest) (*catalog.SearchResponse, error) {
	if s.fail[req.Query] {
		return nil, catalog.ErrCatalogUnavailable
	}
	items := s.pages[req.Query]
	if req.Start > 1 {
		items = nil
	}
	return &catalog.SearchResponse{Success: true, TotalResults: len(items), Items: items}, nil
}

func works(name string, n int, prefix string, manifests bool) []catalog.Item {
	out := make([]catalog.Item, n)
	for i := range out {
		out[i] = catalog.Item{
			ID:           fmt.Sprintf("/%s/%s/%d", prefix, name, i),
			Creator:      models.StringList{name},
			DataProvider: models.StringList{fmt.Sprintf("Museum %d", i%3)},
		}
		if manifests {
			out[i].IsShownBy = models.StringList{"https://example.org/img.jpg"}
		}
	}
	return out
}

func TestRun_FilterAccounting(t *testing.T) {
	t.Parallel()

	page := []catalog.Item{}
	page = append(page, works("Claude Cahun", 12, "a", true)...)
	page = append(page, works("Dora Maar", 8, "a", false)...)
	page = append(page, works("Lee Miller", 6, "a", true)...)
	page = append(page, works("Man Ray", 4, "a", false)...)
	page = append(page, works("Germaine Krull", 2, "a", true)...)
	page = append(page, works("Ilse Bing", 1, "a", true)...)

	// Four records whose primary creator is a placeholder, attributed to
	// Florence Henri through the language fallback; plus two valid ones.
	for i := 0; i < 4; i++ {
		page = append(page, catalog.Item{
			ID:               fmt.Sprintf("/a/henri-unknown/%d", i),
			Creator:          models.StringList{"Unknown"},
			CreatorLangAware: map[string]models.StringList{"def": {"Florence Henri"}},
		})
	}
	page = append(page, works("Florence Henri", 2, "b", false)...)

	searcher := &scriptedSearcher{pages: map[string][]catalog.Item{"art AND TYPE:IMAGE": page}}
	cfg := extractionConfig()
	cfg.TopN = 2
	cfg.MinArtistsTarget = 3

	coord := NewWithExecutor(executor.New(searcher), *cfg)
	result := coord.Run(context.Background(), models.Brief{}, []models.Section{{Title: "Open call"}})

	if result.IdentitiesFound != 7 {
		t.Fatalf("IdentitiesFound = %d, want 7", result.IdentitiesFound)
	}
	if result.FilteredByMinWorks != 2 {
		t.Errorf("FilteredByMinWorks = %d, want 2", result.FilteredByMinWorks)
	}
	if result.FilteredByUnknown != 1 {
		t.Errorf("FilteredByUnknown = %d, want 1", result.FilteredByUnknown)
	}
	if result.FilteredByTopLimit != 2 {
		t.Errorf("FilteredByTopLimit = %d, want 2", result.FilteredByTopLimit)
	}
	sum := result.FilteredByMinWorks + result.FilteredByUnknown + result.FilteredByTopLimit + result.ArtistsFound
	if sum != result.IdentitiesFound {
		t.Errorf("filter accounting %d != identities %d", sum, result.IdentitiesFound)
	}

	if result.Candidates[0].Name != "Claude Cahun" {
		t.Errorf("top candidate = %s, want Claude Cahun", result.Candidates[0].Name)
	}
	for i := 1; i < len(result.Candidates); i++ {
		if result.Candidates[i-1].Quality.Total < result.Candidates[i].Quality.Total {
			t.Errorf("candidates not ranked by quality: %d < %d", result.Candidates[i-1].Quality.Total, result.Candidates[i].Quality.Total)
		}
	}
	if !result.HasWarning(models.WarningLowIdentityYield) {
		t.Errorf("expected low identity yield warning, got %+v", result.Warnings)
	}
}

func TestRun_FailuresBecomeWarnings(t *testing.T) {
	t.Parallel()

	searcher := &scriptedSearcher{fail: map[string]bool{"art AND TYPE:IMAGE": true}}
	coord := NewWithExecutor(executor.New(searcher), *extractionConfig())

	result := coord.Run(context.Background(), models.Brief{Geography: []string{"France", "Spain"}}, []models.Section{{Title: "Harbours"}})

	if result.Stats.FailedQueries != 2 {
		t.Errorf("FailedQueries = %d, want 2", result.Stats.FailedQueries)
	}
	if len(result.Stats.FailedSections) != 1 || result.Stats.FailedSections[0] != "Harbours" {
		t.Errorf("FailedSections = %v", result.Stats.FailedSections)
	}
	if !result.HasWarning(models.WarningLowYield) || !result.HasWarning(models.WarningNoMatches) {
		t.Errorf("warnings = %+v", result.Warnings)
	}
	if result.ArtistsFound != 0 || len(result.Candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(result.Candidates))
	}
}

func TestRun_NoSections(t *testing.T) {
	t.Parallel()

	coord := NewWithExecutor(executor.New(&scriptedSearcher{}), *extractionConfig())
	result := coord.Run(context.Background(), models.Brief{}, nil)

	if len(result.Queries) != 0 || result.Stats.TotalQueries != 0 {
		t.Errorf("queries = %d", len(result.Queries))
	}
	if result.HasWarning(models.WarningLowYield) {
		t.Error("zero queries must not raise a low yield warning")
	}
	if !result.HasWarning(models.WarningNoMatches) {
		t.Error("expected no matches warning")
	}
}

func TestRank_TieBreaks(t *testing.T) {
	t.Parallel()

	mk := func(name string, q int, r float64) scored {
		return scored{
			identity:  &models.Identity{Name: name},
			quality:   models.QualityScore{Total: q},
			relevance: models.RelevanceScore{Total: r},
		}
	}
	items := []scored{
		mk("a", 50, 10),
		mk("b", 70, 5),
		mk("c", 50, 40),
		mk("d", 50, 10),
	}
	rank(items)

	want := []string{"b", "c", "a", "d"}
	for i, w := range want {
		if items[i].identity.Name != w {
			t.Errorf("position %d = %s, want %s", i, items[i].identity.Name, w)
		}
	}
}
