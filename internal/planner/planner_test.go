// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package planner

import (
	"reflect"
	"testing"

	"github.com/tomtom215/vitrine/internal/models"
)

func TestPlan_DreamsScenario(t *testing.T) {
	t.Parallel()

	brief := models.Brief{
		Movements:  []string{"surrealism"},
		MediaTypes: []string{"photography"},
		TimePeriod: "1970-2025",
		Geography:  []string{"Netherlands"},
	}
	sections := []models.Section{{Title: "Dreams", Focus: "dreamlike digital landscapes"}}

	queries := Plan(brief, sections, Options{RowTarget: 100})
	if len(queries) != 1 {
		t.Fatalf("len(queries) = %d, want 1", len(queries))
	}

	q := queries[0]
	if !reflect.DeepEqual(q.FacetFilters, []string{"COUNTRY:Netherlands"}) {
		t.Errorf("FacetFilters = %v", q.FacetFilters)
	}
	if want := "(surrealism OR dreamlike OR digital) AND TYPE:IMAGE"; q.QueryString != want {
		t.Errorf("QueryString = %q, want %q", q.QueryString, want)
	}
	if q.SectionID != "section-1" || q.SectionTitle != "Dreams" {
		t.Errorf("section tag = %q/%q", q.SectionID, q.SectionTitle)
	}
	if q.RowTarget != 100 {
		t.Errorf("RowTarget = %d, want 100", q.RowTarget)
	}
}

func TestPlan_FanOutAndOrdering(t *testing.T) {
	t.Parallel()

	brief := models.Brief{Geography: []string{"France", "Belgium", "Spain"}}
	sections := []models.Section{
		{ID: "a", Title: "Harbours", Focus: "maritime harbour scenes"},
		{ID: "b", Title: "Portraits", Focus: "intimate family portraits"},
	}

	queries := Plan(brief, sections, Options{RowTarget: 100})
	if len(queries) != 6 {
		t.Fatalf("len(queries) = %d, want 2 sections x 3 countries", len(queries))
	}

	wantOrder := []struct{ section, facet string }{
		{"a", "COUNTRY:France"}, {"a", "COUNTRY:Belgium"}, {"a", "COUNTRY:Spain"},
		{"b", "COUNTRY:France"}, {"b", "COUNTRY:Belgium"}, {"b", "COUNTRY:Spain"},
	}
	for i, want := range wantOrder {
		if queries[i].SectionID != want.section || queries[i].FacetFilters[0] != want.facet {
			t.Errorf("queries[%d] = %s/%v, want %s/%s", i, queries[i].SectionID, queries[i].FacetFilters, want.section, want.facet)
		}
		if queries[i].RowTarget != 33 {
			t.Errorf("queries[%d].RowTarget = %d, want floor(100/3)", i, queries[i].RowTarget)
		}
	}
}

func TestPlan_NoGeography(t *testing.T) {
	t.Parallel()

	sections := []models.Section{{Title: "One"}, {Title: "Two"}}
	queries := Plan(models.Brief{}, sections, Options{RowTarget: 80})
	if len(queries) != 2 {
		t.Fatalf("len(queries) = %d, want 2", len(queries))
	}
	for _, q := range queries {
		if len(q.FacetFilters) != 0 {
			t.Errorf("unexpected facets %v", q.FacetFilters)
		}
		if q.RowTarget != 80 {
			t.Errorf("RowTarget = %d, want full target", q.RowTarget)
		}
		if q.QueryString != "art AND TYPE:IMAGE" {
			t.Errorf("QueryString = %q, want fallback", q.QueryString)
		}
	}
	if queries[1].SectionID != "section-2" {
		t.Errorf("second section ID = %q", queries[1].SectionID)
	}
}

func TestPlan_RowTargetFloorMinimumOne(t *testing.T) {
	t.Parallel()

	brief := models.Brief{Geography: []string{"A", "B", "C"}}
	queries := Plan(brief, []models.Section{{Title: "x"}}, Options{RowTarget: 2})
	for _, q := range queries {
		if q.RowTarget != 1 {
			t.Errorf("RowTarget = %d, want 1", q.RowTarget)
		}
	}
}

func TestPlan_EmptySections(t *testing.T) {
	t.Parallel()

	if got := Plan(models.Brief{Geography: []string{"France"}}, nil, Options{RowTarget: 10}); len(got) != 0 {
		t.Errorf("expected no queries, got %d", len(got))
	}
}

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		movements []string
		keywords  []string
		want      string
	}{
		{"fallback", nil, nil, "art AND TYPE:IMAGE"},
		{"keywords only", nil, []string{"harbour"}, "(harbour) AND TYPE:IMAGE"},
		{"two movement cap", []string{"dada", "cubism", "futurism"}, nil, "(dada OR cubism) AND TYPE:IMAGE"},
		{"multi word quoted", []string{"pop art"}, []string{"consumer"}, `("pop art" OR consumer) AND TYPE:IMAGE`},
		{"duplicate dropped", []string{"bauhaus"}, []string{"bauhaus"}, "(bauhaus) AND TYPE:IMAGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := BuildQuery(tt.movements, tt.keywords); got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	got := ExtractKeywords("The exhibition explores dreamlike, digital landscapes of the sea and sky; art by women in 1970s Europe, with light, water, memory")
	want := []string{"explores", "dreamlike", "digital", "landscapes", "sea", "sky", "art", "women"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}

	if got := MeaningfulKeywords(got); !reflect.DeepEqual(got, []string{"dreamlike", "digital"}) {
		t.Errorf("MeaningfulKeywords() = %v", got)
	}
}

func TestTokenize_Unicode(t *testing.T) {
	t.Parallel()

	got := Tokenize("Surréalisme—Rêves/Écume")
	want := []string{"surréalisme", "rêves", "écume"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestThemeKeywords(t *testing.T) {
	t.Parallel()

	brief := models.Brief{Description: "Surreal dreams and digital memory"}
	sections := []models.Section{
		{Title: "Dreams", Focus: "dreamlike digital landscapes"},
	}
	got := ThemeKeywords(brief, sections)
	want := []string{"surreal", "dreams", "digital", "memory", "dreamlike", "landscapes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ThemeKeywords() = %v, want %v", got, want)
	}
}
