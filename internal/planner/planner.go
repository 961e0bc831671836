// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package planner

import (
	"fmt"
	"strings"

	"github.com/tomtom215/vitrine/internal/lexicon"
	"github.com/tomtom215/vitrine/internal/models"
)

const (
	// MediaRestriction is ANDed onto every query.
	MediaRestriction = "TYPE:IMAGE"

	// FallbackTerm is used when a section yields no terms at all.
	FallbackTerm = "art"

	countryFacetPrefix = "COUNTRY:"
)

// Options controls planning.
type Options struct {
	// RowTarget is the total rows wanted per section.
	RowTarget int
}

// Plan emits one query per (section, country) pair, or one per section
// when the brief has no geographic focus. Output follows section order,
// then geography order.
func Plan(brief models.Brief, sections []models.Section, opts Options) []models.CatalogQuery {
	countries := cleanList(brief.Geography)
	movements := movementTerms(brief.Movements)

	target := opts.RowTarget
	if target < 1 {
		target = 1
	}

	perCountry := target
	if len(countries) > 0 {
		perCountry = target / len(countries)
		if perCountry < 1 {
			perCountry = 1
		}
	}

	queries := make([]models.CatalogQuery, 0, len(sections)*max(1, len(countries)))
	for i, section := range sections {
		id := SectionID(section, i)
		keywords := MeaningfulKeywords(ExtractKeywords(section.Focus))
		q := BuildQuery(movements, keywords)

		if len(countries) == 0 {
			queries = append(queries, models.CatalogQuery{
				SectionID:    id,
				SectionTitle: section.Title,
				QueryString:  q,
				RowTarget:    target,
			})
			continue
		}

		for _, country := range countries {
			queries = append(queries, models.CatalogQuery{
				SectionID:    id,
				SectionTitle: section.Title,
				QueryString:  q,
				FacetFilters: []string{countryFacetPrefix + country},
				RowTarget:    perCountry,
			})
		}
	}
	return queries
}

// BuildQuery composes (t1 OR t2 ...) AND TYPE:IMAGE from up to two
// movements followed by the keywords. Multi-word terms are quoted.
func BuildQuery(movements, keywords []string) string {
	terms := make([]string, 0, MaxQueryMovements+len(keywords))
	seen := make(map[string]struct{})
	add := func(t string) {
		if t == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, quoteTerm(t))
	}

	for i, m := range movements {
		if i == MaxQueryMovements {
			break
		}
		add(m)
	}
	for _, k := range keywords {
		add(k)
	}

	if len(terms) == 0 {
		return FallbackTerm + " AND " + MediaRestriction
	}
	return "(" + strings.Join(terms, " OR ") + ") AND " + MediaRestriction
}

// SectionID returns the section's ID or "section-<n>" for position i.
func SectionID(s models.Section, i int) string {
	if id := strings.TrimSpace(s.ID); id != "" {
		return id
	}
	return fmt.Sprintf("section-%d", i+1)
}

func quoteTerm(t string) string {
	if strings.ContainsAny(t, " \t") {
		return `"` + strings.ReplaceAll(t, `"`, "") + `"`
	}
	return t
}

// movementTerms maps each brief movement to its canonical search term.
func movementTerms(movements []string) []string {
	var out []string
	for _, m := range movements {
		if terms := lexicon.MovementTerms(m); len(terms) > 0 {
			out = append(out, terms[0])
		}
	}
	return out
}

func cleanList(values []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
