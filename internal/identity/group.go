// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package identity

import (
	"sort"
	"strings"

	"github.com/tomtom215/vitrine/internal/lexicon"
	"github.com/tomtom215/vitrine/internal/models"
)

// Fallback language keys tried first, in order, before the remaining keys
// of the language-tagged creator field in lexicographic order.
var preferredLanguages = []string{"def", "en"}

// Grouping is the result of grouping one run's records.
type Grouping struct {
	// Identities are in first-seen order.
	Identities []*models.Identity

	// UnknownRecords counts records that name no valid creator in any
	// creator field.
	UnknownRecords int
}

// Len returns the number of distinct identities.
func (g *Grouping) Len() int {
	return len(g.Identities)
}

type grouper struct {
	byName map[string]*models.Identity
	seenOf map[*models.Identity]map[string]struct{}
	out    *Grouping
}

// Group attributes records to normalized identities.
func Group(records []*models.Record) *Grouping {
	g := &grouper{
		byName: make(map[string]*models.Identity),
		seenOf: make(map[*models.Identity]map[string]struct{}),
		out:    &Grouping{},
	}
	for _, rec := range records {
		if rec != nil {
			g.add(rec)
		}
	}
	for _, id := range g.out.Identities {
		sort.Strings(id.Variants)
	}
	return g.out
}

func (g *grouper) add(rec *models.Record) {
	names := resolve(rec.Creators)
	unknown := false

	if len(names) == 0 {
		// A primary field that lists something but nothing valid marks the
		// record as an unknown work.
		unknown = len(rec.Creators) > 0
		names = resolveLangAware(rec.CreatorsLangAware)
	}

	if len(names) == 0 {
		g.out.UnknownRecords++
		return
	}

	for _, n := range names {
		id := g.identityFor(n.key)
		id.Works = append(id.Works, rec)
		if unknown {
			id.UnknownWorks++
		}
		for _, raw := range n.raw {
			g.addVariant(id, raw)
		}
	}
}

func (g *grouper) identityFor(key string) *models.Identity {
	if id, ok := g.byName[key]; ok {
		return id
	}
	id := &models.Identity{Name: key}
	g.byName[key] = id
	g.seenOf[id] = make(map[string]struct{})
	g.out.Identities = append(g.out.Identities, id)
	return id
}

func (g *grouper) addVariant(id *models.Identity, raw string) {
	seen := g.seenOf[id]
	if _, ok := seen[raw]; ok {
		return
	}
	seen[raw] = struct{}{}
	id.Variants = append(id.Variants, raw)
}

// resolvedName is one valid identity key on a record plus the raw strings
// that produced it.
type resolvedName struct {
	key string
	raw []string
}

// resolve normalizes raw creator strings, drops invalid ones and merges
// repeats so that a record is attributed to each identity once.
func resolve(raws []string) []resolvedName {
	var out []resolvedName
	index := make(map[string]int)
	for _, raw := range raws {
		raw = strings.TrimSpace(raw)
		key := Normalize(raw)
		if lexicon.HasURIPrefix(raw) || !IsValid(key) {
			continue
		}
		if i, ok := index[key]; ok {
			out[i].raw = append(out[i].raw, raw)
			continue
		}
		index[key] = len(out)
		out = append(out, resolvedName{key: key, raw: []string{raw}})
	}
	return out
}

// resolveLangAware returns the valid names of the first language that has
// any.
func resolveLangAware(byLang map[string][]string) []resolvedName {
	if len(byLang) == 0 {
		return nil
	}
	for _, lang := range languageOrder(byLang) {
		if names := resolve(byLang[lang]); len(names) > 0 {
			return names
		}
	}
	return nil
}

func languageOrder(byLang map[string][]string) []string {
	order := make([]string, 0, len(byLang))
	preferred := make(map[string]struct{}, len(preferredLanguages))
	for _, lang := range preferredLanguages {
		preferred[lang] = struct{}{}
		if _, ok := byLang[lang]; ok {
			order = append(order, lang)
		}
	}

	rest := make([]string, 0, len(byLang))
	for lang := range byLang {
		if _, ok := preferred[lang]; !ok {
			rest = append(rest, lang)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
