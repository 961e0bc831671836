// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package planner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tomtom215/vitrine/internal/lexicon"
	"github.com/tomtom215/vitrine/internal/models"
)

const (
	// MaxCandidateKeywords is the number of tokens kept from a focus text.
	MaxCandidateKeywords = 8

	// MaxQueryKeywords is the number of keywords placed in a query.
	MaxQueryKeywords = 2

	// MaxQueryMovements is the number of brief movements placed in a query.
	MaxQueryMovements = 2

	minTokenLength      = 3
	meaningfulMinLength = 5
)

// Tokenize lower-cases text and splits it on every rune that is neither a
// letter nor a digit.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ExtractKeywords returns the first MaxCandidateKeywords tokens of text
// that are not stop-words and have at least three characters.
func ExtractKeywords(text string) []string {
	var out []string
	for _, tok := range Tokenize(text) {
		if utf8.RuneCountInString(tok) < minTokenLength || lexicon.IsStopWord(tok) {
			continue
		}
		out = append(out, tok)
		if len(out) == MaxCandidateKeywords {
			break
		}
	}
	return out
}

// MeaningfulKeywords filters candidates down to at most MaxQueryKeywords
// tokens longer than four characters that are not generic verbs.
func MeaningfulKeywords(candidates []string) []string {
	var out []string
	for _, kw := range candidates {
		if utf8.RuneCountInString(kw) < meaningfulMinLength || lexicon.IsGenericVerb(kw) {
			continue
		}
		out = append(out, kw)
		if len(out) == MaxQueryKeywords {
			break
		}
	}
	return out
}

// ThemeKeywords returns the ordered, de-duplicated union of the brief
// description keywords and every section's title and focus keywords. The
// relevance scorer matches records against this list.
func ThemeKeywords(brief models.Brief, sections []models.Section) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(words []string) {
		for _, w := range words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}

	add(ExtractKeywords(brief.Description))
	for _, s := range sections {
		add(ExtractKeywords(s.Title))
		add(ExtractKeywords(s.Focus))
	}
	return out
}
