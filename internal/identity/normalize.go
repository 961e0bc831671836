// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package identity

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/vitrine/internal/lexicon"
)

const minNameLength = 2

var (
	// innermost parenthetical that mentions a 4-digit year, e.g. "(1904-1989)"
	datedParenPattern = regexp.MustCompile(`\([^()]*\b\d{4}\b[^()]*\)`)

	// innermost parenthetical of any kind
	parenPattern = regexp.MustCompile(`\([^()]*\)`)
)

// Normalize rewrites a raw creator string into its identity key.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = removeAll(datedParenPattern, s)
	s = removeAll(parenPattern, s)

	if strings.Count(s, ",") == 1 {
		last, first, _ := strings.Cut(s, ",")
		s = strings.TrimSpace(first) + " " + strings.TrimSpace(last)
	}

	// strings.Fields splits on every Unicode space, including NBSP and U+3000.
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}

	s = norm.NFC.String(s)
	// Casers carry state and are not safe for concurrent use.
	return cases.Title(language.Und).String(s)
}

// removeAll deletes matches until none remain so that nested groups are
// peeled from the inside out.
func removeAll(re *regexp.Regexp, s string) string {
	for re.MatchString(s) {
		s = re.ReplaceAllString(s, " ")
	}
	return s
}

// IsValid reports whether a normalized name can key an identity.
func IsValid(name string) bool {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < minNameLength {
		return false
	}
	if lexicon.HasURIPrefix(name) || lexicon.IsPlaceholderName(name) {
		return false
	}
	return hasLetter(name)
}

// hasLetter rejects bare numbers such as "1889" or "12 345".
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
