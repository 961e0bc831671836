// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package lexicon

import "strings"

// placeholderTerms mark creator strings that do not name a real person.
// Matching is a case-insensitive substring test against the whole name, so
// entries must not be short fragments of common names.
var placeholderTerms = []string{
	// English
	"unknown",
	"unidentified",
	"not identified",
	"not known",
	"unattributed",
	"anonymous",
	"various",
	"multiple",
	"diverse",
	"n/a",
	// Dutch
	"onbekend",
	"anoniem",
	// German
	"unbekannt",
	"anonym",
	"verschiedene",
	// French
	"inconnu",
	"anonyme",
	"divers artistes",
	// Italian / Spanish / Portuguese
	"anonimo",
	"anónimo",
	"sconosciuto",
	"desconocido",
	"desconhecido",
	"diversos",
	// Nordic / Slavic
	"okänd",
	"ukendt",
	"ukjent",
	"tuntematon",
	"nieznany",
	"neznámý",
}

// uriPrefixes identify creator values that are authority links rather than
// names.
var uriPrefixes = []string{
	"http://",
	"https://",
	"urn:",
	"www.",
	"ftp://",
}

// IsPlaceholderName reports whether name contains any placeholder term.
func IsPlaceholderName(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range placeholderTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// HasURIPrefix reports whether the value looks like a URI or authority link.
func HasURIPrefix(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	for _, prefix := range uriPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
