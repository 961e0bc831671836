// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package lexicon

import "strings"

// nationalities maps lower-case country names, as Europeana reports them,
// to the English adjective.
var nationalities = map[string]string{
	"netherlands":    "Dutch",
	"belgium":        "Belgian",
	"france":         "French",
	"germany":        "German",
	"austria":        "Austrian",
	"switzerland":    "Swiss",
	"italy":          "Italian",
	"spain":          "Spanish",
	"portugal":       "Portuguese",
	"united kingdom": "British",
	"ireland":        "Irish",
	"denmark":        "Danish",
	"sweden":         "Swedish",
	"norway":         "Norwegian",
	"finland":        "Finnish",
	"iceland":        "Icelandic",
	"poland":         "Polish",
	"czech republic": "Czech",
	"czechia":        "Czech",
	"slovakia":       "Slovak",
	"hungary":        "Hungarian",
	"romania":        "Romanian",
	"bulgaria":       "Bulgarian",
	"greece":         "Greek",
	"croatia":        "Croatian",
	"slovenia":       "Slovenian",
	"serbia":         "Serbian",
	"estonia":        "Estonian",
	"latvia":         "Latvian",
	"lithuania":      "Lithuanian",
	"luxembourg":     "Luxembourgish",
	"malta":          "Maltese",
	"cyprus":         "Cypriot",
	"europe":         "European",
	"united states":  "American",
	"canada":         "Canadian",
	"mexico":         "Mexican",
	"brazil":         "Brazilian",
	"argentina":      "Argentine",
	"japan":          "Japanese",
	"china":          "Chinese",
	"india":          "Indian",
	"australia":      "Australian",
	"israel":         "Israeli",
	"turkey":         "Turkish",
	"russia":         "Russian",
	"ukraine":        "Ukrainian",
}

// Nationality returns the adjective for a country, or "" when the country
// is not in the table.
func Nationality(country string) string {
	return nationalities[strings.ToLower(strings.TrimSpace(country))]
}
