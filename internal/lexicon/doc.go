// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

// Package lexicon holds the static lookup tables used across the extraction
// pipeline: stop-words and generic verbs for keyword planning, placeholder
// creator names, movement and media term variants, named time periods and
// the country to nationality table.
//
// The tables are package-private and initialized once. Callers only see
// lookup functions or fresh copies, so nothing downstream can mutate them.
//
// # Usage
//
//	if lexicon.IsStopWord(token) {
//	    continue
//	}
//	terms := lexicon.MovementTerms("surrealism")
//	period, ok := lexicon.LookupPeriod("contemporary")
package lexicon
