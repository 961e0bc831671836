// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package identity derives artist identities from raw catalog records.

Normalization rewrites a raw creator string into a stable key:

	"Dalí, Salvador (1904-1989)"  ->  "Salvador Dalí"
	"  ERNST,   max "             ->  "Max Ernst"

Parenthetical date ranges and qualifiers are removed, a single "Last,
First" comma form is flipped, whitespace is collapsed and the result is
NFC-composed and title-cased. Normalize is idempotent.

Grouping collects every record under each valid normalized name it lists.
A record naming two artists is shared by pointer between both identities.
Placeholder names ("Unknown", "Anoniem", ...), authority URIs and bare
numbers never form identities.

Grouping is exact string matching on the normalized key. Two artists that
normalize to the same name are merged, and variants the normalizer cannot
unify stay split.
*/
package identity
