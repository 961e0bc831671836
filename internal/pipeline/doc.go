// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package pipeline sequences one extraction run:

	plan -> execute -> group -> aggregate + score -> filter -> rank -> result

Filtering is order-sensitive and every stage records how many identities
it removed:

 1. fewer works than the minimum
 2. unknown-work ratio above the maximum
 3. rank by quality total, then relevance total, stable on first-seen order
 4. truncate to the top N

so that the sum of removals plus the artists returned always equals the
number of identities grouping produced.

Run never returns an error. Catalog failures surface as failed sections in
the execution stats and as warnings on the result.
*/
package pipeline
