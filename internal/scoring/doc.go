// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package scoring implements the two independent ranking criteria.

Quality (feasibility) looks only at the aggregated profile:

	Availability           0-40  piecewise in work count
	Manifest coverage      0-30  piecewise in % of works with images
	Institution diversity  0-20  piecewise in distinct holders
	Time-period match      0-10  overlap of the artist's span with the theme

Relevance looks at the records against the curator's theme:

	Semantic     40%  records mentioning a theme keyword
	Movement     25%  records mentioning a selected movement
	Media        20%  records typed as a selected medium
	Time period  15%  dated records inside the theme period
	Geography    +0-10 bonus for records from focus countries

Dimensions without an input fall back to a neutral value (5 of 10 for the
quality period match, 50% for relevance dimensions). Both scorers are pure.
*/
package scoring
