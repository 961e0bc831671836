// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

// Package aggregate derives a metadata profile from an identity's works.
// Profiles feed the quality scorer; the informational fields (active-since
// estimate, nationality, movement label, blurb) are presented to curators
// but never scored.
package aggregate
