// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package models

// YearRange is an inclusive span of years.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Span returns the number of years covered, counting both ends.
func (r YearRange) Span() int {
	return r.Max - r.Min + 1
}

// Profile is the metadata aggregated from one identity's works.
type Profile struct {
	WorkCount        int            `json:"work_count"`
	Institutions     []string       `json:"institutions"`
	Countries        map[string]int `json:"countries"`
	Years            []int          `json:"years"`
	MediaTypes       map[string]int `json:"media_types"`
	Sections         []string       `json:"sections"`
	ManifestCount    int            `json:"manifest_count"`
	ManifestCoverage float64        `json:"manifest_coverage"`

	// YearRange is nil when no work carries a plausible year.
	YearRange *YearRange `json:"year_range,omitempty"`

	PrimaryCountry     string `json:"primary_country,omitempty"`
	PrimaryInstitution string `json:"primary_institution,omitempty"`

	// Informational only; not used by either scorer.
	ActiveSince   *int   `json:"active_since,omitempty"`
	InactiveSince *int   `json:"inactive_since,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
	Movement      string `json:"movement,omitempty"`
	Blurb         string `json:"blurb"`
}

// InstitutionCount returns the number of distinct institutions.
func (p *Profile) InstitutionCount() int {
	return len(p.Institutions)
}
