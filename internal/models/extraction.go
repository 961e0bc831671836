// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package models

import "time"

// Warning codes attached to an ExtractionResult.
const (
	WarningLowYield         = "LOW_YIELD"
	WarningLowIdentityYield = "LOW_IDENTITY_YIELD"
	WarningNoMatches        = "NO_MATCHES"
)

// Warning is a non-fatal condition raised during a run.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Candidate is one ranked identity with its derived data.
type Candidate struct {
	Rank         int            `json:"rank"`
	Name         string         `json:"name"`
	Variants     []string       `json:"variants"`
	WorkCount    int            `json:"work_count"`
	UnknownWorks int            `json:"unknown_works"`
	WorkIDs      []string       `json:"work_ids"`
	Profile      Profile        `json:"profile"`
	Quality      QualityScore   `json:"quality"`
	Relevance    RelevanceScore `json:"relevance"`
}

// ExtractionResult is the output of one pipeline run.
type ExtractionResult struct {
	RunID       string    `json:"run_id"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`

	Queries []CatalogQuery `json:"queries"`
	Stats   ExecutionStats `json:"stats"`

	TotalArtworks   int `json:"total_artworks"`
	UniqueArtworks  int `json:"unique_artworks"`
	UnknownRecords  int `json:"unknown_records"`
	IdentitiesFound int `json:"identities_found"`

	FilteredByMinWorks int `json:"filtered_by_min_works"`
	FilteredByUnknown  int `json:"filtered_by_unknown_works"`
	FilteredByTopLimit int `json:"filtered_by_top_limit"`
	ArtistsFound       int `json:"artists_found"`

	Candidates []Candidate `json:"candidates"`
	Warnings   []Warning   `json:"warnings,omitempty"`
}

// HasWarning reports whether a warning with the given code was raised.
func (r *ExtractionResult) HasWarning(code string) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
