// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package models

// CatalogQuery is one planned catalog search. Queries are created once per
// planning pass and consumed exactly once by the executor.
type CatalogQuery struct {
	SectionID    string   `json:"section_id"`
	SectionTitle string   `json:"section_title"`
	QueryString  string   `json:"query"`
	FacetFilters []string `json:"facet_filters,omitempty"`
	RowTarget    int      `json:"row_target"`
}

// QueryOutcome reports how one query fared in the executor.
type QueryOutcome struct {
	Query   CatalogQuery `json:"query"`
	Fetched int          `json:"fetched"`
	Pages   int          `json:"pages"`
	Failed  bool         `json:"failed"`
	Error   string       `json:"error,omitempty"`
}

// ExecutionStats summarizes a fan-out run after deduplication.
type ExecutionStats struct {
	TotalQueries   int            `json:"total_queries"`
	FailedQueries  int            `json:"failed_queries"`
	TotalRecords   int            `json:"total_records"`
	UniqueRecords  int            `json:"unique_records"`
	SectionCounts  map[string]int `json:"section_counts"`
	FailedSections []string       `json:"failed_sections,omitempty"`
	SuccessRate    float64        `json:"success_rate"`
	LowYield       bool           `json:"low_yield"`
	DurationMS     int64          `json:"duration_ms"`
}
