// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package models defines the data structures that flow through the Vitrine
extraction pipeline.

Key Components:

  - Brief, Section: curator inputs (read-only to the pipeline)
  - CatalogQuery: one planned catalog search, consumed once by the executor
  - Record: one catalog item, shared by pointer between identities
  - StringList: a string-or-list JSON field normalized to a slice on decode
  - Identity: a normalized artist name with its attributed works
  - Profile: aggregated metadata derived from an identity's works
  - QualityScore, RelevanceScore: scoring value objects with breakdowns
  - ExtractionResult, Candidate: the pipeline output

Data Flow:

	Brief + []Section -> []CatalogQuery -> []*Record -> []*Identity
	    -> Profile -> QualityScore + RelevanceScore -> ExtractionResult

Nothing in this package performs I/O. All types are safe to share across
goroutines once built, since the pipeline never mutates them after the
stage that creates them.
*/
package models
