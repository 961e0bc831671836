// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package models

// Quality dimension maxima. They sum to 100.
const (
	MaxAvailability   = 40.0
	MaxManifest       = 30.0
	MaxInstitutions   = 20.0
	MaxPeriodMatch    = 10.0
	MaxQualityTotal   = MaxAvailability + MaxManifest + MaxInstitutions + MaxPeriodMatch
	MaxRelevanceTotal = 100.0
)

// DimensionScore is one scored dimension with the input that produced it.
type DimensionScore struct {
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
	Input float64 `json:"input"`
	Tier  string  `json:"tier"`
}

// QualityBreakdown carries each feasibility dimension.
type QualityBreakdown struct {
	Availability DimensionScore `json:"availability"`
	Manifest     DimensionScore `json:"manifest_coverage"`
	Institutions DimensionScore `json:"institution_diversity"`
	PeriodMatch  DimensionScore `json:"time_period_match"`
}

// QualityScore measures how usable an identity's data is.
type QualityScore struct {
	Total     int              `json:"total"`
	Breakdown QualityBreakdown `json:"breakdown"`
}

// RelevanceBreakdown carries the percentage dimensions and the additive
// geographic bonus.
type RelevanceBreakdown struct {
	Semantic   float64 `json:"semantic"`
	Movement   float64 `json:"movement"`
	Media      float64 `json:"media"`
	TimePeriod float64 `json:"time_period"`
	GeoBonus   float64 `json:"geographic_bonus"`
}

// RelevanceScore measures how well an identity's records fit the theme.
type RelevanceScore struct {
	Total     float64            `json:"total"`
	Breakdown RelevanceBreakdown `json:"breakdown"`
}
