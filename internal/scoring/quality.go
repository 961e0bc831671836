// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package scoring

import (
	"math"

	"github.com/tomtom215/vitrine/internal/lexicon"
	"github.com/tomtom215/vitrine/internal/models"
)

// NeutralPeriodMatch is used when there is no theme period or no dated work.
const NeutralPeriodMatch = 5.0

// Quality scores a profile's feasibility. period may be nil.
func Quality(p models.Profile, period *lexicon.Period) models.QualityScore {
	n := p.WorkCount
	k := p.InstitutionCount()
	c := p.ManifestCoverage

	avail := availability(n)
	manifest := manifestCoverage(c)
	inst := institutionDiversity(k)
	match, overlap, matchTier := periodMatch(p.YearRange, period)

	return models.QualityScore{
		Total: int(math.Round(avail + manifest + inst + match)),
		Breakdown: models.QualityBreakdown{
			Availability: models.DimensionScore{
				Score: round1(avail), Max: models.MaxAvailability, Input: float64(n), Tier: availabilityTier(n),
			},
			Manifest: models.DimensionScore{
				Score: round1(manifest), Max: models.MaxManifest, Input: round1(c), Tier: manifestTier(c),
			},
			Institutions: models.DimensionScore{
				Score: round1(inst), Max: models.MaxInstitutions, Input: float64(k), Tier: institutionTier(k),
			},
			PeriodMatch: models.DimensionScore{
				Score: round1(match), Max: models.MaxPeriodMatch, Input: round1(overlap * 100), Tier: matchTier,
			},
		},
	}
}

func availability(n int) float64 {
	f := float64(n)
	switch {
	case n <= 0:
		return 0
	case n < 3:
		return f / 3 * 10
	case n <= 5:
		return 10 + (f-3)*5
	case n <= 10:
		return 21 + (f-6)*9/4
	case n <= 20:
		return 31 + (f-11)*6/9
	default:
		return 38 + math.Min(2, (f-20)/20*2)
	}
}

func availabilityTier(n int) string {
	switch {
	case n < 3:
		return "sparse"
	case n <= 5:
		return "limited"
	case n <= 10:
		return "moderate"
	case n <= 20:
		return "good"
	default:
		return "excellent"
	}
}

func manifestCoverage(c float64) float64 {
	switch {
	case c >= 80:
		return 30
	case c >= 60:
		return 24 + (c-60)*6/20
	case c >= 40:
		return 18 + (c-40)*6/20
	case c > 0:
		return c * 18 / 40
	default:
		return 0
	}
}

func manifestTier(c float64) string {
	switch {
	case c >= 80:
		return "excellent"
	case c >= 60:
		return "good"
	case c >= 40:
		return "fair"
	default:
		return "poor"
	}
}

func institutionDiversity(k int) float64 {
	switch {
	case k <= 0:
		return 0
	case k == 1:
		return 5
	case k <= 3:
		return 10 + float64(k-2)*5
	case k <= 5:
		return 16 + float64(k-4)*3
	default:
		return 20
	}
}

func institutionTier(k int) string {
	switch {
	case k <= 0:
		return "none"
	case k == 1:
		return "single"
	case k <= 3:
		return "few"
	case k <= 5:
		return "several"
	default:
		return "broad"
	}
}

// periodMatch returns the score, the overlap ratio and a tier label.
func periodMatch(span *models.YearRange, period *lexicon.Period) (float64, float64, string) {
	if span == nil || period == nil {
		return NeutralPeriodMatch, 0, "neutral"
	}

	lo := max(span.Min, period.Start)
	hi := min(span.Max, period.End)
	if hi < lo {
		return 0, 0, "outside"
	}

	overlap := float64(hi-lo+1) / float64(span.Span())
	tier := "partial"
	if overlap >= 1 {
		tier = "within"
	}
	return models.MaxPeriodMatch * overlap, overlap, tier
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
