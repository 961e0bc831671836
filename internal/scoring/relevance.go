// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package scoring

import (
	"math"
	"strings"

	"github.com/tomtom215/vitrine/internal/aggregate"
	"github.com/tomtom215/vitrine/internal/lexicon"
	"github.com/tomtom215/vitrine/internal/models"
)

// Relevance weights. The geographic bonus is added on top.
const (
	WeightSemantic   = 0.40
	WeightMovement   = 0.25
	WeightMedia      = 0.20
	WeightTimePeriod = 0.15

	MaxGeoBonus = 10.0

	// NeutralRelevance is used for a dimension with no theme input.
	NeutralRelevance = 50.0
)

// Theme is the curator's brief prepared for matching. Build one per run
// with NewTheme and share it across identities.
type Theme struct {
	Keywords   []string
	Movements  [][]string
	MediaTerms [][]string
	Period     *lexicon.Period
	Geography  map[string]struct{}
}

// NewTheme expands the brief's movement and media keys into their term
// variants and resolves the time period. keywords are the theme keywords
// extracted from the description and sections.
func NewTheme(brief models.Brief, keywords []string) *Theme {
	t := &Theme{Geography: make(map[string]struct{})}

	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			t.Keywords = append(t.Keywords, kw)
		}
	}
	for _, m := range brief.Movements {
		if terms := lexicon.MovementTerms(m); len(terms) > 0 {
			t.Movements = append(t.Movements, terms)
		}
	}
	for _, m := range brief.MediaTypes {
		if terms := lexicon.MediaTerms(m); len(terms) > 0 {
			t.MediaTerms = append(t.MediaTerms, terms)
		}
	}
	if p, ok := lexicon.LookupPeriod(brief.TimePeriod); ok {
		t.Period = &p
	}
	for _, c := range brief.Geography {
		if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
			t.Geography[c] = struct{}{}
		}
	}
	return t
}

// Relevance scores how well works fit the theme.
func Relevance(works []*models.Record, theme *Theme) models.RelevanceScore {
	if len(works) == 0 || theme == nil {
		return models.RelevanceScore{}
	}

	b := models.RelevanceBreakdown{
		Semantic:   semantic(works, theme.Keywords),
		Movement:   movement(works, theme.Movements),
		Media:      media(works, theme.MediaTerms),
		TimePeriod: timePeriod(works, theme.Period),
		GeoBonus:   geoBonus(works, theme.Geography),
	}

	total := b.Semantic*WeightSemantic +
		b.Movement*WeightMovement +
		b.Media*WeightMedia +
		b.TimePeriod*WeightTimePeriod +
		b.GeoBonus

	return models.RelevanceScore{
		Total: round1(math.Min(total, models.MaxRelevanceTotal)),
		Breakdown: models.RelevanceBreakdown{
			Semantic:   round1(b.Semantic),
			Movement:   round1(b.Movement),
			Media:      round1(b.Media),
			TimePeriod: round1(b.TimePeriod),
			GeoBonus:   round1(b.GeoBonus),
		},
	}
}

func semantic(works []*models.Record, keywords []string) float64 {
	if len(keywords) == 0 {
		return NeutralRelevance
	}
	return percentMatching(works, func(r *models.Record) bool {
		return containsAny(strings.ToLower(r.Text()), keywords)
	})
}

func movement(works []*models.Record, movements [][]string) float64 {
	if len(movements) == 0 {
		return NeutralRelevance
	}
	return percentMatching(works, func(r *models.Record) bool {
		text := strings.ToLower(strings.Join([]string{
			r.Subjects.Joined(), r.Types.Joined(), r.Description.Joined(),
		}, " "))
		for _, terms := range movements {
			if containsAny(text, terms) {
				return true
			}
		}
		return false
	})
}

func media(works []*models.Record, mediaTerms [][]string) float64 {
	if len(mediaTerms) == 0 {
		return NeutralRelevance
	}
	return percentMatching(works, func(r *models.Record) bool {
		text := strings.ToLower(r.Types.Joined())
		for _, terms := range mediaTerms {
			if containsAny(text, terms) {
				return true
			}
		}
		return false
	})
}

// timePeriod considers only records with a parseable year. A record is
// inside the period when any of its years is.
func timePeriod(works []*models.Record, period *lexicon.Period) float64 {
	if period == nil {
		return NeutralRelevance
	}

	dated, inside := 0, 0
	for _, r := range works {
		var years []int
		for _, y := range r.Years {
			years = append(years, aggregate.ParseYears(y)...)
		}
		if len(years) == 0 {
			continue
		}
		dated++
		for _, y := range years {
			if period.Contains(y) {
				inside++
				break
			}
		}
	}
	if dated == 0 {
		return NeutralRelevance
	}
	return float64(inside) / float64(dated) * 100
}

func geoBonus(works []*models.Record, focus map[string]struct{}) float64 {
	if len(focus) == 0 {
		return 0
	}
	pct := percentMatching(works, func(r *models.Record) bool {
		for _, c := range r.Countries {
			if _, ok := focus[strings.ToLower(c)]; ok {
				return true
			}
		}
		return false
	})
	return MaxGeoBonus * pct / 100
}

func percentMatching(works []*models.Record, match func(*models.Record) bool) float64 {
	n := 0
	for _, r := range works {
		if match(r) {
			n++
		}
	}
	return float64(n) / float64(len(works)) * 100
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(text, t) {
			return true
		}
	}
	return false
}
