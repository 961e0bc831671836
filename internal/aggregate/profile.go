// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package aggregate

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/vitrine/internal/lexicon"
	"github.com/tomtom215/vitrine/internal/models"
)

const (
	MinPlausibleYear = 1000
	MaxPlausibleYear = 2100

	// DefaultRecencyThreshold marks an artist inactive when their latest
	// dated work is older.
	DefaultRecencyThreshold = 2000

	// activeLeadYears is subtracted from the earliest work to estimate
	// when an artist started working.
	activeLeadYears = 25
)

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// Options carries brief context for the informational fields.
type Options struct {
	// Movements are the brief's movement keys, in brief order.
	Movements []string

	RecencyThreshold int
}

// Build aggregates one identity. It does not modify the identity or its
// records.
func Build(id *models.Identity, opts Options) models.Profile {
	p := models.Profile{
		WorkCount:  id.WorkCount(),
		Countries:  make(map[string]int),
		MediaTypes: make(map[string]int),
	}

	institutions := newOrderedSet()
	sections := newOrderedSet()
	countryOrder := newOrderedSet()

	for _, rec := range id.Works {
		for _, inst := range rec.Institutions {
			institutions.add(inst)
		}
		for _, c := range rec.Countries {
			p.Countries[c]++
			countryOrder.add(c)
		}
		for _, t := range rec.Types {
			p.MediaTypes[t]++
		}
		for _, y := range rec.Years {
			p.Years = append(p.Years, ParseYears(y)...)
		}
		if rec.SectionTitle != "" {
			sections.add(rec.SectionTitle)
		}
		if rec.HasManifest() {
			p.ManifestCount++
		}
	}

	p.Institutions = institutions.items
	p.Sections = sections.items
	if p.WorkCount > 0 {
		p.ManifestCoverage = float64(p.ManifestCount) / float64(p.WorkCount) * 100
	}
	if r, ok := yearRange(p.Years); ok {
		p.YearRange = &r
	}
	p.PrimaryCountry = mode(p.Countries, countryOrder.items)
	if len(p.Institutions) > 0 {
		p.PrimaryInstitution = p.Institutions[0]
	}

	decorate(&p, id.Name, opts)
	return p
}

// ParseYears extracts every plausible 4-digit year from a catalog year
// value such as "1921", "ca. 1930" or "1904-1989".
func ParseYears(value string) []int {
	var out []int
	for _, m := range yearPattern.FindAllString(value, -1) {
		y, err := strconv.Atoi(m)
		if err != nil || y < MinPlausibleYear || y > MaxPlausibleYear {
			continue
		}
		out = append(out, y)
	}
	return out
}

func yearRange(years []int) (models.YearRange, bool) {
	if len(years) == 0 {
		return models.YearRange{}, false
	}
	r := models.YearRange{Min: years[0], Max: years[0]}
	for _, y := range years[1:] {
		r.Min = min(r.Min, y)
		r.Max = max(r.Max, y)
	}
	return r, true
}

// mode returns the most frequent key; ties go to the key seen first.
func mode(hist map[string]int, order []string) string {
	best, bestN := "", 0
	for _, k := range order {
		if n := hist[k]; n > bestN {
			best, bestN = k, n
		}
	}
	return best
}

// decorate fills the informational fields.
func decorate(p *models.Profile, name string, opts Options) {
	threshold := opts.RecencyThreshold
	if threshold == 0 {
		threshold = DefaultRecencyThreshold
	}

	if p.YearRange != nil {
		since := p.YearRange.Min - activeLeadYears
		p.ActiveSince = &since
		if p.YearRange.Max < threshold {
			latest := p.YearRange.Max
			p.InactiveSince = &latest
		}
	}

	p.Nationality = lexicon.Nationality(p.PrimaryCountry)
	p.Movement = detectMovement(opts.Movements, p.Sections)
	p.Blurb = blurb(name, p)
}

// detectMovement returns the first movement with a term variant appearing
// in any matched section title.
func detectMovement(movements, sectionTitles []string) string {
	if len(movements) == 0 || len(sectionTitles) == 0 {
		return ""
	}
	titles := make([]string, len(sectionTitles))
	for i, t := range sectionTitles {
		titles[i] = strings.ToLower(t)
	}

	for _, m := range movements {
		for _, term := range lexicon.MovementTerms(m) {
			for _, title := range titles {
				if strings.Contains(title, term) {
					return strings.TrimSpace(m)
				}
			}
		}
	}
	return ""
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// sortedKeys is used where a histogram must be rendered deterministically.
func sortedKeys(hist map[string]int) []string {
	keys := make([]string, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if hist[keys[i]] != hist[keys[j]] {
			return hist[keys[i]] > hist[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
