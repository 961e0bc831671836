// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package aggregate

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/vitrine/internal/models"
)

// blurb assembles one sentence from the aggregated facts, e.g.
//
//	Dutch artist Hendrik Werkman, 12 works (1921-1945) held by 3
//	institutions, 75% with high-resolution images, matching "Dreams".
func blurb(name string, p *models.Profile) string {
	var b strings.Builder

	if p.Nationality != "" {
		b.WriteString(p.Nationality)
		b.WriteString(" artist ")
	}
	b.WriteString(name)

	fmt.Fprintf(&b, ", %s", plural(p.WorkCount, "work"))
	if p.YearRange != nil {
		if p.YearRange.Min == p.YearRange.Max {
			fmt.Fprintf(&b, " (%d)", p.YearRange.Min)
		} else {
			fmt.Fprintf(&b, " (%d-%d)", p.YearRange.Min, p.YearRange.Max)
		}
	}
	if n := p.InstitutionCount(); n > 0 {
		fmt.Fprintf(&b, " held by %s", plural(n, "institution"))
	}
	if p.WorkCount > 0 {
		fmt.Fprintf(&b, ", %d%% with high-resolution images", int(math.Round(p.ManifestCoverage)))
	}
	if media := sortedKeys(p.MediaTypes); len(media) > 0 {
		fmt.Fprintf(&b, ", mostly %s", strings.ToLower(media[0]))
	}
	if len(p.Sections) > 0 {
		quoted := make([]string, len(p.Sections))
		for i, s := range p.Sections {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		fmt.Fprintf(&b, ", matching %s", strings.Join(quoted, " and "))
	}
	b.WriteString(".")
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
