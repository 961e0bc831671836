// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/tomtom215/vitrine/internal/models"
)

const nameWidth = 28

var (
	headerColor  = color.New(color.Bold, color.Underline)
	nameColor    = color.New(color.FgHiWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	warningColor = color.New(color.FgYellow)
)

// qualityColor buckets the 0-100 quality total.
func qualityColor(total int) *color.Color {
	switch {
	case total >= 70:
		return color.New(color.FgHiGreen)
	case total >= 40:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// pad right-pads s to width runes, truncating with an ellipsis. Padding
// happens before coloring so escape codes never skew the columns.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		r := []rune(s)
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-n)
}

// RenderResult prints the ranked shortlist with run accounting and
// warnings.
func RenderResult(w io.Writer, result *models.ExtractionResult, verbose bool) {
	stats := result.Stats
	fmt.Fprintf(w, "Run %s: %d queries (%d failed), %d records, %d unique\n",
		result.RunID, stats.TotalQueries, stats.FailedQueries, result.TotalArtworks, result.UniqueArtworks)
	fmt.Fprintf(w, "Identities: %d found, %d below min works, %d mostly unknown, %d beyond top limit, %d shortlisted\n",
		result.IdentitiesFound, result.FilteredByMinWorks, result.FilteredByUnknown, result.FilteredByTopLimit, result.ArtistsFound)
	if result.UnknownRecords > 0 {
		dimColor.Fprintf(w, "%d records had no usable creator\n", result.UnknownRecords)
	}

	for _, warning := range result.Warnings {
		warningColor.Fprintf(w, "! %s: %s\n", warning.Code, warning.Message)
	}

	if len(result.Candidates) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No candidates.")
		return
	}

	fmt.Fprintln(w)
	headerColor.Fprintf(w, "%4s  %s  %5s  %7s  %9s  %s\n",
		"RANK", pad("ARTIST", nameWidth), "WORKS", "QUALITY", "RELEVANCE", "COUNTRY")

	for _, c := range result.Candidates {
		fmt.Fprintf(w, "%4d  %s  %5d  %s  %9.1f  %s\n",
			c.Rank,
			nameColor.Sprint(pad(c.Name, nameWidth)),
			c.WorkCount,
			qualityColor(c.Quality.Total).Sprintf("%7d", c.Quality.Total),
			c.Relevance.Total,
			c.Profile.PrimaryCountry,
		)
		if verbose && c.Profile.Blurb != "" {
			dimColor.Fprintf(w, "      %s\n", c.Profile.Blurb)
		}
	}
}

// RenderQueries prints planned queries grouped in plan order.
func RenderQueries(w io.Writer, queries []models.CatalogQuery) {
	if len(queries) == 0 {
		fmt.Fprintln(w, "No queries planned.")
		return
	}

	headerColor.Fprintf(w, "%-10s  %-24s  %4s  %s\n", "SECTION", "FACETS", "ROWS", "QUERY")
	for _, q := range queries {
		facets := strings.Join(q.FacetFilters, ",")
		if facets == "" {
			facets = "-"
		}
		fmt.Fprintf(w, "%-10s  %-24s  %4d  %s\n", q.SectionID, facets, q.RowTarget, q.QueryString)
	}
	dimColor.Fprintf(w, "%d queries\n", len(queries))
}
