// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package lexicon

import (
	"regexp"
	"strconv"
	"strings"
)

// Period is an inclusive year range.
type Period struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether year falls inside the period.
func (p Period) Contains(year int) bool {
	return year >= p.Start && year <= p.End
}

// Span returns the number of years covered, counting both ends.
func (p Period) Span() int {
	return p.End - p.Start + 1
}

// periods maps time-period keys from the curator brief to year ranges.
var periods = map[string]Period{
	"medieval":       {Start: 1000, End: 1399},
	"renaissance":    {Start: 1400, End: 1599},
	"baroque":        {Start: 1600, End: 1749},
	"18th century":   {Start: 1700, End: 1799},
	"19th century":   {Start: 1800, End: 1899},
	"early modern":   {Start: 1850, End: 1914},
	"modern":         {Start: 1900, End: 1969},
	"interwar":       {Start: 1918, End: 1939},
	"postwar":        {Start: 1945, End: 1979},
	"contemporary":   {Start: 1970, End: 2025},
	"20th century":   {Start: 1900, End: 1999},
	"21st century":   {Start: 2000, End: 2025},
	"gilded age":     {Start: 1870, End: 1900},
	"belle epoque":   {Start: 1871, End: 1914},
	"golden age":     {Start: 1588, End: 1672},
	"fin de siecle":  {Start: 1880, End: 1914},
	"avant garde":    {Start: 1905, End: 1939},
	"mid century":    {Start: 1945, End: 1969},
	"digital age":    {Start: 1990, End: 2025},
	"enlightenment":  {Start: 1685, End: 1815},
	"romantic":       {Start: 1790, End: 1850},
	"victorian":      {Start: 1837, End: 1901},
	"edwardian":      {Start: 1901, End: 1914},
	"post modern":    {Start: 1970, End: 1999},
	"interbellum":    {Start: 1918, End: 1939},
	"industrial age": {Start: 1760, End: 1914},
}

var literalPeriodPattern = regexp.MustCompile(`^(\d{4})\s*(?:-|–|to)\s*(\d{4})$`)

// LookupPeriod resolves a time-period key. Besides the named keys it accepts
// a literal "YYYY-YYYY" range; reversed bounds are swapped.
func LookupPeriod(key string) (Period, bool) {
	k := normalizeKey(key)
	if k == "" {
		return Period{}, false
	}
	if p, ok := periods[k]; ok {
		return p, true
	}

	m := literalPeriodPattern.FindStringSubmatch(strings.TrimSpace(strings.ToLower(key)))
	if m == nil {
		return Period{}, false
	}
	start, errStart := strconv.Atoi(m[1])
	end, errEnd := strconv.Atoi(m[2])
	if errStart != nil || errEnd != nil {
		return Period{}, false
	}
	if start > end {
		start, end = end, start
	}
	return Period{Start: start, End: end}, true
}
