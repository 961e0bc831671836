// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// searchPath is appended to the configured base URL.
const searchPath = "/record/v2/search.json"

// SearchRequest is one page request.
type SearchRequest struct {
	Query  string
	Facets []string

	// Rows is the page size; Start is the 1-based offset of the first row.
	Rows  int
	Start int
}

// buildURL constructs the full URL with all parameters
func (r SearchRequest) buildURL(baseURL, apiKey string) string {
	params := url.Values{}
	params.Set("wskey", apiKey)
	params.Set("query", r.Query)
	params.Set("rows", strconv.Itoa(r.Rows))

	start := r.Start
	if start < 1 {
		start = 1
	}
	params.Set("start", strconv.Itoa(start))

	for _, facet := range r.Facets {
		if facet != "" {
			params.Add("qf", facet)
		}
	}

	params.Set("media", "true")
	params.Set("thumbnail", "true")
	params.Set("profile", "standard")

	return strings.TrimRight(baseURL, "/") + searchPath + "?" + params.Encode()
}
