// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package catalog is the HTTP client for the federated cultural-heritage
search API (Europeana Search API shape).

A Client issues one GET per result page:

	GET {base}/record/v2/search.json?wskey=...&query=...&rows=100&start=1
	    &qf=COUNTRY:Netherlands&media=true&thumbnail=true&profile=standard

Resilience Mechanisms:
  - Rate pacing: a shared golang.org/x/time/rate limiter spaces outbound
    requests across every concurrent query
  - HTTP 429: exponential backoff (base, 2x, 4x, ...) honoring Retry-After,
    bounded by MaxRetries and the request context
  - Circuit breaker: sony/gobreaker opens after a 60% outage rate over at
    least 10 requests and rejects calls with ErrCatalogUnavailable. Outages
    are transport errors, timeouts and 502/503/504; a query the catalog
    rejects (other statuses, success=false) does not count
  - Page cache: WithCache wraps any Searcher in an LRU of successful pages

Wire items (Item) are converted to models.Record at this boundary. Every
string-or-list field arrives as a models.StringList, so nothing downstream
branches on JSON shape.

Errors are wrapped around the package sentinels (ErrCatalogUnavailable,
ErrUnexpectedStatus, ErrUnsuccessful) and can be inspected with errors.Is.

Thread Safety: Client is safe for concurrent use.
*/
package catalog
