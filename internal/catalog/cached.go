// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package catalog

import (
	"context"
	"time"

	"github.com/tomtom215/vitrine/internal/cache"
	"github.com/tomtom215/vitrine/internal/metrics"
)

// CachedSearcher serves repeated page requests from memory. Only
// successful responses are cached; errors always reach the caller so that
// the executor's failure accounting stays exact.
type CachedSearcher struct {
	next  Searcher
	pages *cache.LRU[*SearchResponse]
}

// NewCachedSearcher wraps next with a page cache of the given size and TTL.
func NewCachedSearcher(next Searcher, size int, ttl time.Duration) *CachedSearcher {
	return &CachedSearcher{
		next:  next,
		pages: cache.NewLRU[*SearchResponse](size, ttl),
	}
}

// Search implements Searcher. Cached responses are shared and must be
// treated as read-only.
func (c *CachedSearcher) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	key := cache.Key("search", req)
	if resp, ok := c.pages.Get(key); ok {
		metrics.RecordCacheLookup(true)
		return resp, nil
	}
	metrics.RecordCacheLookup(false)

	resp, err := c.next.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	c.pages.Add(key, resp)
	return resp, nil
}

// Stats reports page cache counters.
func (c *CachedSearcher) Stats() cache.Stats {
	return c.pages.Stats()
}

// WithCache wraps s in a CachedSearcher when size is positive and returns
// s unchanged otherwise.
func WithCache(s Searcher, size int, ttl time.Duration) Searcher {
	if size <= 0 {
		return s
	}
	return NewCachedSearcher(s, size, ttl)
}
