// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package cache provides a thread-safe, bounded LRU cache with TTL expiry.

The catalog client uses it to remember search pages so that repeated or
overlapping briefs within the TTL do not spend the catalog's request
quota twice.

# Usage Example

	pages := cache.NewLRU[*catalog.SearchResponse](256, 15*time.Minute)

	key := cache.Key("search", req)
	if resp, ok := pages.Get(key); ok {
	    return resp, nil
	}
	resp, err := fetch(ctx, req)
	if err == nil {
	    pages.Add(key, resp)
	}

# Expiry

Entries expire lazily: an expired entry is dropped when it is next read,
or when CleanupExpired walks the list. Capacity eviction is O(1) and
always removes the least recently used entry.

# Thread Safety

All methods are safe for concurrent use. Cached values are shared between
readers and must not be mutated after Add.
*/
package cache
