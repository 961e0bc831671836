// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package pipeline

import "sort"

// rank orders by quality total, then relevance total, both descending.
// Equal scores keep their grouping order.
func rank(items []scored) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].quality.Total != items[j].quality.Total {
			return items[i].quality.Total > items[j].quality.Total
		}
		return items[i].relevance.Total > items[j].relevance.Total
	})
}
