// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

/*
Package executor runs planned catalog queries concurrently.

Every query is one task in a bounded errgroup. Inside a task pages are
fetched strictly in sequence:

	start = 1 + fetched
	rows  = min(pageSize, rowTarget - fetched)

Paging stops on an empty page, when the row target is met, or when the
catalog reports no further results. Each page request gets its own
timeout.

Tasks never return errors. A failing page marks its query failed and the
query contributes no records; sibling queries are unaffected. Each task
writes only to its own result slot, and deduplication by catalog record
ID runs once after every task has settled, walking queries in plan order
with first-seen-wins.
*/
package executor
